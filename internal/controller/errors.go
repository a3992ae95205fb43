package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrNilRepository = errors.New("repository cannot be nil")

// APIError mirrors the validation payload browser clients expect: every
// failure carries a detail field describing the violation.
type APIError struct {
	Detail string `json:"detail"`
}

func errorResponse(ctx *gin.Context, status int, detail string) {
	ctx.JSON(status, APIError{Detail: detail})
}

func badRequest(ctx *gin.Context, detail string) {
	errorResponse(ctx, http.StatusBadRequest, detail)
}

func internalError(ctx *gin.Context, detail string) {
	errorResponse(ctx, http.StatusInternalServerError, detail)
}
