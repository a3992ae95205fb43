package controller

import (
	"net/http"
	"strconv"

	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"github.com/gin-gonic/gin"
)

// ListProfitJournals godoc
// @Summary List all profit journals
// @Description Get all trade records, newest buy_date first
// @Tags profit-journals
// @Produce json
// @Success 200 {array} models.ProfitJournal
// @Failure 500 {object} controller.APIError
// @Router /api/profit-journals [get]
func (c *Controller) ListProfitJournals(ctx *gin.Context) {
	journals, err := c.repo.GetAllProfitJournals()
	if err != nil {
		c.logger.Error("failed to list profit journals", "error", err)
		internalError(ctx, "failed to fetch profit journals")
		return
	}
	ctx.JSON(http.StatusOK, journals)
}

// CreateProfitJournal godoc
// @Summary Create a profit journal
// @Description Create a trade record; all profit figures are stored as submitted
// @Tags profit-journals
// @Accept json
// @Produce json
// @Param journal body models.ProfitJournal true "Trade record"
// @Success 201 {object} models.ProfitJournal
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/profit-journals [post]
func (c *Controller) CreateProfitJournal(ctx *gin.Context) {
	var journal models.ProfitJournal
	if err := ctx.ShouldBindJSON(&journal); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	// Only the id is server-owned here; every other field, including the
	// profit arithmetic, is the caller's.
	journal.ID = 0
	if err := c.repo.CreateProfitJournal(&journal); err != nil {
		c.logger.Error("failed to create profit journal", "error", err)
		internalError(ctx, "failed to create profit journal")
		return
	}

	ctx.JSON(http.StatusCreated, journal)
}

// UpdateProfitJournal godoc
// @Summary Update a profit journal
// @Description Replace every field of the trade record matching id
// @Tags profit-journals
// @Accept json
// @Produce json
// @Param id path int true "Journal ID"
// @Param journal body models.ProfitJournal true "Trade record"
// @Success 200 {object} controller.journalMessage
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/profit-journals/{id} [put]
func (c *Controller) UpdateProfitJournal(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid profit journal id")
		return
	}

	var journal models.ProfitJournal
	if err := ctx.ShouldBindJSON(&journal); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	if err := c.repo.UpdateProfitJournal(id, &journal); err != nil {
		c.logger.Error("failed to update profit journal", "id", id, "error", err)
		internalError(ctx, "failed to update profit journal")
		return
	}

	ctx.JSON(http.StatusOK, journalMessage{Message: "Profit journal updated"})
}

// DeleteProfitJournal godoc
// @Summary Delete a profit journal
// @Description Delete the trade record matching id; deleting an absent id is a success
// @Tags profit-journals
// @Produce json
// @Param id path int true "Journal ID"
// @Success 200 {object} controller.journalMessage
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/profit-journals/{id} [delete]
func (c *Controller) DeleteProfitJournal(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid profit journal id")
		return
	}

	if err := c.repo.DeleteProfitJournal(id); err != nil {
		c.logger.Error("failed to delete profit journal", "id", id, "error", err)
		internalError(ctx, "failed to delete profit journal")
		return
	}

	ctx.JSON(http.StatusOK, journalMessage{Message: "Profit journal deleted"})
}
