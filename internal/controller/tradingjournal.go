package controller

import (
	"net/http"
	"strconv"

	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"github.com/gin-gonic/gin"
)

// tradingJournalUpdated is the PUT confirmation: the new updated_at is the
// only server-owned field the client needs back.
type tradingJournalUpdated struct {
	Message   string `json:"message"`
	UpdatedAt string `json:"updated_at"`
}

type journalMessage struct {
	Message string `json:"message"`
}

// ListTradingJournals godoc
// @Summary List all trading journals
// @Description Get all trading journal entries, newest first
// @Tags trading-journals
// @Produce json
// @Success 200 {array} models.TradingJournal
// @Failure 500 {object} controller.APIError
// @Router /api/trading-journals [get]
func (c *Controller) ListTradingJournals(ctx *gin.Context) {
	journals, err := c.repo.GetAllTradingJournals()
	if err != nil {
		c.logger.Error("failed to list trading journals", "error", err)
		internalError(ctx, "failed to fetch trading journals")
		return
	}
	ctx.JSON(http.StatusOK, journals)
}

// CreateTradingJournal godoc
// @Summary Create a trading journal
// @Description Create a journal entry; id and timestamps are server-generated
// @Tags trading-journals
// @Accept json
// @Produce json
// @Param journal body models.TradingJournal true "Journal data"
// @Success 201 {object} models.TradingJournal
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/trading-journals [post]
func (c *Controller) CreateTradingJournal(ctx *gin.Context) {
	var journal models.TradingJournal
	if err := ctx.ShouldBindJSON(&journal); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	// id and timestamps are server-owned; whatever the caller sent is
	// discarded. The single captured instant makes created_at == updated_at
	// on every new row.
	now := isoNow()
	journal.ID = 0
	journal.CreatedAt = now
	journal.UpdatedAt = now

	if err := c.repo.CreateTradingJournal(&journal); err != nil {
		c.logger.Error("failed to create trading journal", "error", err)
		internalError(ctx, "failed to create trading journal")
		return
	}

	ctx.JSON(http.StatusCreated, journal)
}

// UpdateTradingJournal godoc
// @Summary Update a trading journal
// @Description Overwrite type/title/content of the journal matching id; updated_at is refreshed
// @Tags trading-journals
// @Accept json
// @Produce json
// @Param id path int true "Journal ID"
// @Param journal body models.TradingJournal true "Journal data"
// @Success 200 {object} controller.tradingJournalUpdated
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/trading-journals/{id} [put]
func (c *Controller) UpdateTradingJournal(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid trading journal id")
		return
	}

	var journal models.TradingJournal
	if err := ctx.ShouldBindJSON(&journal); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	// The path parameter decides which row changes; no existence check, a
	// zero-row match still answers with the confirmation.
	journal.UpdatedAt = isoNow()
	if err := c.repo.UpdateTradingJournal(id, &journal); err != nil {
		c.logger.Error("failed to update trading journal", "id", id, "error", err)
		internalError(ctx, "failed to update trading journal")
		return
	}

	ctx.JSON(http.StatusOK, tradingJournalUpdated{
		Message:   "Trading journal updated",
		UpdatedAt: journal.UpdatedAt,
	})
}

// DeleteTradingJournal godoc
// @Summary Delete a trading journal
// @Description Delete the journal matching id; deleting an absent id is a success
// @Tags trading-journals
// @Produce json
// @Param id path int true "Journal ID"
// @Success 200 {object} controller.journalMessage
// @Failure 400 {object} controller.APIError
// @Failure 500 {object} controller.APIError
// @Router /api/trading-journals/{id} [delete]
func (c *Controller) DeleteTradingJournal(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid trading journal id")
		return
	}

	if err := c.repo.DeleteTradingJournal(id); err != nil {
		c.logger.Error("failed to delete trading journal", "id", id, "error", err)
		internalError(ctx, "failed to delete trading journal")
		return
	}

	ctx.JSON(http.StatusOK, journalMessage{Message: "Trading journal deleted"})
}
