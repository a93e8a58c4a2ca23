package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for ledger entries and commissions.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger and commission routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("", h.recordEntry)
		ledger.GET("", h.listEntries)
		ledger.GET("/:id", h.getEntry)
		ledger.DELETE("/:id", h.deleteEntry)
	}

	commissions := rg.Group("/commissions")
	{
		commissions.GET("", h.listCommissions)
		commissions.GET("/salespeople", h.listSalespeople)
		commissions.POST("/:id/pay", h.payCommission)
	}
}

// recordEntry godoc
// @Summary Record an income or expense
// @Description Income entries with appliesCommission also create a 4% commission in the same transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateLedgerEntryRequest true "Ledger entry"
// @Success 201 {object} domain.RecordedEntry
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Security BearerAuth
// @Router /ledger [post]
func (h *ledgerHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to record ledger entry", slog.String("entry_type", string(req.Type)))

	recorded, err := h.ledgerService.RecordEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record ledger entry")
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

// listEntries godoc
// @Summary List ledger entries
// @Description Newest first, paged with nextToken
// @Tags ledger
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param type query string false "income or expense"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.LedgerEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve ledger entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Delete a ledger entry and its commission
// @Tags ledger
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete ledger entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCommissions godoc
// @Summary List commissions
// @Tags commissions
// @Produce json
// @Param paid query bool false "Filter by paid flag"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} domain.Commission
// @Security BearerAuth
// @Router /commissions [get]
func (h *ledgerHandler) listCommissions(c *gin.Context) {
	var params dto.ListCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}

	commissions, err := h.ledgerService.ListCommissions(c.Request.Context(), params.Paid, period)
	if err != nil {
		respondError(c, err, "Failed to list commissions")
		return
	}
	c.JSON(http.StatusOK, commissions)
}

// listSalespeople godoc
// @Summary List the salespeople commissions can be attributed to
// @Tags commissions
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /commissions/salespeople [get]
func (h *ledgerHandler) listSalespeople(c *gin.Context) {
	roster := h.ledgerService.Salespeople()
	if roster == nil {
		roster = domain.SalespersonRoster{}
	}
	c.JSON(http.StatusOK, roster)
}

// payCommission godoc
// @Summary Mark a commission as paid
// @Tags commissions
// @Produce json
// @Param id path string true "Commission ID"
// @Success 200 {object} domain.Commission
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission already paid"
// @Security BearerAuth
// @Router /commissions/{id}/pay [post]
func (h *ledgerHandler) payCommission(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	commission, err := h.ledgerService.MarkCommissionPaid(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to mark commission paid")
		return
	}
	c.JSON(http.StatusOK, commission)
}
