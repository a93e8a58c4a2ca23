package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/current", h.getCurrentRate)
	}
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Stores the rate between two supported currencies for a day. A second rate for the same pair and day replaces the first.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", string(req.FromCurrencyCode)),
		slog.String("to", string(req.ToCurrencyCode)),
		slog.String("rate", req.Rate.String()),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getCurrentRate godoc
// @Summary Get the current exchange rate
// @Description Retrieves the latest rate from the reporting currency to the secondary currency
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 503 {object} map[string]string "No exchange rate has been recorded"
// @Security BearerAuth
// @Router /exchange-rates/current [get]
func (h *exchangeRateHandler) getCurrentRate(c *gin.Context) {
	rate, err := h.exchangeRateService.CurrentRate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
