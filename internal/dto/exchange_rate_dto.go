package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode domain.Currency `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   domain.Currency `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate"` // Must be positive, checked by the service
	DateEffective    *time.Time      `json:"dateEffective"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode domain.Currency `json:"fromCurrencyCode"`
	ToCurrencyCode   domain.Currency `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}
