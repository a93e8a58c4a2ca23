package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestExchangeRate retrieves the most recent rate between two currencies. If only
	// the inverse pair is stored, its reciprocal is returned. Returns apperrors.ErrNotFound
	// when neither exists.
	FindLatestExchangeRate(ctx context.Context, from, to domain.Currency) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
