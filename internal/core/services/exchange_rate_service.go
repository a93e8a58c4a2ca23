package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo  portsrepo.ExchangeRateRepositoryFacade
	reporting domain.Currency
	secondary domain.Currency
}

// NewExchangeRateService creates a new ExchangeRateService. CurrentRate looks up the
// reporting -> secondary pair.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, reporting, secondary domain.Currency, reportCache cache.ReportCache) *ExchangeRateService {
	return &ExchangeRateService{
		BaseService: newBaseService(reportCache),
		rateRepo:    rateRepo,
		reporting:   reporting,
		secondary:   secondary,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if !req.FromCurrencyCode.IsSupported() {
		return nil, fmt.Errorf("%w: 'from' currency code '%s' is not supported", apperrors.ErrValidation, req.FromCurrencyCode)
	}
	if !req.ToCurrencyCode.IsSupported() {
		return nil, fmt.Errorf("%w: 'to' currency code '%s' is not supported", apperrors.ErrValidation, req.ToCurrencyCode)
	}

	now := s.Now()
	effective := now.Truncate(24 * time.Hour)
	if req.DateEffective != nil {
		effective = req.DateEffective.UTC().Truncate(24 * time.Hour)
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		DateEffective:    effective,
	}
	rate.Stamp(creatorUserID, now)

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to create exchange rate",
			slog.String("from", string(rate.FromCurrencyCode)), slog.String("to", string(rate.ToCurrencyCode)))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	s.InvalidateReports(ctx)

	return &rate, nil
}

// CurrentRate returns the latest reporting -> secondary currency rate.
func (s *ExchangeRateService) CurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindLatestExchangeRate(ctx, s.reporting, s.secondary)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no %s to %s exchange rate has been recorded",
				apperrors.ErrMissingConfiguration, s.reporting, s.secondary)
		}
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}
