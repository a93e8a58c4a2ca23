package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository implements the exchange rate repository ports.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db DBPool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, replacing any rate already stored for the same pair and day.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if rate.FromCurrencyCode == rate.ToCurrencyCode {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective)
		DO UPDATE SET rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.DateEffective,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "exchange rate "+m.FromCurrencyCode+"->"+m.ToCurrencyCode)
	}
	return nil
}

// FindLatestExchangeRate retrieves the most recent exchange rate between two currencies.
// A rate stored for the reverse pair is used, inverted, when it is newer than the direct one.
func (r *PgxExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, from, to domain.Currency) (*domain.ExchangeRate, error) {
	directRate, err := r.findRate(ctx, from, to)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	inverseRate, err := r.findRate(ctx, to, from)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if directRate == nil && inverseRate == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no exchange rate found for currency pair %s to %s", from, to))
	}
	if !useInverse(directRate, inverseRate) {
		return directRate, nil
	}

	if inverseRate.Rate.IsZero() {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("stored %s to %s rate is zero", to, from))
	}
	inverseRate.FromCurrencyCode = from
	inverseRate.ToCurrencyCode = to
	inverseRate.Rate = decimal.NewFromInt(1).Div(inverseRate.Rate)
	return inverseRate, nil
}

func (r *PgxExchangeRateRepository) findRate(ctx context.Context, from, to domain.Currency) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC, created_at DESC
		LIMIT 1;
	`

	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, string(from), string(to)).Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode,
		&m.Rate, &m.DateEffective, &m.CreatedAt,
		&m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		return nil, fmt.Errorf("failed to find exchange rate: %w", err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// useInverse reports whether the reverse-pair rate should win over the direct one.
func useInverse(direct, inverse *domain.ExchangeRate) bool {
	if inverse == nil {
		return false
	}
	if direct == nil {
		return true
	}
	return newerRate(*inverse, *direct)
}

// newerRate reports whether a took effect after b, using creation time to break ties.
func newerRate(a, b domain.ExchangeRate) bool {
	if !a.DateEffective.Equal(b.DateEffective) {
		return a.DateEffective.After(b.DateEffective)
	}
	return a.CreatedAt.After(b.CreatedAt)
}
