package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rateOn(from, to domain.Currency, day int, rate string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		DateEffective:    time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestUseInverse(t *testing.T) {
	direct := rateOn(domain.USD, domain.NIO, 1, "36.5")
	newerInverse := rateOn(domain.NIO, domain.USD, 15, "0.027")
	olderInverse := rateOn(domain.NIO, domain.USD, 1, "0.027")

	assert.False(t, useInverse(direct, nil))
	assert.True(t, useInverse(nil, olderInverse))
	assert.True(t, useInverse(direct, newerInverse), "a newer reverse-pair rate wins")
	assert.False(t, useInverse(rateOn(domain.USD, domain.NIO, 20, "36.7"), newerInverse))
}

func TestUseInverse_SameDayBrokenByCreation(t *testing.T) {
	direct := rateOn(domain.USD, domain.NIO, 1, "36.5")
	inverse := rateOn(domain.NIO, domain.USD, 1, "0.027")
	direct.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	inverse.CreatedAt = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, useInverse(direct, inverse))

	direct.CreatedAt = inverse.CreatedAt
	assert.False(t, useInverse(direct, inverse), "ties keep the direct rate")
}
