package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is one of the two units the business operates in.
type Currency string

const (
	USD Currency = "USD" // Reporting (primary) currency
	NIO Currency = "NIO" // Secondary currency, córdobas
)

// ReportingCurrency is the currency every aggregate is expressed in.
const ReportingCurrency = USD

// IsSupported reports whether c is one of the two known currencies.
func (c Currency) IsSupported() bool {
	return c == USD || c == NIO
}

// ExchangeRate stores how many units of ToCurrencyCode one unit of FromCurrencyCode buys.
// The business records USD -> NIO, e.g. 36.5.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode Currency        `json:"fromCurrencyCode"`
	ToCurrencyCode   Currency        `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
