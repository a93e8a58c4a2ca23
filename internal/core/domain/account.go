package domain

import (
	"github.com/shopspring/decimal"
)

// MonetaryAccount is a bank or cash account. Its balance is kept in its own currency;
// conversion only happens when reports aggregate it.
type MonetaryAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" validate:"required,max=120"`
	Bank     string          `json:"bank,omitempty" validate:"max=120"`
	Currency Currency        `json:"currency" validate:"required,oneof=USD NIO"`
	Balance  decimal.Decimal `json:"balance"`
	AuditFields
}

func (a *MonetaryAccount) EntityID() string      { return a.ID }
func (a *MonetaryAccount) SetEntityID(id string) { a.ID = id }
