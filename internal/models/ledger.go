package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries row. Exactly one category column is non-NULL.
type LedgerEntry struct {
	EntryID           string           `db:"entry_id"`
	EntryDate         time.Time        `db:"entry_date"`
	EntryType         string           `db:"entry_type"`
	IncomeCategory    *string          `db:"income_category"`
	ExpenseCategory   *string          `db:"expense_category"`
	Description       string           `db:"description"`
	Amount            decimal.Decimal  `db:"amount"`
	AppliesCommission bool             `db:"applies_commission"`
	Salesperson       *string          `db:"salesperson"`
	CommissionAmount  *decimal.Decimal `db:"commission_amount"`
	ClientID          *string          `db:"client_id"`
	AuditFields
}

// Commission is the commissions row, one per qualifying ledger entry.
type Commission struct {
	CommissionID    string          `db:"commission_id"`
	LedgerEntryID   string          `db:"ledger_entry_id"`
	CommissionDate  time.Time       `db:"commission_date"`
	Salesperson     string          `db:"salesperson"`
	Amount          decimal.Decimal `db:"amount"`
	Paid            bool            `db:"paid"`
	PaidAt          *time.Time      `db:"paid_at"`
	RelatedClientID *string         `db:"related_client_id"`
	AuditFields
}
