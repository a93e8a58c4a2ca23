package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is money coming in or going out.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// IsValid reports whether t is income or expense.
func (t EntryType) IsValid() bool {
	return t == Income || t == Expense
}

// LedgerEntry is a single income or expense record. Amounts are in the reporting currency.
type LedgerEntry struct {
	ID                string           `json:"id"`
	Date              time.Time        `json:"date"`
	Type              EntryType        `json:"type"`
	IncomeCategory    string           `json:"incomeCategory,omitempty"`  // Set only when Type is income
	ExpenseCategory   string           `json:"expenseCategory,omitempty"` // Set only when Type is expense
	Description       string           `json:"description,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	AppliesCommission bool             `json:"appliesCommission"`
	Salesperson       *string          `json:"salesperson,omitempty"`
	CommissionAmount  *decimal.Decimal `json:"commissionAmount,omitempty"`
	ClientID          *string          `json:"clientID,omitempty"`
	AuditFields
}

// Category returns whichever category field matches the entry type.
func (e LedgerEntry) Category() string {
	if e.Type == Income {
		return e.IncomeCategory
	}
	return e.ExpenseCategory
}

// Validate checks the structural rules of an entry.
func (e LedgerEntry) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("entry type must be %q or %q, got %q", Income, Expense, e.Type)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date is required")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("entry amount must be positive")
	}
	switch e.Type {
	case Income:
		if strings.TrimSpace(e.IncomeCategory) == "" {
			return fmt.Errorf("income category is required for income entries")
		}
		if e.ExpenseCategory != "" {
			return fmt.Errorf("expense category must be empty for income entries")
		}
	case Expense:
		if strings.TrimSpace(e.ExpenseCategory) == "" {
			return fmt.Errorf("expense category is required for expense entries")
		}
		if e.IncomeCategory != "" {
			return fmt.Errorf("income category must be empty for expense entries")
		}
		if e.AppliesCommission {
			return fmt.Errorf("commission only applies to income entries")
		}
	}
	if e.AppliesCommission && (e.Salesperson == nil || *e.Salesperson == "") {
		return fmt.Errorf("salesperson is required when commission applies")
	}
	return nil
}

// LedgerFilter narrows ledger listings.
type LedgerFilter struct {
	Period    Period
	Type      *EntryType
	Limit     int     // 0 means no limit
	NextToken *string // Opaque token from a previous page
}

// Commission is the payout owed to a salesperson for a qualifying income entry.
// It is created together with its entry and afterwards only its paid flag changes.
type Commission struct {
	CommissionID    string          `json:"commissionID"`
	LedgerEntryID   string          `json:"ledgerEntryID"`
	Date            time.Time       `json:"date"`
	Salesperson     string          `json:"salesperson"`
	Amount          decimal.Decimal `json:"amount"`
	Paid            bool            `json:"paid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	RelatedClientID *string         `json:"relatedClientID,omitempty"`
	AuditFields
}

// RecordedEntry is the result of recording a ledger entry: the entry and, when it
// qualified, the commission written in the same transaction.
type RecordedEntry struct {
	Entry      LedgerEntry `json:"entry"`
	Commission *Commission `json:"commission,omitempty"`
}

// SalespersonRoster is the closed set of names commissions may be attributed to.
type SalespersonRoster []string

// Contains reports whether name is on the roster (exact match after trimming).
func (r SalespersonRoster) Contains(name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}
