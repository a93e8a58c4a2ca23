package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the payload for recording an income or expense.
type CreateLedgerEntryRequest struct {
	Date              time.Time        `json:"date" binding:"required"`
	Type              domain.EntryType `json:"type" binding:"required,oneof=income expense"`
	IncomeCategory    string           `json:"incomeCategory" binding:"max=120"`
	ExpenseCategory   string           `json:"expenseCategory" binding:"max=120"`
	Description       string           `json:"description" binding:"max=500"`
	Amount            decimal.Decimal  `json:"amount"`
	AppliesCommission bool             `json:"appliesCommission"`
	Salesperson       *string          `json:"salesperson"`
	ClientID          *string          `json:"clientID"`
}

// ToDomain converts the request into an unsaved ledger entry.
func (r CreateLedgerEntryRequest) ToDomain() domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:              r.Date,
		Type:              r.Type,
		IncomeCategory:    r.IncomeCategory,
		ExpenseCategory:   r.ExpenseCategory,
		Description:       r.Description,
		Amount:            r.Amount,
		AppliesCommission: r.AppliesCommission,
		Salesperson:       r.Salesperson,
		ClientID:          r.ClientID,
	}
}

// ListLedgerEntriesParams defines query parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	From      string  `form:"from"`
	To        string  `form:"to"`
	Type      string  `form:"type" binding:"omitempty,oneof=income expense"`
	Limit     int     `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerEntriesResponse wraps a page of entries.
type ListLedgerEntriesResponse struct {
	Entries   []domain.LedgerEntry `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"` // Absent on the last page
}

// ListCommissionsParams defines query parameters for listing commissions.
type ListCommissionsParams struct {
	Paid *bool  `form:"paid"`
	From string `form:"from"`
	To   string `form:"to"`
}
