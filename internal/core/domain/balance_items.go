package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentAsset is a short-lived asset such as receivables or inventory.
type CurrentAsset struct {
	ID          string          `json:"id"`
	Description string          `json:"description" validate:"required,max=255"`
	Value       decimal.Decimal `json:"value"`
	AuditFields
}

func (a *CurrentAsset) EntityID() string      { return a.ID }
func (a *CurrentAsset) SetEntityID(id string) { a.ID = id }

// NonCurrentAsset is a long-lived asset that depreciates. NetValue is derived and
// always equals Value minus Depreciation after a write.
type NonCurrentAsset struct {
	ID           string          `json:"id"`
	Description  string          `json:"description" validate:"required,max=255"`
	Value        decimal.Decimal `json:"value"`
	Depreciation decimal.Decimal `json:"depreciation"`
	NetValue     decimal.Decimal `json:"netValue"`
	AcquiredOn   *time.Time      `json:"acquiredOn,omitempty"`
	AuditFields
}

func (a *NonCurrentAsset) EntityID() string      { return a.ID }
func (a *NonCurrentAsset) SetEntityID(id string) { a.ID = id }

// Derive recomputes NetValue.
func (a *NonCurrentAsset) Derive() {
	a.NetValue = a.Value.Sub(a.Depreciation)
}

// Liability is shared by the current and non-current liability tables.
// Balance is the part of AmountDue still outstanding.
type Liability struct {
	ID          string          `json:"id"`
	Description string          `json:"description" validate:"required,max=255"`
	AmountDue   decimal.Decimal `json:"amountDue"`
	Balance     decimal.Decimal `json:"balance"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	AuditFields
}

func (l *Liability) EntityID() string      { return l.ID }
func (l *Liability) SetEntityID(id string) { l.ID = id }
