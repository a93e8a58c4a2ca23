package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the lifecycle state of a payroll record.
type PayrollStatus string

const (
	PayrollPending   PayrollStatus = "Pendiente"
	PayrollPaid      PayrollStatus = "Pagado"
	PayrollCancelled PayrollStatus = "Cancelado"
)

// payrollTransitions lists the allowed target states per source state.
// Paid and cancelled are terminal.
var payrollTransitions = map[PayrollStatus][]PayrollStatus{
	PayrollPending:   {PayrollPaid, PayrollCancelled},
	PayrollPaid:      {},
	PayrollCancelled: {},
}

// IsValid reports whether s is a known status.
func (s PayrollStatus) IsValid() bool {
	_, ok := payrollTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible from s.
func (s PayrollStatus) IsTerminal() bool {
	return len(payrollTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	for _, allowed := range payrollTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PayrollRecord is one salary payment for an employee and period.
// NetSalary always equals BaseSalary + Bonuses - Deductions.
type PayrollRecord struct {
	PayrollID   string          `json:"payrollID"`
	EmployeeID  string          `json:"employeeID"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	BaseSalary  decimal.Decimal `json:"baseSalary"`
	Bonuses     decimal.Decimal `json:"bonuses"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	Status      PayrollStatus   `json:"status"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}

// PayrollFilter narrows payroll listings.
type PayrollFilter struct {
	EmployeeID *string
	Status     *PayrollStatus
	Period     Period // Matched against PeriodEnd
}

// Employee is a member of staff who can be paid through payroll.
type Employee struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName" validate:"required,max=160"`
	Position   string          `json:"position,omitempty" validate:"max=120"`
	Email      string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string          `json:"phone,omitempty" validate:"max=40"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	HiredOn    *time.Time      `json:"hiredOn,omitempty"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

func (e *Employee) EntityID() string      { return e.ID }
func (e *Employee) SetEntityID(id string) { e.ID = id }
