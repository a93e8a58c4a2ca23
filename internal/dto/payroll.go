package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayrollRequest defines the payload for a new payroll record. Net salary is computed.
type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employeeID" binding:"required"`
	PeriodStart time.Time        `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time        `json:"periodEnd" binding:"required,gtefield=PeriodStart"`
	BaseSalary  decimal.Decimal  `json:"baseSalary"`
	Bonuses     *decimal.Decimal `json:"bonuses"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Notes       string           `json:"notes" binding:"max=500"`
}

// UpdatePayrollRequest changes the amounts or notes of a pending payroll record.
// Nil fields are left unchanged.
type UpdatePayrollRequest struct {
	PeriodStart *time.Time       `json:"periodStart"`
	PeriodEnd   *time.Time       `json:"periodEnd"`
	BaseSalary  *decimal.Decimal `json:"baseSalary"`
	Bonuses     *decimal.Decimal `json:"bonuses"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Notes       *string          `json:"notes" binding:"omitempty,max=500"`
}

// PayrollStatusRequest moves a payroll record to a new status.
type PayrollStatusRequest struct {
	Status      domain.PayrollStatus `json:"status" binding:"required,oneof=Pendiente Pagado Cancelado"`
	PaymentDate *time.Time           `json:"paymentDate"` // Defaults to now when marking paid
}

// PayrollPreviewRequest carries the live inputs of the payroll form.
type PayrollPreviewRequest struct {
	BaseSalary decimal.Decimal  `json:"baseSalary"`
	Bonuses    *decimal.Decimal `json:"bonuses"`
	Deductions *decimal.Decimal `json:"deductions"`
}

// PayrollPreviewResponse is the computed net salary for the previewed inputs.
type PayrollPreviewResponse struct {
	NetSalary decimal.Decimal `json:"netSalary"`
}

// ListPayrollParams defines query parameters for listing payroll records.
type ListPayrollParams struct {
	EmployeeID string `form:"employeeId"`
	Status     string `form:"status" binding:"omitempty,oneof=Pendiente Pagado Cancelado"`
	From       string `form:"from"`
	To         string `form:"to"`
}
