package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is the payroll_records row.
type PayrollRecord struct {
	PayrollID   string          `db:"payroll_id"`
	EmployeeID  string          `db:"employee_id"`
	PeriodStart time.Time       `db:"period_start"`
	PeriodEnd   time.Time       `db:"period_end"`
	BaseSalary  decimal.Decimal `db:"base_salary"`
	Bonuses     decimal.Decimal `db:"bonuses"`
	Deductions  decimal.Decimal `db:"deductions"`
	NetSalary   decimal.Decimal `db:"net_salary"`
	Status      string          `db:"status"`
	PaymentDate *time.Time      `db:"payment_date"`
	Notes       string          `db:"notes"`
	AuditFields
}
