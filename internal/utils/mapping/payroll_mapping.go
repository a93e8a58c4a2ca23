package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelPayrollRecord converts a domain PayrollRecord to a model PayrollRecord
func ToModelPayrollRecord(d domain.PayrollRecord) models.PayrollRecord {
	return models.PayrollRecord{
		PayrollID:   d.PayrollID,
		EmployeeID:  d.EmployeeID,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		BaseSalary:  d.BaseSalary,
		Bonuses:     d.Bonuses,
		Deductions:  d.Deductions,
		NetSalary:   d.NetSalary,
		Status:      string(d.Status),
		PaymentDate: d.PaymentDate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollRecord converts a model PayrollRecord to a domain PayrollRecord
func ToDomainPayrollRecord(m models.PayrollRecord) domain.PayrollRecord {
	return domain.PayrollRecord{
		PayrollID:   m.PayrollID,
		EmployeeID:  m.EmployeeID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		BaseSalary:  m.BaseSalary,
		Bonuses:     m.Bonuses,
		Deductions:  m.Deductions,
		NetSalary:   m.NetSalary,
		Status:      domain.PayrollStatus(m.Status),
		PaymentDate: m.PaymentDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
