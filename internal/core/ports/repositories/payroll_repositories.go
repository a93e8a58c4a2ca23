package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// PayrollReader defines read operations for payroll records
type PayrollReader interface {
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)
	ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error)
}

// PayrollWriter defines write operations for payroll records
type PayrollWriter interface {
	SavePayroll(ctx context.Context, record domain.PayrollRecord) error

	// UpdatePayroll overwrites amounts, period, notes, status and payment date, provided the
	// stored status is still expected. A record in any other status yields
	// apperrors.ErrInvalidTransition; an unknown id yields apperrors.ErrNotFound.
	UpdatePayroll(ctx context.Context, record domain.PayrollRecord, expected domain.PayrollStatus) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
