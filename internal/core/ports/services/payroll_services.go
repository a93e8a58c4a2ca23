package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll records
type PayrollReaderSvc interface {
	GetPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)
	ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error)

	// PreviewNet computes the net salary for unsaved inputs.
	PreviewNet(req dto.PayrollPreviewRequest) dto.PayrollPreviewResponse
}

// PayrollWriterSvc defines write operations for payroll records
type PayrollWriterSvc interface {
	// CreatePayroll persists a new Pendiente record with its net salary computed.
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, userID string) (*domain.PayrollRecord, error)

	// UpdatePayroll changes a Pendiente record and recomputes its net salary.
	UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, userID string) (*domain.PayrollRecord, error)

	// TransitionStatus applies a status change allowed by the payroll transition table.
	TransitionStatus(ctx context.Context, payrollID string, req dto.PayrollStatusRequest, userID string) (*domain.PayrollRecord, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
