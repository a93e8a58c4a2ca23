package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/SscSPs/backoffice_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type payrollService struct {
	BaseService
	payrollRepo  portsrepo.PayrollRepositoryFacade
	employeeRepo portsrepo.CRUDReader[domain.Employee]
}

// PayrollServiceOption is a functional option for configuring the payroll service
type PayrollServiceOption func(*payrollService)

// WithEmployeeReader makes CreatePayroll reject unknown employees with a validation error.
func WithEmployeeReader(repo portsrepo.CRUDReader[domain.Employee]) PayrollServiceOption {
	return func(s *payrollService) {
		s.employeeRepo = repo
	}
}

// WithPayrollReportCache sets the cache invalidated after every payroll write.
func WithPayrollReportCache(c cache.ReportCache) PayrollServiceOption {
	return func(s *payrollService) {
		s.reportCache = c
	}
}

// NewPayrollService creates a new payroll service with the provided options
func NewPayrollService(repo portsrepo.PayrollRepositoryFacade, options ...PayrollServiceOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		BaseService: newBaseService(nil),
		payrollRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) PreviewNet(req dto.PayrollPreviewRequest) dto.PayrollPreviewResponse {
	return dto.PayrollPreviewResponse{
		NetSalary: accounting.ComputePayrollNet(req.BaseSalary, req.Bonuses, req.Deductions),
	}
}

func (s *payrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, apperrors.NewValidationError("periodEnd must not be before periodStart")
	}
	if req.BaseSalary.IsNegative() {
		return nil, apperrors.NewValidationError("baseSalary must not be negative")
	}

	if s.employeeRepo != nil {
		if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: employee %s does not exist", apperrors.ErrValidation, req.EmployeeID)
			}
			return nil, err
		}
	}

	record := domain.PayrollRecord{
		PayrollID:   uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		BaseSalary:  req.BaseSalary,
		Bonuses:     valueOrZero(req.Bonuses),
		Deductions:  valueOrZero(req.Deductions),
		Status:      domain.PayrollPending,
		Notes:       req.Notes,
	}
	record.NetSalary = accounting.ComputePayrollNet(record.BaseSalary, &record.Bonuses, &record.Deductions)
	record.Stamp(userID, s.Now())

	if err := s.payrollRepo.SavePayroll(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to create payroll record",
			slog.String("employee_id", req.EmployeeID), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create payroll record: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Payroll record created", slog.String("payroll_id", record.PayrollID))
	return &record, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	record, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.PayrollPending {
		return nil, fmt.Errorf("%w: payroll record %s is %s and can no longer be edited",
			apperrors.ErrInvalidTransition, payrollID, record.Status)
	}

	if req.PeriodStart != nil {
		record.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		record.PeriodEnd = *req.PeriodEnd
	}
	if req.BaseSalary != nil {
		record.BaseSalary = *req.BaseSalary
	}
	if req.Bonuses != nil {
		record.Bonuses = *req.Bonuses
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if record.PeriodEnd.Before(record.PeriodStart) {
		return nil, apperrors.NewValidationError("periodEnd must not be before periodStart")
	}
	if record.BaseSalary.IsNegative() {
		return nil, apperrors.NewValidationError("baseSalary must not be negative")
	}

	record.NetSalary = accounting.ComputePayrollNet(record.BaseSalary, &record.Bonuses, &record.Deductions)
	record.Touch(userID, s.Now())

	if err := s.payrollRepo.UpdatePayroll(ctx, *record, domain.PayrollPending); err != nil {
		s.LogError(ctx, err, "Failed to update payroll record", slog.String("payroll_id", payrollID))
		return nil, fmt.Errorf("failed to update payroll record: %w", err)
	}
	s.InvalidateReports(ctx)
	return record, nil
}

func (s *payrollService) TransitionStatus(ctx context.Context, payrollID string, req dto.PayrollStatusRequest, userID string) (*domain.PayrollRecord, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown payroll status %q", req.Status))
	}
	record, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if !record.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: payroll record %s cannot move from %s to %s",
			apperrors.ErrInvalidTransition, payrollID, record.Status, req.Status)
	}

	now := s.Now()
	prev := record.Status
	record.Status = req.Status
	if req.Status == domain.PayrollPaid {
		paidOn := now
		if req.PaymentDate != nil {
			paidOn = *req.PaymentDate
		}
		record.PaymentDate = &paidOn
	}
	record.Touch(userID, now)

	if err := s.payrollRepo.UpdatePayroll(ctx, *record, prev); err != nil {
		s.LogError(ctx, err, "Failed to change payroll status", slog.String("payroll_id", payrollID))
		return nil, fmt.Errorf("failed to change payroll status: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Payroll status changed",
		slog.String("payroll_id", payrollID), slog.String("status", string(record.Status)))
	return record, nil
}

func (s *payrollService) GetPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	return s.payrollRepo.FindPayrollByID(ctx, payrollID)
}

func (s *payrollService) ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error) {
	return s.payrollRepo.ListPayroll(ctx, filter)
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
