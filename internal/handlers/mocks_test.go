package handlers_test

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CRUDService ---
type MockCRUDService[T any] struct {
	mock.Mock
}

func (m *MockCRUDService[T]) Create(ctx context.Context, entity *T, userID string) (*T, error) {
	args := m.Called(ctx, entity, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDService[T]) Update(ctx context.Context, id string, entity *T, userID string) (*T, error) {
	args := m.Called(ctx, id, entity, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDService[T]) Delete(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

var _ portssvc.CRUDService[domain.Lead] = (*MockCRUDService[domain.Lead])(nil)

// --- Mock ClientService ---
type MockClientService struct {
	MockCRUDService[domain.Client]
}

func (m *MockClientService) MarkProjectionPaid(ctx context.Context, clientID string, index int, userID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, index, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) RecordEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.RecordedEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordedEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	return m.Called(ctx, entryID, userID).Error(0)
}

func (m *MockLedgerService) ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error) {
	args := m.Called(ctx, paid, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commission), args.Error(1)
}

func (m *MockLedgerService) MarkCommissionPaid(ctx context.Context, commissionID string, userID string) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockLedgerService) Salespeople() domain.SalespersonRoster {
	return m.Called().Get(0).(domain.SalespersonRoster)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) GetPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollService) ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollService) PreviewNet(req dto.PayrollPreviewRequest) dto.PayrollPreviewResponse {
	return m.Called(req).Get(0).(dto.PayrollPreviewResponse)
}

func (m *MockPayrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollService) UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollService) TransitionStatus(ctx context.Context, payrollID string, req dto.PayrollStatusRequest, userID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, period domain.Period) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockReportingService) NetProfit(ctx context.Context, period domain.Period) (*domain.NetProfitReport, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetProfitReport), args.Error(1)
}

func (m *MockReportingService) MonthlyTrend(ctx context.Context, period domain.Period) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockReportingService) CategoryBreakdown(ctx context.Context, period domain.Period, t domain.EntryType) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, period, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) AccountSummary(ctx context.Context) (*domain.AccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSummary), args.Error(1)
}

func (m *MockReportingService) CommissionReport(ctx context.Context, period domain.Period) (*domain.CommissionReport, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockReportingService) PayrollSummary(ctx context.Context, period domain.Period) (*domain.PayrollSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSummary), args.Error(1)
}

func (m *MockReportingService) ClientReconciliation(ctx context.Context) ([]domain.ClientDebtDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientDebtDrift), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Upcoming(ctx context.Context, days int) ([]domain.Notification, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

var _ portssvc.NotificationSvc = (*MockNotificationService)(nil)
