package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CRUDRepository ---
type MockCRUDRepository[T any] struct {
	mock.Mock
}

func (m *MockCRUDRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDRepository[T]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDRepository[T]) Insert(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCRUDRepository[T]) Update(ctx context.Context, entity *T, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, entity, expectedUpdatedAt)
	return args.Error(0)
}

func (m *MockCRUDRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockLedgerRepository) ListEntriesInPeriod(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry, commission *domain.Commission) error {
	args := m.Called(ctx, entry, commission)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockLedgerRepository) ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error) {
	args := m.Called(ctx, paid, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commission), args.Error(1)
}

func (m *MockLedgerRepository) MarkCommissionPaid(ctx context.Context, commissionID string, paidAt time.Time, userID string) error {
	args := m.Called(ctx, commissionID, paidAt, userID)
	return args.Error(0)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) SavePayroll(ctx context.Context, record domain.PayrollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPayrollRepository) UpdatePayroll(ctx context.Context, record domain.PayrollRecord, expected domain.PayrollStatus) error {
	args := m.Called(ctx, record, expected)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, from, to domain.Currency) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock ReportCache ---
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
