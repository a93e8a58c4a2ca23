package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type stubRates struct {
	rate  *domain.ExchangeRate
	err   error
	calls int
}

func (s *stubRates) CurrentRate(context.Context) (*domain.ExchangeRate, error) {
	s.calls++
	return s.rate, s.err
}

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ledger         *MockLedgerRepository
	payroll        *MockPayrollRepository
	clients        *MockCRUDRepository[domain.Client]
	currentAssets  *MockCRUDRepository[domain.CurrentAsset]
	fixedAssets    *MockCRUDRepository[domain.NonCurrentAsset]
	currentLiab    *MockCRUDRepository[domain.Liability]
	nonCurrentLiab *MockCRUDRepository[domain.Liability]
	accounts       *MockCRUDRepository[domain.MonetaryAccount]
	rates          *stubRates
	cache          *MockReportCache
	service        portssvc.ReportingService
	period         domain.Period
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ledger = new(MockLedgerRepository)
	suite.payroll = new(MockPayrollRepository)
	suite.clients = new(MockCRUDRepository[domain.Client])
	suite.currentAssets = new(MockCRUDRepository[domain.CurrentAsset])
	suite.fixedAssets = new(MockCRUDRepository[domain.NonCurrentAsset])
	suite.currentLiab = new(MockCRUDRepository[domain.Liability])
	suite.nonCurrentLiab = new(MockCRUDRepository[domain.Liability])
	suite.accounts = new(MockCRUDRepository[domain.MonetaryAccount])
	suite.rates = &stubRates{rate: &domain.ExchangeRate{Rate: decimal.RequireFromString("36.5")}}
	suite.cache = new(MockReportCache)

	suite.service = services.NewReportingService(services.ReportSources{
		Ledger:                suite.ledger,
		Commissions:           suite.ledger,
		Payroll:               suite.payroll,
		Clients:               suite.clients,
		CurrentAssets:         suite.currentAssets,
		NonCurrentAssets:      suite.fixedAssets,
		CurrentLiabilities:    suite.currentLiab,
		NonCurrentLiabilities: suite.nonCurrentLiab,
		Accounts:              suite.accounts,
		Rates:                 suite.rates,
	}, services.WithReportCache(suite.cache))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.period = domain.Period{From: &from, To: &to}
}

func entry(t domain.EntryType, category string, amount int64, date time.Time) domain.LedgerEntry {
	e := domain.LedgerEntry{Type: t, Amount: decimal.NewFromInt(amount), Date: date}
	if t == domain.Income {
		e.IncomeCategory = category
	} else {
		e.ExpenseCategory = category
	}
	return e
}

func (suite *ReportingServiceTestSuite) sampleEntries() []domain.LedgerEntry {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	return []domain.LedgerEntry{
		entry(domain.Income, "Venta de Software", 1000, jan),
		entry(domain.Income, "Consultoría", 500, feb),
		entry(domain.Expense, "Hosting", 300, feb),
	}
}

func (suite *ReportingServiceTestSuite) TestNetProfit_ComputesAndCaches() {
	suite.cache.On("Get", suite.ctx, "net-profit:2024-01-01:2024-03-31", mock.Anything).Return(false, nil).Once()
	suite.ledger.On("ListEntriesInPeriod", suite.ctx, suite.period).Return(suite.sampleEntries(), nil).Once()
	suite.ledger.On("ListCommissions", suite.ctx, (*bool)(nil), suite.period).
		Return([]domain.Commission{{Amount: decimal.NewFromInt(20)}}, nil).Once()
	suite.currentLiab.On("List", suite.ctx, domain.ListOptions{}).
		Return([]domain.Liability{{AmountDue: decimal.NewFromInt(400), Balance: decimal.NewFromInt(100)}}, nil).Once()
	suite.cache.On("Set", suite.ctx, "net-profit:2024-01-01:2024-03-31", mock.AnythingOfType("*domain.NetProfitReport")).Return(nil).Once()

	report, err := suite.service.NetProfit(suite.ctx, suite.period)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1500).Equal(report.TotalIncome))
	suite.True(decimal.NewFromInt(300).Equal(report.TotalExpenses))
	suite.True(decimal.NewFromInt(100).Equal(report.CurrentLiabilities))
	suite.True(decimal.NewFromInt(20).Equal(report.TotalCommissions))
	suite.True(decimal.NewFromInt(1080).Equal(report.NetProfit))
	suite.True(decimal.NewFromInt(756).Equal(report.Split.CompanyShare))
	suite.True(decimal.NewFromInt(324).Equal(report.Split.InvestorShare))
	suite.cache.AssertExpectations(suite.T())
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestNetProfit_CacheHitSkipsSources() {
	suite.cache.On("Get", suite.ctx, "net-profit:2024-01-01:2024-03-31", mock.Anything).Return(true, nil).Once()

	_, err := suite.service.NetProfit(suite.ctx, suite.period)

	suite.Require().NoError(err)
	suite.ledger.AssertNotCalled(suite.T(), "ListEntriesInPeriod", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestNetProfit_FetchFailure() {
	suite.cache.On("Get", suite.ctx, mock.Anything, mock.Anything).Return(false, nil)
	suite.ledger.On("ListEntriesInPeriod", suite.ctx, suite.period).Return(nil, fmt.Errorf("timeout")).Once()

	_, err := suite.service.NetProfit(suite.ctx, suite.period)

	suite.True(errors.Is(err, apperrors.ErrFetchFailed))
	suite.Contains(err.Error(), "ledger entries")
}

func (suite *ReportingServiceTestSuite) TestMonthlyTrendAndCategories() {
	suite.ledger.On("ListEntriesInPeriod", suite.ctx, suite.period).Return(suite.sampleEntries(), nil).Twice()

	months, err := suite.service.MonthlyTrend(suite.ctx, suite.period)
	suite.Require().NoError(err)
	suite.Require().Len(months, 2)
	suite.Equal("2024-01", months[0].YearMonth())
	suite.True(decimal.NewFromInt(500).Equal(months[1].Income))
	suite.True(decimal.NewFromInt(300).Equal(months[1].Expense))

	cats, err := suite.service.CategoryBreakdown(suite.ctx, suite.period, domain.Income)
	suite.Require().NoError(err)
	suite.Require().Len(cats, 2)
	suite.Equal("Consultoría", cats[0].Category)

	_, err = suite.service.CategoryBreakdown(suite.ctx, suite.period, "transfer")
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ReportingServiceTestSuite) TestAccountSummary_ConvertsSecondaryCurrency() {
	suite.accounts.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.MonetaryAccount{
		{ID: "a-1", Name: "BAC USD", Currency: domain.USD, Balance: decimal.NewFromInt(100)},
		{ID: "a-2", Name: "BAC NIO", Currency: domain.NIO, Balance: decimal.NewFromInt(3650)},
	}, nil).Once()

	summary, err := suite.service.AccountSummary(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(200).Equal(summary.Total))
	suite.True(decimal.NewFromInt(100).Equal(summary.Accounts[1].ReportingBalance))
	suite.Equal(1, suite.rates.calls)
}

func (suite *ReportingServiceTestSuite) TestAccountSummary_ReportingOnlySkipsRate() {
	suite.accounts.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.MonetaryAccount{
		{ID: "a-1", Currency: domain.USD, Balance: decimal.NewFromInt(100)},
	}, nil).Once()

	summary, err := suite.service.AccountSummary(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(100).Equal(summary.Total))
	suite.Equal(0, suite.rates.calls)
}

func (suite *ReportingServiceTestSuite) TestAccountSummary_MissingRate() {
	suite.rates.rate = nil
	suite.rates.err = fmt.Errorf("%w: no USD to NIO exchange rate has been recorded", apperrors.ErrMissingConfiguration)
	suite.accounts.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.MonetaryAccount{
		{ID: "a-2", Currency: domain.NIO, Balance: decimal.NewFromInt(3650)},
	}, nil).Once()

	_, err := suite.service.AccountSummary(suite.ctx)

	suite.True(errors.Is(err, apperrors.ErrMissingConfiguration))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	suite.accounts.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.MonetaryAccount{
		{Currency: domain.USD, Balance: decimal.NewFromInt(1000)},
	}, nil).Once()
	suite.currentAssets.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.CurrentAsset{
		{Value: decimal.NewFromInt(200)},
	}, nil).Once()
	suite.fixedAssets.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.NonCurrentAsset{
		{Value: decimal.NewFromInt(2000), Depreciation: decimal.NewFromInt(500), NetValue: decimal.NewFromInt(1500)},
	}, nil).Once()
	suite.currentLiab.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.Liability{
		{Balance: decimal.NewFromInt(300)},
	}, nil).Once()
	suite.nonCurrentLiab.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.Liability{
		{Balance: decimal.NewFromInt(900)},
	}, nil).Once()

	sheet, err := suite.service.BalanceSheet(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(2700).Equal(sheet.TotalAssets))
	suite.True(decimal.NewFromInt(1200).Equal(sheet.TotalLiabilities))
	suite.True(decimal.NewFromInt(1500).Equal(sheet.Equity))
}

func (suite *ReportingServiceTestSuite) TestCommissionReport_GroupsBySalesperson() {
	suite.ledger.On("ListCommissions", suite.ctx, (*bool)(nil), suite.period).Return([]domain.Commission{
		{Salesperson: "Luis Herrera", Amount: decimal.NewFromInt(40), Paid: true},
		{Salesperson: "Ana Ruiz", Amount: decimal.NewFromInt(20)},
		{Salesperson: "Luis Herrera", Amount: decimal.NewFromInt(10)},
	}, nil).Once()

	report, err := suite.service.CommissionReport(suite.ctx, suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(report.BySalesperson, 2)
	suite.Equal("Ana Ruiz", report.BySalesperson[0].Salesperson)
	luis := report.BySalesperson[1]
	suite.Equal(2, luis.Count)
	suite.True(decimal.NewFromInt(40).Equal(luis.Paid))
	suite.True(decimal.NewFromInt(10).Equal(luis.Pending))
	suite.True(decimal.NewFromInt(70).Equal(report.Total))
	suite.True(decimal.NewFromInt(30).Equal(report.Pending))
}

func (suite *ReportingServiceTestSuite) TestPayrollSummary() {
	suite.payroll.On("ListPayroll", suite.ctx, domain.PayrollFilter{Period: suite.period}).Return([]domain.PayrollRecord{
		{BaseSalary: decimal.NewFromInt(1000), Bonuses: decimal.NewFromInt(200), Deductions: decimal.NewFromInt(50), NetSalary: decimal.NewFromInt(1150), Status: domain.PayrollPaid},
		{BaseSalary: decimal.NewFromInt(800), NetSalary: decimal.NewFromInt(800), Status: domain.PayrollPending},
	}, nil).Once()

	summary, err := suite.service.PayrollSummary(suite.ctx, suite.period)

	suite.Require().NoError(err)
	suite.Equal(2, summary.Records)
	suite.True(decimal.NewFromInt(1950).Equal(summary.TotalNet))
	suite.True(decimal.NewFromInt(800).Equal(summary.NetByStatus[domain.PayrollPending]))
}

func (suite *ReportingServiceTestSuite) TestClientReconciliation() {
	suite.clients.On("List", suite.ctx, domain.ListOptions{}).Return([]domain.Client{
		{ID: "ok", Cost: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(40), Debt: decimal.NewFromInt(60)},
		{ID: "drift", Cost: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(40), Debt: decimal.NewFromInt(100)},
	}, nil).Once()

	drifts, err := suite.service.ClientReconciliation(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(drifts, 1)
	suite.Equal("drift", drifts[0].ClientID)
	suite.True(decimal.NewFromInt(40).Equal(drifts[0].Drift))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
