package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/SscSPs/backoffice_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ReportSources are the read-only stores every report aggregates over.
type ReportSources struct {
	Ledger                portsrepo.LedgerReader
	Commissions           portsrepo.CommissionReader
	Payroll               portsrepo.PayrollReader
	Clients               portsrepo.CRUDReader[domain.Client]
	CurrentAssets         portsrepo.CRUDReader[domain.CurrentAsset]
	NonCurrentAssets      portsrepo.CRUDReader[domain.NonCurrentAsset]
	CurrentLiabilities    portsrepo.CRUDReader[domain.Liability]
	NonCurrentLiabilities portsrepo.CRUDReader[domain.Liability]
	Accounts              portsrepo.CRUDReader[domain.MonetaryAccount]
	Rates                 portssvc.ExchangeRateReaderSvc
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	src ReportSources
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache caches the dashboard and net profit reports.
func WithReportCache(c cache.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.reportCache = c
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(src ReportSources, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService: newBaseService(nil),
		src:         src,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) NetProfit(ctx context.Context, period domain.Period) (*domain.NetProfitReport, error) {
	var report domain.NetProfitReport
	key := cacheKey("net-profit", period)
	if s.cached(ctx, key, &report) {
		report.Period = period
		return &report, nil
	}

	entries, err := s.entries(ctx, period)
	if err != nil {
		return nil, err
	}
	computed, err := s.netProfit(ctx, period, entries)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, computed)
	return computed, nil
}

func (s *reportingService) netProfit(ctx context.Context, period domain.Period, entries []domain.LedgerEntry) (*domain.NetProfitReport, error) {
	commissions, err := s.src.Commissions.ListCommissions(ctx, nil, period)
	if err != nil {
		return nil, s.fetchFailed(ctx, "commissions", err)
	}
	liabilities, err := s.src.CurrentLiabilities.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "current liabilities", err)
	}

	income := accounting.SumByType(entries, domain.Income)
	expense := accounting.SumByType(entries, domain.Expense)
	liabilityTotal := accounting.SumAmounts(liabilities, func(l domain.Liability) decimal.Decimal { return l.Balance })
	commissionTotal := accounting.SumAmounts(commissions, func(c domain.Commission) decimal.Decimal { return c.Amount })
	net := accounting.ComputeNetProfit(income, expense, liabilityTotal, commissionTotal)

	return &domain.NetProfitReport{
		Period:             period,
		TotalIncome:        income,
		TotalExpenses:      expense,
		CurrentLiabilities: liabilityTotal,
		TotalCommissions:   commissionTotal,
		NetProfit:          net,
		Split:              accounting.SplitNetProfit(net),
	}, nil
}

func (s *reportingService) Summary(ctx context.Context, period domain.Period) (*domain.FinancialSummary, error) {
	var summary domain.FinancialSummary
	key := cacheKey("summary", period)
	if s.cached(ctx, key, &summary) {
		summary.Period = period
		return &summary, nil
	}

	entries, err := s.entries(ctx, period)
	if err != nil {
		return nil, err
	}
	np, err := s.netProfit(ctx, period, entries)
	if err != nil {
		return nil, err
	}
	accounts, err := s.AccountSummary(ctx)
	if err != nil {
		return nil, err
	}

	pendingStatus := domain.PayrollPending
	pending, err := s.src.Payroll.ListPayroll(ctx, domain.PayrollFilter{Status: &pendingStatus, Period: period})
	if err != nil {
		return nil, s.fetchFailed(ctx, "payroll records", err)
	}
	clients, err := s.src.Clients.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "clients", err)
	}

	result := &domain.FinancialSummary{
		NetProfitReport: *np,
		AccountsTotal:   accounts.Total,
		ExchangeRate:    accounts.ExchangeRate,
		PendingPayroll:  accounting.SumAmounts(pending, func(p domain.PayrollRecord) decimal.Decimal { return p.NetSalary }),
		OutstandingDebt: accounting.SumAmounts(clients, func(c domain.Client) decimal.Decimal { return c.Debt }),
		EntryCount:      len(entries),
	}
	s.store(ctx, key, result)
	return result, nil
}

func (s *reportingService) MonthlyTrend(ctx context.Context, period domain.Period) ([]domain.MonthlyTotal, error) {
	entries, err := s.entries(ctx, period)
	if err != nil {
		return nil, err
	}
	return accounting.SumByMonth(entries), nil
}

func (s *reportingService) CategoryBreakdown(ctx context.Context, period domain.Period, t domain.EntryType) ([]domain.CategoryTotal, error) {
	if !t.IsValid() {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	entries, err := s.entries(ctx, period)
	if err != nil {
		return nil, err
	}
	return accounting.SumByCategory(entries, t), nil
}

func (s *reportingService) AccountSummary(ctx context.Context) (*domain.AccountSummary, error) {
	accounts, err := s.src.Accounts.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "monetary accounts", err)
	}

	// The rate is only required when some balance is not already in the reporting currency.
	rate := decimal.Zero
	for _, a := range accounts {
		if a.Currency != domain.ReportingCurrency {
			current, err := s.src.Rates.CurrentRate(ctx)
			if err != nil {
				if errors.Is(err, apperrors.ErrMissingConfiguration) {
					return nil, err
				}
				return nil, s.fetchFailed(ctx, "exchange rate", err)
			}
			rate = current.Rate
			break
		}
	}

	summary := &domain.AccountSummary{
		Accounts:     make([]domain.AccountBalance, 0, len(accounts)),
		Total:        decimal.Zero,
		ExchangeRate: rate,
	}
	for _, a := range accounts {
		converted, err := accounting.ConvertToReportingCurrency(a.Balance, a.Currency, rate)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", a.ID, err)
		}
		summary.Accounts = append(summary.Accounts, domain.AccountBalance{
			AccountID:        a.ID,
			Name:             a.Name,
			Currency:         a.Currency,
			Balance:          a.Balance,
			ReportingBalance: converted,
		})
		summary.Total = summary.Total.Add(converted)
	}
	return summary, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	accounts, err := s.AccountSummary(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.src.CurrentAssets.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "current assets", err)
	}
	nonCurrent, err := s.src.NonCurrentAssets.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "non-current assets", err)
	}
	currentLiab, err := s.src.CurrentLiabilities.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "current liabilities", err)
	}
	nonCurrentLiab, err := s.src.NonCurrentLiabilities.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "non-current liabilities", err)
	}

	balance := func(l domain.Liability) decimal.Decimal { return l.Balance }
	report := &domain.BalanceSheetReport{
		Cash:                  accounts.Total,
		CurrentAssets:         accounting.SumAmounts(current, func(a domain.CurrentAsset) decimal.Decimal { return a.Value }),
		NonCurrentAssets:      accounting.SumAmounts(nonCurrent, func(a domain.NonCurrentAsset) decimal.Decimal { return a.NetValue }),
		CurrentLiabilities:    accounting.SumAmounts(currentLiab, balance),
		NonCurrentLiabilities: accounting.SumAmounts(nonCurrentLiab, balance),
	}
	report.TotalAssets = report.Cash.Add(report.CurrentAssets).Add(report.NonCurrentAssets)
	report.TotalLiabilities = report.CurrentLiabilities.Add(report.NonCurrentLiabilities)
	report.Equity = report.TotalAssets.Sub(report.TotalLiabilities)
	return report, nil
}

func (s *reportingService) CommissionReport(ctx context.Context, period domain.Period) (*domain.CommissionReport, error) {
	commissions, err := s.src.Commissions.ListCommissions(ctx, nil, period)
	if err != nil {
		return nil, s.fetchFailed(ctx, "commissions", err)
	}

	bySalesperson := make(map[string]*domain.SalespersonCommission)
	report := &domain.CommissionReport{Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero}
	for _, c := range commissions {
		row, ok := bySalesperson[c.Salesperson]
		if !ok {
			row = &domain.SalespersonCommission{
				Salesperson: c.Salesperson,
				Total:       decimal.Zero,
				Paid:        decimal.Zero,
				Pending:     decimal.Zero,
			}
			bySalesperson[c.Salesperson] = row
		}
		row.Total = row.Total.Add(c.Amount)
		row.Count++
		report.Total = report.Total.Add(c.Amount)
		if c.Paid {
			row.Paid = row.Paid.Add(c.Amount)
			report.Paid = report.Paid.Add(c.Amount)
		} else {
			row.Pending = row.Pending.Add(c.Amount)
			report.Pending = report.Pending.Add(c.Amount)
		}
	}

	report.BySalesperson = make([]domain.SalespersonCommission, 0, len(bySalesperson))
	for _, row := range bySalesperson {
		report.BySalesperson = append(report.BySalesperson, *row)
	}
	sort.Slice(report.BySalesperson, func(i, j int) bool {
		return report.BySalesperson[i].Salesperson < report.BySalesperson[j].Salesperson
	})
	return report, nil
}

func (s *reportingService) PayrollSummary(ctx context.Context, period domain.Period) (*domain.PayrollSummary, error) {
	records, err := s.src.Payroll.ListPayroll(ctx, domain.PayrollFilter{Period: period})
	if err != nil {
		return nil, s.fetchFailed(ctx, "payroll records", err)
	}

	summary := &domain.PayrollSummary{
		Records:         len(records),
		TotalBase:       decimal.Zero,
		TotalBonuses:    decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
		NetByStatus:     make(map[domain.PayrollStatus]decimal.Decimal),
	}
	for _, r := range records {
		summary.TotalBase = summary.TotalBase.Add(r.BaseSalary)
		summary.TotalBonuses = summary.TotalBonuses.Add(r.Bonuses)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.Deductions)
		summary.TotalNet = summary.TotalNet.Add(r.NetSalary)
		summary.NetByStatus[r.Status] = summary.NetByStatus[r.Status].Add(r.NetSalary)
	}
	return summary, nil
}

func (s *reportingService) ClientReconciliation(ctx context.Context) ([]domain.ClientDebtDrift, error) {
	clients, err := s.src.Clients.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, s.fetchFailed(ctx, "clients", err)
	}

	drifts := []domain.ClientDebtDrift{}
	for _, c := range clients {
		expected := c.ExpectedDebt()
		if c.Debt.Equal(expected) {
			continue
		}
		drifts = append(drifts, domain.ClientDebtDrift{
			ClientID:     c.ID,
			Name:         c.Name,
			Cost:         c.Cost,
			AmountPaid:   c.AmountPaid,
			StoredDebt:   c.Debt,
			ExpectedDebt: expected,
			Drift:        c.Debt.Sub(expected),
		})
	}
	return drifts, nil
}

func (s *reportingService) entries(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error) {
	entries, err := s.src.Ledger.ListEntriesInPeriod(ctx, period)
	if err != nil {
		return nil, s.fetchFailed(ctx, "ledger entries", err)
	}
	return entries, nil
}

func (s *reportingService) fetchFailed(ctx context.Context, source string, err error) error {
	s.LogError(ctx, err, "Report source fetch failed", slog.String("source", source))
	return apperrors.NewFetchError(source, err)
}

// cached reads key into dest. Cache errors are logged and treated as a miss.
func (s *reportingService) cached(ctx context.Context, key string, dest any) bool {
	if s.reportCache == nil {
		return false
	}
	hit, err := s.reportCache.Get(ctx, key, dest)
	if err != nil {
		s.LogError(ctx, err, "Report cache read failed", slog.String("key", key))
		return false
	}
	return hit
}

func (s *reportingService) store(ctx context.Context, key string, value any) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.Set(ctx, key, value); err != nil {
		s.LogError(ctx, err, "Report cache write failed", slog.String("key", key))
	}
}

func cacheKey(report string, period domain.Period) string {
	bound := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(dto.DateFormat)
	}
	return report + ":" + bound(period.From) + ":" + bound(period.To)
}
