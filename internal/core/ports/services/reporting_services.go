package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports. Every report
// reads raw rows and aggregates them; a failed read is returned as apperrors.ErrFetchFailed.
type ReportingService interface {
	// Summary backs the dashboard.
	Summary(ctx context.Context, period domain.Period) (*domain.FinancialSummary, error)

	// NetProfit combines income, expenses, current liabilities and commissions.
	NetProfit(ctx context.Context, period domain.Period) (*domain.NetProfitReport, error)

	// MonthlyTrend groups income and expense by calendar month, ascending.
	MonthlyTrend(ctx context.Context, period domain.Period) ([]domain.MonthlyTotal, error)

	// CategoryBreakdown totals one entry type per category.
	CategoryBreakdown(ctx context.Context, period domain.Period, t domain.EntryType) ([]domain.CategoryTotal, error)

	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)

	// AccountSummary normalises every account balance to the reporting currency.
	AccountSummary(ctx context.Context) (*domain.AccountSummary, error)

	CommissionReport(ctx context.Context, period domain.Period) (*domain.CommissionReport, error)

	PayrollSummary(ctx context.Context, period domain.Period) (*domain.PayrollSummary, error)

	// ClientReconciliation lists clients whose stored debt differs from cost - amountPaid.
	ClientReconciliation(ctx context.Context) ([]domain.ClientDebtDrift, error)
}
