package dto

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Report figures are rounded once here with banker's rounding to two decimals.
var round = accounting.RoundMoney

// ReportPeriod echoes the requested date range.
type ReportPeriod struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

func toReportPeriod(p domain.Period) ReportPeriod {
	var out ReportPeriod
	if p.From != nil {
		s := p.From.Format(DateFormat)
		out.From = &s
	}
	if p.To != nil {
		s := p.To.Format(DateFormat)
		out.To = &s
	}
	return out
}

// ProfitSplitResponse represents the company/investor distribution of net profit.
type ProfitSplitResponse struct {
	CompanyShare  decimal.Decimal `json:"companyShare"`
	InvestorShare decimal.Decimal `json:"investorShare"`
}

// NetProfitResponse represents the net profit report response
type NetProfitResponse struct {
	Period             ReportPeriod        `json:"period"`
	Currency           domain.Currency     `json:"currency"`
	TotalIncome        decimal.Decimal     `json:"totalIncome"`
	TotalExpenses      decimal.Decimal     `json:"totalExpenses"`
	CurrentLiabilities decimal.Decimal     `json:"currentLiabilities"`
	TotalCommissions   decimal.Decimal     `json:"totalCommissions"`
	NetProfit          decimal.Decimal     `json:"netProfit"`
	Split              ProfitSplitResponse `json:"split"`
}

// ToNetProfitResponse converts a domain net profit report to a DTO response.
// The investor share is recomputed from the rounded figures so the two shares still add up.
func ToNetProfitResponse(r domain.NetProfitReport) NetProfitResponse {
	net := round(r.NetProfit)
	company := round(r.Split.CompanyShare)
	return NetProfitResponse{
		Period:             toReportPeriod(r.Period),
		Currency:           domain.ReportingCurrency,
		TotalIncome:        round(r.TotalIncome),
		TotalExpenses:      round(r.TotalExpenses),
		CurrentLiabilities: round(r.CurrentLiabilities),
		TotalCommissions:   round(r.TotalCommissions),
		NetProfit:          net,
		Split: ProfitSplitResponse{
			CompanyShare:  company,
			InvestorShare: net.Sub(company),
		},
	}
}

// SummaryResponse is the dashboard payload.
type SummaryResponse struct {
	NetProfitResponse
	AccountsTotal   decimal.Decimal `json:"accountsTotal"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PendingPayroll  decimal.Decimal `json:"pendingPayroll"`
	OutstandingDebt decimal.Decimal `json:"outstandingDebt"`
	EntryCount      int             `json:"entryCount"`
}

// ToSummaryResponse converts a domain financial summary to a DTO response.
func ToSummaryResponse(s domain.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		NetProfitResponse: ToNetProfitResponse(s.NetProfitReport),
		AccountsTotal:     round(s.AccountsTotal),
		ExchangeRate:      s.ExchangeRate,
		PendingPayroll:    round(s.PendingPayroll),
		OutstandingDebt:   round(s.OutstandingDebt),
		EntryCount:        s.EntryCount,
	}
}

// MonthlyTotalResponse is one row of the monthly trend.
type MonthlyTotalResponse struct {
	YearMonth string          `json:"yearMonth"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Net       decimal.Decimal `json:"net"`
}

// ToMonthlyResponse converts the monthly totals, preserving their ascending order.
func ToMonthlyResponse(months []domain.MonthlyTotal) []MonthlyTotalResponse {
	out := make([]MonthlyTotalResponse, len(months))
	for i, m := range months {
		out[i] = MonthlyTotalResponse{
			YearMonth: m.YearMonth(),
			Income:    round(m.Income),
			Expense:   round(m.Expense),
			Net:       round(m.Income.Sub(m.Expense)),
		}
	}
	return out
}

// CategoryTotalResponse is one category of the breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// CategoryBreakdownResponse represents the per-category report.
type CategoryBreakdownResponse struct {
	Type       domain.EntryType        `json:"type"`
	Categories []CategoryTotalResponse `json:"categories"`
	Total      decimal.Decimal         `json:"total"`
}

// ToCategoryBreakdownResponse converts category totals for one entry type.
func ToCategoryBreakdownResponse(t domain.EntryType, cats []domain.CategoryTotal) CategoryBreakdownResponse {
	resp := CategoryBreakdownResponse{Type: t, Categories: make([]CategoryTotalResponse, len(cats))}
	total := decimal.Zero
	for i, c := range cats {
		resp.Categories[i] = CategoryTotalResponse{Category: c.Category, Total: round(c.Total), Count: c.Count}
		total = total.Add(c.Total)
	}
	resp.Total = round(total)
	return resp
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Currency              domain.Currency `json:"currency"`
	Cash                  decimal.Decimal `json:"cash"`
	CurrentAssets         decimal.Decimal `json:"currentAssets"`
	NonCurrentAssets      decimal.Decimal `json:"nonCurrentAssets"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities    decimal.Decimal `json:"currentLiabilities"`
	NonCurrentLiabilities decimal.Decimal `json:"nonCurrentLiabilities"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	Equity                decimal.Decimal `json:"equity"`
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(r domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		Currency:              domain.ReportingCurrency,
		Cash:                  round(r.Cash),
		CurrentAssets:         round(r.CurrentAssets),
		NonCurrentAssets:      round(r.NonCurrentAssets),
		TotalAssets:           round(r.TotalAssets),
		CurrentLiabilities:    round(r.CurrentLiabilities),
		NonCurrentLiabilities: round(r.NonCurrentLiabilities),
		TotalLiabilities:      round(r.TotalLiabilities),
		Equity:                round(r.Equity),
	}
}

// AccountBalanceResponse is one account in the account summary.
type AccountBalanceResponse struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Currency         domain.Currency `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	ReportingBalance decimal.Decimal `json:"reportingBalance"`
}

// AccountSummaryResponse represents the account summary report.
type AccountSummaryResponse struct {
	Accounts     []AccountBalanceResponse `json:"accounts"`
	Total        decimal.Decimal          `json:"total"`
	Currency     domain.Currency          `json:"currency"`
	ExchangeRate decimal.Decimal          `json:"exchangeRate"`
}

// ToAccountSummaryResponse converts a domain account summary to a DTO response.
func ToAccountSummaryResponse(s domain.AccountSummary) AccountSummaryResponse {
	resp := AccountSummaryResponse{
		Accounts:     make([]AccountBalanceResponse, len(s.Accounts)),
		Total:        round(s.Total),
		Currency:     domain.ReportingCurrency,
		ExchangeRate: s.ExchangeRate,
	}
	for i, a := range s.Accounts {
		resp.Accounts[i] = AccountBalanceResponse{
			AccountID:        a.AccountID,
			Name:             a.Name,
			Currency:         a.Currency,
			Balance:          round(a.Balance),
			ReportingBalance: round(a.ReportingBalance),
		}
	}
	return resp
}

// SalespersonCommissionResponse is one salesperson in the commission report.
type SalespersonCommissionResponse struct {
	Salesperson string          `json:"salesperson"`
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	Pending     decimal.Decimal `json:"pending"`
	Count       int             `json:"count"`
}

// CommissionReportResponse represents the commission report.
type CommissionReportResponse struct {
	BySalesperson []SalespersonCommissionResponse `json:"bySalesperson"`
	Total         decimal.Decimal                 `json:"total"`
	Paid          decimal.Decimal                 `json:"paid"`
	Pending       decimal.Decimal                 `json:"pending"`
}

// ToCommissionReportResponse converts a domain commission report to a DTO response.
func ToCommissionReportResponse(r domain.CommissionReport) CommissionReportResponse {
	resp := CommissionReportResponse{
		BySalesperson: make([]SalespersonCommissionResponse, len(r.BySalesperson)),
		Total:         round(r.Total),
		Paid:          round(r.Paid),
		Pending:       round(r.Pending),
	}
	for i, s := range r.BySalesperson {
		resp.BySalesperson[i] = SalespersonCommissionResponse{
			Salesperson: s.Salesperson,
			Total:       round(s.Total),
			Paid:        round(s.Paid),
			Pending:     round(s.Pending),
			Count:       s.Count,
		}
	}
	return resp
}

// PayrollSummaryResponse represents the payroll report.
type PayrollSummaryResponse struct {
	Records         int                                      `json:"records"`
	TotalBase       decimal.Decimal                          `json:"totalBase"`
	TotalBonuses    decimal.Decimal                          `json:"totalBonuses"`
	TotalDeductions decimal.Decimal                          `json:"totalDeductions"`
	TotalNet        decimal.Decimal                          `json:"totalNet"`
	NetByStatus     map[domain.PayrollStatus]decimal.Decimal `json:"netByStatus"`
}

// ToPayrollSummaryResponse converts a domain payroll summary to a DTO response.
func ToPayrollSummaryResponse(s domain.PayrollSummary) PayrollSummaryResponse {
	byStatus := make(map[domain.PayrollStatus]decimal.Decimal, len(s.NetByStatus))
	for k, v := range s.NetByStatus {
		byStatus[k] = round(v)
	}
	return PayrollSummaryResponse{
		Records:         s.Records,
		TotalBase:       round(s.TotalBase),
		TotalBonuses:    round(s.TotalBonuses),
		TotalDeductions: round(s.TotalDeductions),
		TotalNet:        round(s.TotalNet),
		NetByStatus:     byStatus,
	}
}

// ClientReconciliationResponse lists clients whose stored debt drifted.
type ClientReconciliationResponse struct {
	Drifted []domain.ClientDebtDrift `json:"drifted"`
	Count   int                      `json:"count"`
}

// ToClientReconciliationResponse wraps the drift rows.
func ToClientReconciliationResponse(rows []domain.ClientDebtDrift) ClientReconciliationResponse {
	if rows == nil {
		rows = []domain.ClientDebtDrift{}
	}
	return ClientReconciliationResponse{Drifted: rows, Count: len(rows)}
}
