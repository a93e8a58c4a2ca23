package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProfitSplit is how net profit is distributed between the company and its investors.
type ProfitSplit struct {
	CompanyShare  decimal.Decimal `json:"companyShare"`
	InvestorShare decimal.Decimal `json:"investorShare"`
}

// NetProfitReport combines the four independently aggregated figures into net profit.
type NetProfitReport struct {
	Period             Period          `json:"-"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	CurrentLiabilities decimal.Decimal `json:"currentLiabilities"`
	TotalCommissions   decimal.Decimal `json:"totalCommissions"`
	NetProfit          decimal.Decimal `json:"netProfit"`
	Split              ProfitSplit     `json:"split"`
}

// FinancialSummary backs the dashboard.
type FinancialSummary struct {
	NetProfitReport
	AccountsTotal   decimal.Decimal `json:"accountsTotal"` // Sum of all account balances in the reporting currency
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PendingPayroll  decimal.Decimal `json:"pendingPayroll"`
	OutstandingDebt decimal.Decimal `json:"outstandingDebt"`
	EntryCount      int             `json:"entryCount"`
}

// MonthlyTotal is the income/expense sum for one calendar month.
type MonthlyTotal struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// YearMonth renders the group key as YYYY-MM.
func (m MonthlyTotal) YearMonth() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// CategoryTotal is the sum of one category within an entry type.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// AccountBalance is a monetary account with its balance normalised to the reporting currency.
type AccountBalance struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Currency         Currency        `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	ReportingBalance decimal.Decimal `json:"reportingBalance"`
}

// AccountSummary lists every account and their combined reporting-currency total.
type AccountSummary struct {
	Accounts     []AccountBalance `json:"accounts"`
	Total        decimal.Decimal  `json:"total"`
	ExchangeRate decimal.Decimal  `json:"exchangeRate"`
}

// BalanceSheetReport groups assets and liabilities.
type BalanceSheetReport struct {
	Cash                  decimal.Decimal `json:"cash"` // Monetary accounts in the reporting currency
	CurrentAssets         decimal.Decimal `json:"currentAssets"`
	NonCurrentAssets      decimal.Decimal `json:"nonCurrentAssets"` // Net of depreciation
	CurrentLiabilities    decimal.Decimal `json:"currentLiabilities"`
	NonCurrentLiabilities decimal.Decimal `json:"nonCurrentLiabilities"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	Equity                decimal.Decimal `json:"equity"`
}

// SalespersonCommission aggregates commissions for one salesperson.
type SalespersonCommission struct {
	Salesperson string          `json:"salesperson"`
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	Pending     decimal.Decimal `json:"pending"`
	Count       int             `json:"count"`
}

// CommissionReport aggregates commissions per salesperson.
type CommissionReport struct {
	BySalesperson []SalespersonCommission `json:"bySalesperson"`
	Total         decimal.Decimal         `json:"total"`
	Paid          decimal.Decimal         `json:"paid"`
	Pending       decimal.Decimal         `json:"pending"`
}

// PayrollSummary aggregates payroll records.
type PayrollSummary struct {
	Records         int                               `json:"records"`
	TotalBase       decimal.Decimal                   `json:"totalBase"`
	TotalBonuses    decimal.Decimal                   `json:"totalBonuses"`
	TotalDeductions decimal.Decimal                   `json:"totalDeductions"`
	TotalNet        decimal.Decimal                   `json:"totalNet"`
	NetByStatus     map[PayrollStatus]decimal.Decimal `json:"netByStatus"`
}

// ClientDebtDrift flags a client whose stored debt differs from cost minus amount paid.
type ClientDebtDrift struct {
	ClientID     string          `json:"clientID"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	StoredDebt   decimal.Decimal `json:"storedDebt"`
	ExpectedDebt decimal.Decimal `json:"expectedDebt"`
	Drift        decimal.Decimal `json:"drift"`
}
