package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// CommissionRate is the fixed share of a qualifying income paid to the salesperson.
	CommissionRate = decimal.RequireFromString("0.04")
	// CompanyShareRate is the part of net profit retained by the company; investors get the rest.
	CompanyShareRate = decimal.RequireFromString("0.70")
)

// ConvertToReportingCurrency expresses amount in the reporting currency.
// rate is the number of secondary-currency units one reporting-currency unit buys.
func ConvertToReportingCurrency(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	switch currency {
	case domain.ReportingCurrency:
		return amount, nil
	case domain.NIO:
		if !rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive to convert %s, got %s", apperrors.ErrValidation, currency, rate)
		}
		return amount.Div(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
	}
}

// SumByType folds the amounts of every entry whose type matches t.
func SumByType(entries []domain.LedgerEntry, t domain.EntryType) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type == t {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumByMonth groups entries by the (year, month) of their date and returns the
// per-month income and expense totals in ascending order.
func SumByMonth(entries []domain.LedgerEntry) []domain.MonthlyTotal {
	type key struct{ year, month int }
	groups := make(map[key]*domain.MonthlyTotal)

	for _, e := range entries {
		k := key{e.Date.Year(), int(e.Date.Month())}
		g, ok := groups[k]
		if !ok {
			g = &domain.MonthlyTotal{Year: k.year, Month: k.month, Income: decimal.Zero, Expense: decimal.Zero}
			groups[k] = g
		}
		switch e.Type {
		case domain.Income:
			g.Income = g.Income.Add(e.Amount)
		case domain.Expense:
			g.Expense = g.Expense.Add(e.Amount)
		}
	}

	result := make([]domain.MonthlyTotal, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result
}

// SumByCategory totals entries of type t per category, sorted by category name.
func SumByCategory(entries []domain.LedgerEntry, t domain.EntryType) []domain.CategoryTotal {
	groups := make(map[string]*domain.CategoryTotal)
	for _, e := range entries {
		if e.Type != t {
			continue
		}
		name := e.Category()
		g, ok := groups[name]
		if !ok {
			g = &domain.CategoryTotal{Category: name, Total: decimal.Zero}
			groups[name] = g
		}
		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}

	result := make([]domain.CategoryTotal, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result
}

// SumAmounts folds the decimal extracted from each item.
func SumAmounts[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(amount(it))
	}
	return total
}

// ComputeCommission returns the commission owed on a qualifying income amount.
func ComputeCommission(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(CommissionRate)
}

// ComputeNetProfit is income minus expenses, current liabilities and commissions.
func ComputeNetProfit(income, expense, liabilities, commissions decimal.Decimal) decimal.Decimal {
	return income.Sub(expense).Sub(liabilities).Sub(commissions)
}

// SplitNetProfit divides net profit between the company and investors.
// The investor share is the remainder so both shares always add up to net.
func SplitNetProfit(net decimal.Decimal) domain.ProfitSplit {
	company := RoundMoney(net.Mul(CompanyShareRate))
	return domain.ProfitSplit{
		CompanyShare:  company,
		InvestorShare: net.Sub(company),
	}
}

// ComputePayrollNet is base + bonuses - deductions. A nil bonus or deduction counts as zero.
// The result may be negative.
func ComputePayrollNet(base decimal.Decimal, bonuses, deductions *decimal.Decimal) decimal.Decimal {
	net := base
	if bonuses != nil {
		net = net.Add(*bonuses)
	}
	if deductions != nil {
		net = net.Sub(*deductions)
	}
	return net
}

// RoundMoney applies banker's rounding to two decimals.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
