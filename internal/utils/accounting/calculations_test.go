package accounting

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(date string, t domain.EntryType, category, amount string) domain.LedgerEntry {
	d, _ := time.Parse("2006-01-02", date)
	e := domain.LedgerEntry{Date: d, Type: t, Amount: dec(amount)}
	if t == domain.Income {
		e.IncomeCategory = category
	} else {
		e.ExpenseCategory = category
	}
	return e
}

func TestConvertToReportingCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		rate     string
		want     string
		wantErr  bool
	}{
		{"NIO to USD", "365", domain.NIO, "36.5", "10", false},
		{"USD identity", "10", domain.USD, "36.5", "10", false},
		{"USD ignores zero rate", "10", domain.USD, "0", "10", false},
		{"NIO with zero rate", "365", domain.NIO, "0", "", true},
		{"NIO with negative rate", "365", domain.NIO, "-1", "", true},
		{"unknown currency", "1", domain.Currency("EUR"), "1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertToReportingCurrency(dec(tt.amount), tt.currency, dec(tt.rate))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSumByType(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-01-05", domain.Income, "Venta de Software", "1000"),
		entry("2024-01-09", domain.Income, "Consultoría", "500"),
		entry("2024-02-01", domain.Expense, "Hosting", "300"),
	}

	income := SumByType(entries, domain.Income)
	expense := SumByType(entries, domain.Expense)

	assert.True(t, dec("1500").Equal(income))
	assert.True(t, dec("300").Equal(expense))

	all := SumAmounts(entries, func(e domain.LedgerEntry) decimal.Decimal { return e.Amount })
	assert.True(t, all.Equal(income.Add(expense)))

	assert.True(t, decimal.Zero.Equal(SumByType(nil, domain.Income)))
}

func TestSumByType_ZeroAmountCountsAsZero(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Type: domain.Income},
		entry("2024-01-05", domain.Income, "Venta", "12.50"),
	}
	assert.True(t, dec("12.50").Equal(SumByType(entries, domain.Income)))
}

func TestSumByMonth(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-03-02", domain.Income, "Venta", "100"),
		entry("2023-12-31", domain.Expense, "Hosting", "40"),
		entry("2024-01-15", domain.Income, "Venta", "250"),
		entry("2024-01-20", domain.Expense, "Planilla", "80"),
		entry("2024-03-28", domain.Income, "Venta", "50"),
	}

	months := SumByMonth(entries)
	require.Len(t, months, 3)

	assert.Equal(t, "2023-12", months[0].YearMonth())
	assert.True(t, decimal.Zero.Equal(months[0].Income))
	assert.True(t, dec("40").Equal(months[0].Expense))

	assert.Equal(t, "2024-01", months[1].YearMonth())
	assert.True(t, dec("250").Equal(months[1].Income))
	assert.True(t, dec("80").Equal(months[1].Expense))

	assert.Equal(t, "2024-03", months[2].YearMonth())
	assert.True(t, dec("150").Equal(months[2].Income))

	assert.Empty(t, SumByMonth(nil))
}

func TestSumByCategory(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-01-05", domain.Income, "Venta de Software", "1000"),
		entry("2024-01-07", domain.Income, "Consultoría", "500"),
		entry("2024-01-09", domain.Income, "Venta de Software", "200"),
		entry("2024-01-09", domain.Expense, "Hosting", "300"),
	}

	cats := SumByCategory(entries, domain.Income)
	require.Len(t, cats, 2)
	assert.Equal(t, "Consultoría", cats[0].Category)
	assert.Equal(t, 1, cats[0].Count)
	assert.Equal(t, "Venta de Software", cats[1].Category)
	assert.Equal(t, 2, cats[1].Count)
	assert.True(t, dec("1200").Equal(cats[1].Total))
}

func TestComputeCommission(t *testing.T) {
	assert.True(t, dec("4").Equal(ComputeCommission(dec("100"))))
	assert.True(t, decimal.Zero.Equal(ComputeCommission(decimal.Zero)))
	assert.True(t, dec("20").Equal(ComputeCommission(dec("500"))))

	for _, amount := range []string{"0.01", "1", "99.99", "123456.78"} {
		assert.False(t, ComputeCommission(dec(amount)).IsNegative(), amount)
	}
}

func TestComputeNetProfit(t *testing.T) {
	net := ComputeNetProfit(dec("1500"), dec("300"), dec("150"), dec("20"))
	assert.True(t, dec("1030").Equal(net))

	loss := ComputeNetProfit(dec("100"), dec("300"), decimal.Zero, decimal.Zero)
	assert.True(t, dec("-200").Equal(loss))
}

func TestSplitNetProfit(t *testing.T) {
	split := SplitNetProfit(dec("1000"))
	assert.True(t, dec("700").Equal(split.CompanyShare))
	assert.True(t, dec("300").Equal(split.InvestorShare))

	for _, net := range []string{"0", "0.01", "333.33", "1000.05", "-250.75", "98765.4321"} {
		s := SplitNetProfit(dec(net))
		assert.True(t, dec(net).Equal(s.CompanyShare.Add(s.InvestorShare)), net)
	}
}

func TestComputePayrollNet(t *testing.T) {
	bonuses := dec("200")
	deductions := dec("50")

	first := ComputePayrollNet(dec("1000"), &bonuses, &deductions)
	second := ComputePayrollNet(dec("1000"), &bonuses, &deductions)

	assert.True(t, dec("1150").Equal(first))
	assert.True(t, first.Equal(second))

	assert.True(t, dec("1000").Equal(ComputePayrollNet(dec("1000"), nil, nil)))

	big := dec("1500")
	assert.True(t, dec("-500").Equal(ComputePayrollNet(dec("1000"), nil, &big)))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "2.12", RoundMoney(dec("2.125")).StringFixed(2))
	assert.Equal(t, "2.14", RoundMoney(dec("2.135")).StringFixed(2))
	assert.Equal(t, "10.00", RoundMoney(dec("10")).StringFixed(2))
}

func TestThreeEntryScenario(t *testing.T) {
	withCommission := entry("2024-05-02", domain.Income, "Consultoría", "500")
	withCommission.AppliesCommission = true

	entries := []domain.LedgerEntry{
		entry("2024-05-01", domain.Income, "Venta de Software", "1000"),
		withCommission,
		entry("2024-05-03", domain.Expense, "Hosting", "300"),
	}

	assert.True(t, dec("1500").Equal(SumByType(entries, domain.Income)))
	assert.True(t, dec("300").Equal(SumByType(entries, domain.Expense)))

	for _, e := range entries {
		if e.AppliesCommission {
			assert.True(t, dec("20").Equal(ComputeCommission(e.Amount)))
		}
	}
}
