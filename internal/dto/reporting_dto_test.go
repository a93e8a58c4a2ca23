package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestToNetProfitResponse_RoundsOnceAndKeepsSharesConsistent(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report := domain.NetProfitReport{
		Period:        domain.Period{From: &from},
		TotalIncome:   d("1000.125"),
		TotalExpenses: d("0.005"),
		NetProfit:     d("1000.12"),
		Split:         domain.ProfitSplit{CompanyShare: d("700.08"), InvestorShare: d("300.04")},
	}

	resp := ToNetProfitResponse(report)

	assert.Equal(t, "1000.12", resp.TotalIncome.StringFixed(2))
	assert.Equal(t, "0.00", resp.TotalExpenses.StringFixed(2))
	assert.True(t, resp.NetProfit.Equal(resp.Split.CompanyShare.Add(resp.Split.InvestorShare)))
	require.NotNil(t, resp.Period.From)
	assert.Equal(t, "2024-01-01", *resp.Period.From)
	assert.Nil(t, resp.Period.To)
	assert.Equal(t, domain.USD, resp.Currency)
}

func TestToMonthlyResponse(t *testing.T) {
	resp := ToMonthlyResponse([]domain.MonthlyTotal{
		{Year: 2024, Month: 1, Income: d("1500"), Expense: d("300")},
		{Year: 2024, Month: 2, Income: d("0"), Expense: d("10.555")},
	})

	require.Len(t, resp, 2)
	assert.Equal(t, "2024-01", resp[0].YearMonth)
	assert.Equal(t, "1200", resp[0].Net.String())
	assert.Equal(t, "10.56", resp[1].Expense.StringFixed(2))
}

func TestToCategoryBreakdownResponse(t *testing.T) {
	resp := ToCategoryBreakdownResponse(domain.Income, []domain.CategoryTotal{
		{Category: "Consultoría", Total: d("500"), Count: 1},
		{Category: "Venta de Software", Total: d("1000"), Count: 2},
	})
	assert.Equal(t, "1500", resp.Total.String())
	assert.Len(t, resp.Categories, 2)
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateParam("2024-03-31", true)
	require.NoError(t, err)
	assert.Equal(t, 31, got.Day())
	assert.Equal(t, 23, got.Hour())

	_, err = ParseDateParam("31/03/2024", false)
	assert.Error(t, err)
}
