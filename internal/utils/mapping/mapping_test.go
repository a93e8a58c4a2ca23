package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntryMapping_CategoryColumns(t *testing.T) {
	income := domain.LedgerEntry{
		ID:             "e1",
		Date:           time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Type:           domain.Income,
		IncomeCategory: "Venta de Software",
		Amount:         decimal.NewFromInt(1000),
	}

	m := ToModelLedgerEntry(income)
	require.NotNil(t, m.IncomeCategory)
	assert.Equal(t, "Venta de Software", *m.IncomeCategory)
	assert.Nil(t, m.ExpenseCategory)
	assert.Equal(t, "income", m.EntryType)

	back := ToDomainLedgerEntry(m)
	assert.Equal(t, income.IncomeCategory, back.IncomeCategory)
	assert.Empty(t, back.ExpenseCategory)
	assert.Equal(t, domain.Income, back.Type)
}

func TestPayrollMapping_Status(t *testing.T) {
	m := ToModelPayrollRecord(domain.PayrollRecord{PayrollID: "p1", Status: domain.PayrollPaid})
	assert.Equal(t, "Pagado", m.Status)
	assert.Equal(t, domain.PayrollPaid, ToDomainPayrollRecord(m).Status)
}
