package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// An empty category becomes NULL so the category check constraint holds.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:           d.ID,
		EntryDate:         d.Date,
		EntryType:         string(d.Type),
		IncomeCategory:    nullIfEmpty(d.IncomeCategory),
		ExpenseCategory:   nullIfEmpty(d.ExpenseCategory),
		Description:       d.Description,
		Amount:            d.Amount,
		AppliesCommission: d.AppliesCommission,
		Salesperson:       d.Salesperson,
		CommissionAmount:  d.CommissionAmount,
		ClientID:          d.ClientID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:                m.EntryID,
		Date:              m.EntryDate,
		Type:              domain.EntryType(m.EntryType),
		IncomeCategory:    derefOrEmpty(m.IncomeCategory),
		ExpenseCategory:   derefOrEmpty(m.ExpenseCategory),
		Description:       m.Description,
		Amount:            m.Amount,
		AppliesCommission: m.AppliesCommission,
		Salesperson:       m.Salesperson,
		CommissionAmount:  m.CommissionAmount,
		ClientID:          m.ClientID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCommission converts a domain Commission to a model Commission
func ToModelCommission(d domain.Commission) models.Commission {
	return models.Commission{
		CommissionID:    d.CommissionID,
		LedgerEntryID:   d.LedgerEntryID,
		CommissionDate:  d.Date,
		Salesperson:     d.Salesperson,
		Amount:          d.Amount,
		Paid:            d.Paid,
		PaidAt:          d.PaidAt,
		RelatedClientID: d.RelatedClientID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommission converts a model Commission to a domain Commission
func ToDomainCommission(m models.Commission) domain.Commission {
	return domain.Commission{
		CommissionID:    m.CommissionID,
		LedgerEntryID:   m.LedgerEntryID,
		Date:            m.CommissionDate,
		Salesperson:     m.Salesperson,
		Amount:          m.Amount,
		Paid:            m.Paid,
		PaidAt:          m.PaidAt,
		RelatedClientID: m.RelatedClientID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
