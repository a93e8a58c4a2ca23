package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of entries.
	ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// LedgerWriterSvc defines write operations for ledger entries
type LedgerWriterSvc interface {
	// RecordEntry validates and persists an entry. Income entries with commission get a
	// 4% Commission written in the same transaction.
	RecordEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.RecordedEntry, error)

	// DeleteEntry removes an entry and its commission together.
	DeleteEntry(ctx context.Context, entryID string, userID string) error
}

// CommissionSvc defines commission operations
type CommissionSvc interface {
	ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error)

	// MarkCommissionPaid is the only mutation a commission allows after creation.
	MarkCommissionPaid(ctx context.Context, commissionID string, userID string) (*domain.Commission, error)

	// Salespeople returns the roster commissions may be attributed to.
	Salespeople() domain.SalespersonRoster
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	CommissionSvc
}
