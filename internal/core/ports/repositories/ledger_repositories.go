package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// FindEntryByID retrieves a ledger entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of entries ordered by date descending and returns
	// the token of the next page, or nil when there is none.
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error)

	// ListEntriesInPeriod retrieves every entry in the period, unpaged.
	ListEntriesInPeriod(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger entries
type LedgerWriter interface {
	// SaveEntry persists entry and, when non-nil, its commission in one transaction.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry, commission *domain.Commission) error

	// DeleteEntry removes an entry together with its commission in one transaction.
	DeleteEntry(ctx context.Context, entryID string) error
}

// CommissionReader defines read operations for commissions
type CommissionReader interface {
	FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error)

	// ListCommissions filters by paid flag when paid is non-nil and by date when period is set.
	ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error)
}

// CommissionWriter defines write operations for commissions
type CommissionWriter interface {
	// MarkCommissionPaid flips the paid flag. Returns apperrors.ErrNotFound when the
	// commission does not exist and apperrors.ErrInvalidTransition when it is already paid.
	MarkCommissionPaid(ctx context.Context, commissionID string, paidAt time.Time, userID string) error
}

// LedgerRepositoryFacade combines all ledger and commission repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	CommissionReader
	CommissionWriter
}
