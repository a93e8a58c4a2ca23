package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CRUDReader defines read operations shared by every plain entity table.
type CRUDReader[T any] interface {
	// FindByID returns apperrors.ErrNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*T, error)

	// List returns rows ordered by the table's natural order, filtered by the
	// table's date column when opts.Period is set.
	List(ctx context.Context, opts domain.ListOptions) ([]T, error)
}

// CRUDWriter defines write operations shared by every plain entity table.
type CRUDWriter[T any] interface {
	Insert(ctx context.Context, entity *T) error

	// Update writes entity only if the stored row still carries expectedUpdatedAt.
	// It returns apperrors.ErrNotFound when no row matches the id and
	// apperrors.ErrConflict when the row was changed in between.
	Update(ctx context.Context, entity *T, expectedUpdatedAt time.Time) error

	// Delete returns apperrors.ErrNotFound when no row matches.
	Delete(ctx context.Context, id string) error
}

// CRUDRepository is the one parameterised repository instantiated per entity schema.
type CRUDRepository[T any] interface {
	CRUDReader[T]
	CRUDWriter[T]
}
