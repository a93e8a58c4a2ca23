package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CRUDService provides validated create/read/update/delete for one entity kind.
type CRUDService[T any] interface {
	// Create validates entity, assigns an id and audit fields, recomputes derived fields and persists it.
	Create(ctx context.Context, entity *T, userID string) (*T, error)

	Get(ctx context.Context, id string) (*T, error)

	List(ctx context.Context, opts domain.ListOptions) ([]T, error)

	// Update replaces the stored entity with id. Creation audit fields are preserved.
	Update(ctx context.Context, id string, entity *T, userID string) (*T, error)

	Delete(ctx context.Context, id string, userID string) error
}

// ClientSvcFacade adds payment tracking to the client CRUD operations.
type ClientSvcFacade interface {
	CRUDService[domain.Client]

	// MarkProjectionPaid flags the payment projection at index as paid, adds its amount to
	// AmountPaid and recomputes Debt.
	MarkProjectionPaid(ctx context.Context, clientID string, index int, userID string) (*domain.Client, error)
}
