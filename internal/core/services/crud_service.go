package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// crudService is the shared create/read/update/delete implementation behind every
// table-backed entity.
type crudService[T any, P domain.Record[T]] struct {
	BaseService
	repo     portsrepo.CRUDRepository[T]
	validate *validator.Validate
	kind     string
}

// NewCRUDService creates the generic service for one entity kind. kind is used in logs
// and error messages.
func NewCRUDService[T any, P domain.Record[T]](kind string, repo portsrepo.CRUDRepository[T], reportCache cache.ReportCache) portssvc.CRUDService[T] {
	return newCRUDService[T, P](kind, repo, reportCache)
}

func newCRUDService[T any, P domain.Record[T]](kind string, repo portsrepo.CRUDRepository[T], reportCache cache.ReportCache) *crudService[T, P] {
	return &crudService[T, P]{
		BaseService: newBaseService(reportCache),
		repo:        repo,
		validate:    validator.New(),
		kind:        kind,
	}
}

// prepare recomputes derived fields and validates the entity.
func (s *crudService[T, P]) prepare(entity P) error {
	if d, ok := any(entity).(domain.Deriver); ok {
		d.Derive()
	}
	return validateEntity(s.validate, entity)
}

func (s *crudService[T, P]) Create(ctx context.Context, entity *T, userID string) (*T, error) {
	if entity == nil {
		return nil, apperrors.NewValidationError(s.kind + " body is required")
	}
	p := P(entity)
	if err := s.prepare(p); err != nil {
		return nil, err
	}

	p.SetEntityID(uuid.NewString())
	p.Audit().Stamp(userID, s.Now())

	if err := s.repo.Insert(ctx, entity); err != nil {
		s.LogError(ctx, err, "Failed to create "+s.kind, slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Created "+s.kind, slog.String("id", p.EntityID()), slog.String("user_id", userID))
	return entity, nil
}

func (s *crudService[T, P]) Get(ctx context.Context, id string) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *crudService[T, P]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	items, err := s.repo.List(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list "+s.kind)
		return nil, fmt.Errorf("failed to list %s: %w", s.kind, err)
	}
	return items, nil
}

func (s *crudService[T, P]) Update(ctx context.Context, id string, entity *T, userID string) (*T, error) {
	if entity == nil {
		return nil, apperrors.NewValidationError(s.kind + " body is required")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := P(entity)
	p.SetEntityID(id)
	created := P(existing).Audit()
	audit := p.Audit()
	audit.CreatedAt = created.CreatedAt
	audit.CreatedBy = created.CreatedBy
	audit.Touch(userID, s.Now())

	if err := s.prepare(p); err != nil {
		return nil, err
	}
	return s.save(ctx, entity, created.LastUpdatedAt, userID)
}

// save persists an already prepared entity read at version prev.
func (s *crudService[T, P]) save(ctx context.Context, entity *T, prev time.Time, userID string) (*T, error) {
	if err := s.repo.Update(ctx, entity, prev); err != nil {
		s.LogError(ctx, err, "Failed to update "+s.kind,
			slog.String("id", P(entity).EntityID()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update %s: %w", s.kind, err)
	}
	s.InvalidateReports(ctx)
	return entity, nil
}

func (s *crudService[T, P]) Delete(ctx context.Context, id string, userID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateReports(ctx)
	s.LogInfo(ctx, "Deleted "+s.kind, slog.String("id", id), slog.String("user_id", userID))
	return nil
}

// clientService adds payment projection tracking to the generic client service.
type clientService struct {
	*crudService[domain.Client, *domain.Client]
}

// NewClientService creates the client service.
func NewClientService(repo portsrepo.CRUDRepository[domain.Client], reportCache cache.ReportCache) portssvc.ClientSvcFacade {
	return &clientService{crudService: newCRUDService[domain.Client, *domain.Client]("client", repo, reportCache)}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) MarkProjectionPaid(ctx context.Context, clientID string, index int, userID string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(client.PaymentProjections) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("client %s has no payment projection %d", clientID, index))
	}
	projection := &client.PaymentProjections[index]
	if projection.Paid {
		return nil, fmt.Errorf("%w: payment projection %d of client %s is already paid", apperrors.ErrInvalidTransition, index, clientID)
	}

	prev := client.LastUpdatedAt
	projection.Paid = true
	client.AmountPaid = client.AmountPaid.Add(projection.Amount)
	client.Derive()
	client.Touch(userID, s.Now())

	updated, err := s.save(ctx, client, prev, userID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment projection marked paid",
		slog.String("client_id", clientID), slog.Int("index", index), slog.String("user_id", userID))
	return updated, nil
}
