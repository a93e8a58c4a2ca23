package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var auditColumns = []string{"created_at", "created_by", "last_updated_at", "last_updated_by"}

// entitySchema describes how one entity maps onto its table. columns, values and
// scanDest must list the same fields in the same order, excluding id and audit columns.
type entitySchema[T any] struct {
	table      string
	idColumn   string
	columns    []string
	values     func(e *T) []any
	scanDest   func(e *T) []any
	dateColumn string // Column filtered by ListOptions.Period; empty disables filtering
	orderBy    string
}

// tableRepository is the single CRUD implementation instantiated per entity schema.
type tableRepository[T any, P domain.Record[T]] struct {
	BaseRepository
	schema    entitySchema[T]
	selectSQL string
	insertSQL string
	updateSQL string
	deleteSQL string
	existsSQL string
}

func newTableRepository[T any, P domain.Record[T]](pool DBPool, schema entitySchema[T]) *tableRepository[T, P] {
	all := append(append([]string{schema.idColumn}, schema.columns...), auditColumns...)

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// $1 is the id; business columns follow, then last_updated_at/by, then the
	// last_updated_at the caller read.
	sets := make([]string, 0, len(schema.columns)+2)
	n := 2
	for _, c := range append(append([]string{}, schema.columns...), "last_updated_at", "last_updated_by") {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, n))
		n++
	}

	return &tableRepository[T, P]{
		BaseRepository: BaseRepository{Pool: pool},
		schema:         schema,
		selectSQL:      fmt.Sprintf("SELECT %s FROM %s", strings.Join(all, ", "), schema.table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			schema.table, strings.Join(all, ", "), strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 AND last_updated_at = $%d",
			schema.table, strings.Join(sets, ", "), schema.idColumn, n),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.table, schema.idColumn),
		existsSQL: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.table, schema.idColumn),
	}
}

var _ portsrepo.CRUDRepository[domain.Client] = (*tableRepository[domain.Client, *domain.Client])(nil)

func (r *tableRepository[T, P]) Insert(ctx context.Context, entity *T) error {
	p := P(entity)
	a := p.Audit()
	args := append([]any{p.EntityID()}, r.schema.values(entity)...)
	args = append(args, a.CreatedAt, a.CreatedBy, a.LastUpdatedAt, a.LastUpdatedBy)

	if _, err := r.Pool.Exec(ctx, r.insertSQL, args...); err != nil {
		return translateWriteError(err, fmt.Sprintf("%s %s", r.schema.table, p.EntityID()))
	}
	return nil
}

func (r *tableRepository[T, P]) Update(ctx context.Context, entity *T, expectedUpdatedAt time.Time) error {
	p := P(entity)
	a := p.Audit()
	args := append([]any{p.EntityID()}, r.schema.values(entity)...)
	args = append(args, a.LastUpdatedAt, a.LastUpdatedBy, expectedUpdatedAt)

	tag, err := r.Pool.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("%s %s", r.schema.table, p.EntityID()))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, r.existsSQL, p.EntityID()).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s %s: %w", r.schema.table, p.EntityID(), err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, p.EntityID()))
	}
	return fmt.Errorf("%w: %s %s was changed by another request", apperrors.ErrConflict, r.schema.table, p.EntityID())
}

func (r *tableRepository[T, P]) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, r.deleteSQL, id)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("%s %s", r.schema.table, id))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, id))
	}
	return nil
}

func (r *tableRepository[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	query := r.selectSQL + fmt.Sprintf(" WHERE %s = $1", r.schema.idColumn)

	entity, err := r.scan(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, id))
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", r.schema.table, id, err)
	}
	return entity, nil
}

func (r *tableRepository[T, P]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	query, args := r.listQuery(opts)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.schema.table, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		entity, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.schema.table, err)
		}
		result = append(result, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", r.schema.table, err)
	}
	return result, nil
}

func (r *tableRepository[T, P]) listQuery(opts domain.ListOptions) (string, []any) {
	var (
		where []string
		args  []any
	)
	if r.schema.dateColumn != "" {
		if opts.Period.From != nil {
			args = append(args, *opts.Period.From)
			where = append(where, fmt.Sprintf("%s >= $%d", r.schema.dateColumn, len(args)))
		}
		if opts.Period.To != nil {
			args = append(args, *opts.Period.To)
			where = append(where, fmt.Sprintf("%s <= $%d", r.schema.dateColumn, len(args)))
		}
	}

	query := r.selectSQL
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + r.schema.orderBy
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

func (r *tableRepository[T, P]) scan(row pgx.Row) (*T, error) {
	entity := new(T)
	p := P(entity)
	a := p.Audit()

	var id string
	dest := append([]any{&id}, r.schema.scanDest(entity)...)
	dest = append(dest, &a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	p.SetEntityID(id)
	return entity, nil
}
