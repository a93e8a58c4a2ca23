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
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/SscSPs/backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const ledgerEntryColumns = `entry_id, entry_date, entry_type, income_category, expense_category, description,
	amount, applies_commission, salesperson, commission_amount, client_id,
	created_at, created_by, last_updated_at, last_updated_by`

const commissionColumns = `commission_id, ledger_entry_id, commission_date, salesperson, amount, paid,
	paid_at, related_client_id, created_at, created_by, last_updated_at, last_updated_by`

// PgxLedgerRepository stores ledger entries and their commissions.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool DBPool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveEntry writes the entry and its commission in one transaction so the two never diverge.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry, commission *domain.Commission) error {
	m := mapping.ToModelLedgerEntry(entry)

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO ledger_entries (`+ledgerEntryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			m.EntryID, m.EntryDate, m.EntryType, m.IncomeCategory, m.ExpenseCategory, m.Description,
			m.Amount, m.AppliesCommission, m.Salesperson, m.CommissionAmount, m.ClientID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, "ledger entry "+m.EntryID)
		}

		if commission == nil {
			return nil
		}
		c := mapping.ToModelCommission(*commission)
		_, err = tx.Exec(ctx, `
			INSERT INTO commissions (`+commissionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.CommissionID, c.LedgerEntryID, c.CommissionDate, c.Salesperson, c.Amount, c.Paid,
			c.PaidAt, c.RelatedClientID, c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, "commission "+c.CommissionID)
		}
		return nil
	})
}

// DeleteEntry removes the commission first, then the entry, in one transaction.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM commissions WHERE ledger_entry_id = $1`, entryID); err != nil {
			return fmt.Errorf("failed to delete commission of entry %s: %w", entryID, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1`, entryID)
		if err != nil {
			return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("ledger entry " + entryID + " not found")
		}
		return nil
	})
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE entry_id = $1`, entryID)
	m, err := scanLedgerEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("ledger entry " + entryID + " not found")
		}
		return nil, fmt.Errorf("failed to get ledger entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntries pages through entries newest first using a keyset token.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error) {
	where, args := ledgerWhere(filter.Period, filter.Type)

	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.ID)
		n := len(args)
		where = append(where, fmt.Sprintf("(entry_date, created_at, entry_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY entry_date DESC, created_at DESC, entry_id DESC"
	if filter.Limit > 0 {
		// One extra row tells us whether another page exists.
		args = append(args, filter.Limit+1)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt, last.ID)
		next = &token
	}
	return entries, next, nil
}

// ListEntriesInPeriod retrieves every entry in the period, oldest first.
func (r *PgxLedgerRepository) ListEntriesInPeriod(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error) {
	where, args := ledgerWhere(period, nil)
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY entry_date ASC, created_at ASC"
	return r.queryEntries(ctx, query, args...)
}

func ledgerWhere(period domain.Period, entryType *domain.EntryType) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	if period.From != nil {
		args = append(args, *period.From)
		where = append(where, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if period.To != nil {
		args = append(args, *period.To)
		where = append(where, fmt.Sprintf("entry_date <= $%d", len(args)))
	}
	if entryType != nil {
		args = append(args, string(*entryType))
		where = append(where, fmt.Sprintf("entry_type = $%d", len(args)))
	}
	return where, args
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}
	return entries, nil
}

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.EntryDate, &m.EntryType, &m.IncomeCategory, &m.ExpenseCategory, &m.Description,
		&m.Amount, &m.AppliesCommission, &m.Salesperson, &m.CommissionAmount, &m.ClientID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindCommissionByID retrieves a commission by its ID.
func (r *PgxLedgerRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+commissionColumns+` FROM commissions WHERE commission_id = $1`, commissionID)
	m, err := scanCommission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("commission " + commissionID + " not found")
		}
		return nil, fmt.Errorf("failed to get commission %s: %w", commissionID, err)
	}
	c := mapping.ToDomainCommission(m)
	return &c, nil
}

// ListCommissions retrieves commissions, newest first.
func (r *PgxLedgerRepository) ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error) {
	var (
		where []string
		args  []any
	)
	if paid != nil {
		args = append(args, *paid)
		where = append(where, fmt.Sprintf("paid = $%d", len(args)))
	}
	if period.From != nil {
		args = append(args, *period.From)
		where = append(where, fmt.Sprintf("commission_date >= $%d", len(args)))
	}
	if period.To != nil {
		args = append(args, *period.To)
		where = append(where, fmt.Sprintf("commission_date <= $%d", len(args)))
	}

	query := `SELECT ` + commissionColumns + ` FROM commissions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY commission_date DESC, commission_id ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	commissions := []domain.Commission{}
	for rows.Next() {
		m, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, mapping.ToDomainCommission(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commissions: %w", err)
	}
	return commissions, nil
}

// MarkCommissionPaid flips paid from false to true.
func (r *PgxLedgerRepository) MarkCommissionPaid(ctx context.Context, commissionID string, paidAt time.Time, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE commissions
		SET paid = TRUE, paid_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE commission_id = $1 AND paid = FALSE`,
		commissionID, paidAt, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark commission %s paid: %w", commissionID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Nothing updated: either unknown or already paid.
	if _, err := r.FindCommissionByID(ctx, commissionID); err != nil {
		return err
	}
	return fmt.Errorf("%w: commission %s is already paid", apperrors.ErrInvalidTransition, commissionID)
}

func scanCommission(row pgx.Row) (models.Commission, error) {
	var m models.Commission
	err := row.Scan(
		&m.CommissionID, &m.LedgerEntryID, &m.CommissionDate, &m.Salesperson, &m.Amount, &m.Paid,
		&m.PaidAt, &m.RelatedClientID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
