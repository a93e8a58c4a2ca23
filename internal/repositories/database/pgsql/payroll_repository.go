package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const payrollColumns = `payroll_id, employee_id, period_start, period_end, base_salary, bonuses, deductions,
	net_salary, status, payment_date, notes, created_at, created_by, last_updated_at, last_updated_by`

// PgxPayrollRepository stores payroll records.
type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool DBPool) *PgxPayrollRepository {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

// SavePayroll inserts a new payroll record.
func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, record domain.PayrollRecord) error {
	m := mapping.ToModelPayrollRecord(record)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payroll_records (`+payrollColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.PayrollID, m.EmployeeID, m.PeriodStart, m.PeriodEnd, m.BaseSalary, m.Bonuses, m.Deductions,
		m.NetSalary, m.Status, m.PaymentDate, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "payroll record "+m.PayrollID)
	}
	return nil
}

// UpdatePayroll overwrites the mutable columns of a payroll record, provided the
// stored status is still expected.
func (r *PgxPayrollRepository) UpdatePayroll(ctx context.Context, record domain.PayrollRecord, expected domain.PayrollStatus) error {
	m := mapping.ToModelPayrollRecord(record)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payroll_records
		SET period_start = $2, period_end = $3, base_salary = $4, bonuses = $5, deductions = $6,
			net_salary = $7, status = $8, payment_date = $9, notes = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE payroll_id = $1 AND status = $13`,
		m.PayrollID, m.PeriodStart, m.PeriodEnd, m.BaseSalary, m.Bonuses, m.Deductions,
		m.NetSalary, m.Status, m.PaymentDate, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
		string(expected),
	)
	if err != nil {
		return translateWriteError(err, "payroll record "+m.PayrollID)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var current string
	err = r.Pool.QueryRow(ctx, `SELECT status FROM payroll_records WHERE payroll_id = $1`, m.PayrollID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("payroll record " + m.PayrollID + " not found")
		}
		return fmt.Errorf("failed to get payroll record %s: %w", m.PayrollID, err)
	}
	return fmt.Errorf("%w: payroll record %s is now %s, expected %s",
		apperrors.ErrInvalidTransition, m.PayrollID, current, expected)
}

// FindPayrollByID retrieves a payroll record by its ID.
func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payroll_records WHERE payroll_id = $1`, payrollID)
	m, err := scanPayroll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payroll record " + payrollID + " not found")
		}
		return nil, fmt.Errorf("failed to get payroll record %s: %w", payrollID, err)
	}
	rec := mapping.ToDomainPayrollRecord(m)
	return &rec, nil
}

// ListPayroll retrieves payroll records, most recent period first.
func (r *PgxPayrollRepository) ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.PayrollRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Period.From != nil {
		args = append(args, *filter.Period.From)
		where = append(where, fmt.Sprintf("period_end >= $%d", len(args)))
	}
	if filter.Period.To != nil {
		args = append(args, *filter.Period.To)
		where = append(where, fmt.Sprintf("period_end <= $%d", len(args)))
	}

	query := `SELECT ` + payrollColumns + ` FROM payroll_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY period_end DESC, payroll_id ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := []domain.PayrollRecord{}
	for rows.Next() {
		m, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, mapping.ToDomainPayrollRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll records: %w", err)
	}
	return records, nil
}

func scanPayroll(row pgx.Row) (models.PayrollRecord, error) {
	var m models.PayrollRecord
	err := row.Scan(
		&m.PayrollID, &m.EmployeeID, &m.PeriodStart, &m.PeriodEnd, &m.BaseSalary, &m.Bonuses, &m.Deductions,
		&m.NetSalary, &m.Status, &m.PaymentDate, &m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
