package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	"github.com/timecove/timesheet-backend/internal/models"
	"github.com/timecove/timesheet-backend/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, submission_id, employee_id, invoice_number, regular_amount, overtime_amount, total_amount, currency_code, issued_at, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.SubmissionID,
		&m.EmployeeID,
		&m.InvoiceNumber,
		&m.RegularAmount,
		&m.OvertimeAmount,
		&m.TotalAmount,
		&m.CurrencyCode,
		&m.IssuedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1;
	`
	modelInvoice, err := scanInvoice(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	domainInvoice := mapping.ToDomainInvoice(modelInvoice)
	return &domainInvoice, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE employee_id = $1
        ORDER BY issued_at DESC
        LIMIT $2 OFFSET $3;
    `
	return r.queryInvoices(ctx, query, employeeID, limit, offset)
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        ORDER BY issued_at DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryInvoices(ctx, query, limit, offset)
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		modelInvoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, modelInvoice)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

func (r *PgxInvoiceRepository) CountInvoicesForMonth(ctx context.Context, month string) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE invoice_number LIKE 'INV-' || $1 || '-%';`
	var count int
	if err := r.db.QueryRow(ctx, query, month).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices for month %s: %w", month, err)
	}
	return count, nil
}

// SaveInvoiceInTx inserts the invoice using the caller's transaction so it
// commits or rolls back together with the paying status write.
func (r *PgxInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	modelInvoice := mapping.ToModelInvoice(invoice)
	query := `
        INSERT INTO invoices (invoice_id, submission_id, employee_id, invoice_number, regular_amount, overtime_amount, total_amount, currency_code, issued_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := tx.Exec(ctx, query,
		modelInvoice.InvoiceID,
		modelInvoice.SubmissionID,
		modelInvoice.EmployeeID,
		modelInvoice.InvoiceNumber,
		modelInvoice.RegularAmount,
		modelInvoice.OvertimeAmount,
		modelInvoice.TotalAmount,
		modelInvoice.CurrencyCode,
		modelInvoice.IssuedAt,
		modelInvoice.CreatedAt,
		modelInvoice.CreatedBy,
		modelInvoice.LastUpdatedAt,
		modelInvoice.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation (one invoice per submission)
			return fmt.Errorf("%w: an invoice already exists for submission %s", apperrors.ErrDuplicate, invoice.SubmissionID)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}
