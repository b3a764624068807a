package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	"github.com/timecove/timesheet-backend/internal/models"
	"github.com/timecove/timesheet-backend/internal/utils/mapping"
)

type PgxSubmissionRepository struct {
	BaseRepository
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

func newPgxSubmissionRepository(pool *pgxpool.Pool, invoiceRepo portsrepo.InvoiceRepositoryFacade) portsrepo.SubmissionRepositoryWithTx {
	return &PgxSubmissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		invoiceRepo:    invoiceRepo,
	}
}

// Ensure PgxSubmissionRepository implements portsrepo.SubmissionRepositoryWithTx
var _ portsrepo.SubmissionRepositoryWithTx = (*PgxSubmissionRepository)(nil)

// submission_date is selected as text so it round-trips as a plain YYYY-MM-DD
// string with no timezone conversion.
const submissionColumns = `submission_id, employee_id, manager_id, submission_date::text, hours_submitted, overtime_hours, description, overtime_description, status, manager_comment, admin_comment, acted_by, acted_at, invoice_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSubmission(row pgx.Row) (models.Submission, error) {
	var m models.Submission
	err := row.Scan(
		&m.SubmissionID,
		&m.EmployeeID,
		&m.ManagerID,
		&m.SubmissionDate,
		&m.HoursSubmitted,
		&m.OvertimeHours,
		&m.Description,
		&m.OvertimeDesc,
		&m.Status,
		&m.ManagerComment,
		&m.AdminComment,
		&m.ActedBy,
		&m.ActedAt,
		&m.InvoiceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE submission_id = $1;
	`
	modelSub, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find submission by ID %s: %w", submissionID, err)
	}

	domainSub := mapping.ToDomainSubmission(modelSub)
	return &domainSub, nil
}

func (r *PgxSubmissionRepository) FindSubmissionByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE employee_id = $1 AND to_char(submission_date, 'YYYY-MM') = $2;
	`
	modelSub, err := scanSubmission(r.Pool.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find submission for employee %s month %s: %w", employeeID, month, err)
	}

	domainSub := mapping.ToDomainSubmission(modelSub)
	return &domainSub, nil
}

func (r *PgxSubmissionRepository) ListSubmissionsByEmployee(ctx context.Context, employeeID string, limit int, afterDate string, afterCreatedAt time.Time) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 20
	}

	if afterDate == "" {
		query := `
			SELECT ` + submissionColumns + `
			FROM submissions
			WHERE employee_id = $1
			ORDER BY submission_date DESC, created_at DESC
			LIMIT $2;
		`
		return r.querySubmissions(ctx, query, employeeID, limit)
	}

	// Keyset cursor: resume strictly after the (date, created_at) position of
	// the previous page's last row.
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE employee_id = $1 AND (submission_date, created_at) < ($2::date, $3)
		ORDER BY submission_date DESC, created_at DESC
		LIMIT $4;
	`
	return r.querySubmissions(ctx, query, employeeID, afterDate, afterCreatedAt, limit)
}

func (r *PgxSubmissionRepository) ListSubmissionsByManager(ctx context.Context, managerID string, limit int, offset int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE manager_id = $1
        ORDER BY submission_date DESC, created_at DESC
        LIMIT $2 OFFSET $3;
    `
	return r.querySubmissions(ctx, query, managerID, limit, offset)
}

func (r *PgxSubmissionRepository) ListSubmissionsByMonth(ctx context.Context, month string) ([]domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE to_char(submission_date, 'YYYY-MM') = $1
        ORDER BY employee_id;
    `
	return r.querySubmissions(ctx, query, month)
}

func (r *PgxSubmissionRepository) querySubmissions(ctx context.Context, query string, args ...any) ([]domain.Submission, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	modelSubs := []models.Submission{}
	for rows.Next() {
		modelSub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		modelSubs = append(modelSubs, modelSub)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", rows.Err())
	}

	return mapping.ToDomainSubmissionSlice(modelSubs), nil
}

func (r *PgxSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	modelSub := mapping.ToModelSubmission(submission)
	query := `
        INSERT INTO submissions (submission_id, employee_id, manager_id, submission_date, hours_submitted, overtime_hours, description, overtime_description, status, manager_comment, admin_comment, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelSub.SubmissionID,
		modelSub.EmployeeID,
		modelSub.ManagerID,
		modelSub.SubmissionDate,
		modelSub.HoursSubmitted,
		modelSub.OvertimeHours,
		modelSub.Description,
		modelSub.OvertimeDesc,
		modelSub.Status,
		modelSub.ManagerComment,
		modelSub.AdminComment,
		modelSub.CreatedAt,
		modelSub.CreatedBy,
		modelSub.LastUpdatedAt,
		modelSub.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation (one submission per employee per month)
			return fmt.Errorf("%w: a submission already exists for this month", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *PgxSubmissionRepository) UpdateSubmission(ctx context.Context, submission domain.Submission) error {
	modelSub := mapping.ToModelSubmission(submission)
	query := `
        UPDATE submissions
        SET submission_date = $1, hours_submitted = $2, overtime_hours = $3, description = $4, overtime_description = $5, status = $6, last_updated_at = $7, last_updated_by = $8
        WHERE submission_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelSub.SubmissionDate,
		modelSub.HoursSubmitted,
		modelSub.OvertimeHours,
		modelSub.Description,
		modelSub.OvertimeDesc,
		modelSub.Status,
		modelSub.LastUpdatedAt,
		modelSub.LastUpdatedBy,
		modelSub.SubmissionID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: a submission already exists for this month", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("submission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// UpdateSubmissionStatus applies a validated status transition. The WHERE
// clause re-checks the expected status so a transition that raced with another
// reviewer matches zero rows instead of clobbering their write; that case
// surfaces as ErrConflict.
// statusExecer covers both the pool and an open transaction for the
// conditional status write.
type statusExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *PgxSubmissionRepository) UpdateSubmissionStatus(ctx context.Context, transition domain.StatusTransitionUpdate) error {
	return execStatusTransition(ctx, r.Pool, transition)
}

// SaveInvoiceAndMarkPaid inserts the invoice and applies the conditional
// ADMIN_PAID transition in one database transaction: a stale status rolls the
// invoice insert back too, so a lost race never strands an unreferenced
// invoice.
func (r *PgxSubmissionRepository) SaveInvoiceAndMarkPaid(ctx context.Context, invoice domain.Invoice, transition domain.StatusTransitionUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	if err := r.invoiceRepo.SaveInvoiceInTx(ctx, tx, invoice); err != nil {
		return err
	}
	if err := execStatusTransition(ctx, tx, transition); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func execStatusTransition(ctx context.Context, db statusExecer, transition domain.StatusTransitionUpdate) error {
	query := `
        UPDATE submissions
        SET status = $1,
            manager_comment = COALESCE($2, manager_comment),
            admin_comment = COALESCE($3, admin_comment),
            acted_by = $4,
            acted_at = $5,
            invoice_id = COALESCE($6, invoice_id),
            last_updated_at = $5,
            last_updated_by = $4
        WHERE submission_id = $7 AND status = $8;
    `
	cmdTag, err := db.Exec(ctx, query,
		string(transition.NewStatus),
		transition.ManagerComment,
		transition.AdminComment,
		transition.ActedBy,
		transition.ActedAt,
		transition.InvoiceID,
		transition.SubmissionID,
		string(transition.ExpectedStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s is no longer in %s status: %w", transition.SubmissionID, transition.ExpectedStatus, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxSubmissionRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	query := `DELETE FROM submissions WHERE submission_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, submissionID)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("submission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
