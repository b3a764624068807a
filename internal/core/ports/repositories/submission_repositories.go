package repositories

import (
	"context"
	"time"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// SubmissionReader defines read operations for submissions
type SubmissionReader interface {
	// FindSubmissionByID retrieves a specific submission by ID.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error)

	// FindSubmissionByEmployeeAndMonth returns the submission for a given
	// employee and YYYY-MM month, or ErrNotFound. Backs the one-per-month
	// invariant pre-check.
	FindSubmissionByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.Submission, error)

	// ListSubmissionsByEmployee retrieves an employee's submissions, newest
	// first. A non-empty afterDate (with its afterCreatedAt tiebreaker) is a
	// keyset cursor: only rows strictly older than that position are returned.
	ListSubmissionsByEmployee(ctx context.Context, employeeID string, limit int, afterDate string, afterCreatedAt time.Time) ([]domain.Submission, error)

	// ListSubmissionsByManager retrieves the submissions assigned to a manager.
	ListSubmissionsByManager(ctx context.Context, managerID string, limit int, offset int) ([]domain.Submission, error)

	// ListSubmissionsByMonth retrieves every submission in a YYYY-MM month (admin/reporting).
	ListSubmissionsByMonth(ctx context.Context, month string) ([]domain.Submission, error)
}

// SubmissionWriter defines write operations for submissions
type SubmissionWriter interface {
	// SaveSubmission persists a new submission.
	SaveSubmission(ctx context.Context, submission domain.Submission) error

	// UpdateSubmission updates the employee-editable fields (and status reset).
	UpdateSubmission(ctx context.Context, submission domain.Submission) error

	// UpdateSubmissionStatus performs the conditional status transition write:
	// the update applies only while the stored status still equals
	// expectedStatus. Zero rows affected surfaces as ErrConflict so the
	// caller can report the stale read.
	UpdateSubmissionStatus(ctx context.Context, transition domain.StatusTransitionUpdate) error

	// SaveInvoiceAndMarkPaid persists the invoice and applies the paying
	// status transition in a single database transaction. The conditional
	// write semantics match UpdateSubmissionStatus; a stale status rolls the
	// invoice back too and surfaces ErrConflict.
	SaveInvoiceAndMarkPaid(ctx context.Context, invoice domain.Invoice, transition domain.StatusTransitionUpdate) error

	// DeleteSubmission removes a submission (employee-initiated, editable statuses only).
	DeleteSubmission(ctx context.Context, submissionID string) error
}

// SubmissionRepositoryFacade combines all submission repository interfaces
type SubmissionRepositoryFacade interface {
	SubmissionReader
	SubmissionWriter
}

// SubmissionRepositoryWithTx extends SubmissionRepositoryFacade with transaction capabilities
type SubmissionRepositoryWithTx interface {
	SubmissionRepositoryFacade
	TransactionManager
}
