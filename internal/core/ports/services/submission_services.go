package services

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/dto"
)

// SubmissionReaderSvc defines read operations for submissions
type SubmissionReaderSvc interface {
	// GetSubmissionByID retrieves a submission, enforcing that the requester
	// is the owner, the assigned manager or an admin.
	GetSubmissionByID(ctx context.Context, submissionID string, requestingUserID string, role domain.UserRole) (*domain.Submission, error)

	// ListOwnSubmissions retrieves the requesting employee's submissions,
	// newest first, with opaque keyset pagination. A non-empty returned token
	// fetches the next page; an empty one means the listing is exhausted.
	ListOwnSubmissions(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.Submission, string, error)

	// ListTeamSubmissions retrieves the submissions assigned to a manager.
	ListTeamSubmissions(ctx context.Context, managerID string, limit, offset int) ([]domain.Submission, error)

	// ListMonthSubmissions retrieves every submission in a YYYY-MM month (admin).
	ListMonthSubmissions(ctx context.Context, month string) ([]domain.Submission, error)
}

// SubmissionWriterSvc defines the employee-side write operations
type SubmissionWriterSvc interface {
	// CreateSubmission validates and creates a new submission in SUBMITTED
	// status. Blocked dates and the one-per-month invariant are checked first.
	CreateSubmission(ctx context.Context, employeeID string, req dto.CreateSubmissionRequest) (*domain.Submission, error)

	// UpdateSubmission applies an employee edit; permitted only in editable
	// statuses, resetting rejected submissions back to SUBMITTED.
	UpdateSubmission(ctx context.Context, submissionID string, employeeID string, req dto.UpdateSubmissionRequest) (*domain.Submission, error)

	// DeleteSubmission removes an employee's own submission while still editable.
	DeleteSubmission(ctx context.Context, submissionID string, employeeID string) error
}

// SubmissionReviewSvc defines the manager/admin review actions
type SubmissionReviewSvc interface {
	// ManagerApprove transitions SUBMITTED -> MANAGER_APPROVED.
	ManagerApprove(ctx context.Context, submissionID string, managerID string, comment string) (*domain.Submission, error)

	// ManagerReject transitions SUBMITTED -> MANAGER_REJECTED. Reason required.
	ManagerReject(ctx context.Context, submissionID string, managerID string, reason string) (*domain.Submission, error)

	// AdminProcessPayment transitions MANAGER_APPROVED -> ADMIN_PAID and
	// issues the linked invoice.
	AdminProcessPayment(ctx context.Context, submissionID string, adminID string, reference string) (*domain.Submission, error)

	// AdminReject transitions MANAGER_APPROVED -> ADMIN_REJECTED. Reason required.
	AdminReject(ctx context.Context, submissionID string, adminID string, reason string) (*domain.Submission, error)

	// AdminRequestClarification transitions MANAGER_APPROVED -> NEEDS_CLARIFICATION.
	AdminRequestClarification(ctx context.Context, submissionID string, adminID string, message string) (*domain.Submission, error)
}

// SubmissionSvcFacade combines all submission service interfaces
type SubmissionSvcFacade interface {
	SubmissionReaderSvc
	SubmissionWriterSvc
	SubmissionReviewSvc
}
