package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionStatus is the review state of a monthly timesheet submission.
type SubmissionStatus string

const (
	StatusSubmitted          SubmissionStatus = "SUBMITTED"
	StatusManagerApproved    SubmissionStatus = "MANAGER_APPROVED"
	StatusManagerRejected    SubmissionStatus = "MANAGER_REJECTED"
	StatusAdminPaid          SubmissionStatus = "ADMIN_PAID"
	StatusAdminRejected      SubmissionStatus = "ADMIN_REJECTED"
	StatusNeedsClarification SubmissionStatus = "NEEDS_CLARIFICATION"
)

// IsValid reports whether the status is one of the known review states.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusManagerApproved, StatusManagerRejected,
		StatusAdminPaid, StatusAdminRejected, StatusNeedsClarification:
		return true
	}
	return false
}

// Submission is one employee's timesheet entry for a calendar month.
// At most one submission may exist per (employee, month).
type Submission struct {
	SubmissionID      string           `json:"submissionID"` // Primary Key (UUID)
	EmployeeID        string           `json:"employeeID"`   // FK -> users.user_id
	ManagerID         *string          `json:"managerID"`    // Snapshot of the employee's reviewer at creation time
	SubmissionDate    string           `json:"submissionDate"` // Calendar date, YYYY-MM-DD, no time component
	HoursSubmitted    decimal.Decimal  `json:"hoursSubmitted"`
	OvertimeHours     decimal.Decimal  `json:"overtimeHours"`
	Description       string           `json:"description"`
	OvertimeDesc      string           `json:"overtimeDescription"`
	Status            SubmissionStatus `json:"status"`
	ManagerComment    string           `json:"managerComment"`
	AdminComment      string           `json:"adminComment"`
	ActedBy           *string          `json:"actedBy"` // User who performed the last review action
	ActedAt           *time.Time       `json:"actedAt"`
	InvoiceID         *string          `json:"invoiceID"` // Set when an admin processes payment
	AuditFields
}

// StatusTransitionUpdate carries the persistence payload for a validated
// status transition. ExpectedStatus guards the conditional write: the update
// only applies while the stored status still matches it, so two racing
// reviewers cannot both win.
type StatusTransitionUpdate struct {
	SubmissionID   string
	ExpectedStatus SubmissionStatus
	NewStatus      SubmissionStatus
	ManagerComment *string
	AdminComment   *string
	ActedBy        string
	ActedAt        time.Time
	InvoiceID      *string
}

// Month returns the YYYY-MM prefix of the submission date, the key the
// one-per-month invariant is enforced on.
func (s Submission) Month() string {
	if len(s.SubmissionDate) < 7 {
		return s.SubmissionDate
	}
	return s.SubmissionDate[:7]
}
