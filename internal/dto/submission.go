package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// CreateSubmissionRequest defines the data an employee supplies when
// submitting a monthly timesheet.
type CreateSubmissionRequest struct {
	SubmissionDate string          `json:"submissionDate" binding:"required,datestr"` // YYYY-MM-DD
	HoursSubmitted decimal.Decimal `json:"hoursSubmitted" binding:"required"`
	OvertimeHours  decimal.Decimal `json:"overtimeHours"`
	Description    string          `json:"description" binding:"required"`
	OvertimeDesc   string          `json:"overtimeDescription"`
}

// UpdateSubmissionRequest defines the data allowed for an employee edit.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSubmissionRequest struct {
	SubmissionDate *string          `json:"submissionDate"`
	HoursSubmitted *decimal.Decimal `json:"hoursSubmitted"`
	OvertimeHours  *decimal.Decimal `json:"overtimeHours"`
	Description    *string          `json:"description"`
	OvertimeDesc   *string          `json:"overtimeDescription"`
}

// ReviewActionRequest carries the comment/reason for a review action.
// Reject and clarification actions require it; approve and pay do not.
type ReviewActionRequest struct {
	Comment string `json:"comment"`
}

// ListSubmissionsParams defines query parameters for listing submissions.
// PageToken is only honored by the own-submissions listing, which paginates by
// keyset rather than offset.
type ListSubmissionsParams struct {
	Limit     int    `form:"limit,default=20"`
	Offset    int    `form:"offset,default=0"`
	PageToken string `form:"pageToken"`
}

// SubmissionResponse defines the data returned for a submission.
type SubmissionResponse struct {
	SubmissionID   string          `json:"submissionID"`
	EmployeeID     string          `json:"employeeID"`
	ManagerID      *string         `json:"managerID"`
	SubmissionDate string          `json:"submissionDate"`
	HoursSubmitted decimal.Decimal `json:"hoursSubmitted"`
	OvertimeHours  decimal.Decimal `json:"overtimeHours"`
	Description    string          `json:"description"`
	OvertimeDesc   string          `json:"overtimeDescription"`
	Status         string          `json:"status"`
	ManagerComment string          `json:"managerComment,omitempty"`
	AdminComment   string          `json:"adminComment,omitempty"`
	ActedBy        *string         `json:"actedBy,omitempty"`
	ActedAt        *time.Time      `json:"actedAt,omitempty"`
	InvoiceID      *string         `json:"invoiceID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListSubmissionsResponse wraps the list of submissions. NextPageToken is set
// when another page exists.
type ListSubmissionsResponse struct {
	Submissions   []SubmissionResponse `json:"submissions"`
	NextPageToken string               `json:"nextPageToken,omitempty"`
}

// BlockedDateErrorResponse is the structured rejection returned when a
// submission targets a blocked date, so the UI can highlight the dates.
type BlockedDateErrorResponse struct {
	Error        string   `json:"error"`
	BlockedDates []string `json:"blockedDates"`
}

// ToSubmissionResponse converts a domain.Submission to SubmissionResponse DTO
func ToSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:   s.SubmissionID,
		EmployeeID:     s.EmployeeID,
		ManagerID:      s.ManagerID,
		SubmissionDate: s.SubmissionDate,
		HoursSubmitted: s.HoursSubmitted,
		OvertimeHours:  s.OvertimeHours,
		Description:    s.Description,
		OvertimeDesc:   s.OvertimeDesc,
		Status:         string(s.Status),
		ManagerComment: s.ManagerComment,
		AdminComment:   s.AdminComment,
		ActedBy:        s.ActedBy,
		ActedAt:        s.ActedAt,
		InvoiceID:      s.InvoiceID,
		CreatedAt:      s.CreatedAt,
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// ToListSubmissionsResponse converts domain submissions to the list DTO
func ToListSubmissionsResponse(subs []domain.Submission) ListSubmissionsResponse {
	responses := make([]SubmissionResponse, len(subs))
	for i, s := range subs {
		responses[i] = ToSubmissionResponse(&s)
	}
	return ListSubmissionsResponse{Submissions: responses}
}
