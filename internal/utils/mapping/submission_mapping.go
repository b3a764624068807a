package mapping

import (
	"database/sql"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/models"
)

// ToModelSubmission converts a domain Submission to a model Submission
func ToModelSubmission(d domain.Submission) models.Submission {
	m := models.Submission{
		SubmissionID:   d.SubmissionID,
		EmployeeID:     d.EmployeeID,
		SubmissionDate: d.SubmissionDate,
		HoursSubmitted: d.HoursSubmitted,
		OvertimeHours:  d.OvertimeHours,
		Description:    d.Description,
		OvertimeDesc:   d.OvertimeDesc,
		Status:         string(d.Status),
		ManagerComment: d.ManagerComment,
		AdminComment:   d.AdminComment,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.ManagerID != nil {
		m.ManagerID = sql.NullString{String: *d.ManagerID, Valid: true}
	}
	if d.ActedBy != nil {
		m.ActedBy = sql.NullString{String: *d.ActedBy, Valid: true}
	}
	if d.ActedAt != nil {
		m.ActedAt = sql.NullTime{Time: *d.ActedAt, Valid: true}
	}
	if d.InvoiceID != nil {
		m.InvoiceID = sql.NullString{String: *d.InvoiceID, Valid: true}
	}
	return m
}

// ToDomainSubmission converts a model Submission to a domain Submission
func ToDomainSubmission(m models.Submission) domain.Submission {
	d := domain.Submission{
		SubmissionID:   m.SubmissionID,
		EmployeeID:     m.EmployeeID,
		SubmissionDate: m.SubmissionDate,
		HoursSubmitted: m.HoursSubmitted,
		OvertimeHours:  m.OvertimeHours,
		Description:    m.Description,
		OvertimeDesc:   m.OvertimeDesc,
		Status:         domain.SubmissionStatus(m.Status),
		ManagerComment: m.ManagerComment,
		AdminComment:   m.AdminComment,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.ManagerID.Valid {
		d.ManagerID = &m.ManagerID.String
	}
	if m.ActedBy.Valid {
		d.ActedBy = &m.ActedBy.String
	}
	if m.ActedAt.Valid {
		d.ActedAt = &m.ActedAt.Time
	}
	if m.InvoiceID.Valid {
		d.InvoiceID = &m.InvoiceID.String
	}
	return d
}

// ToDomainSubmissionSlice converts a slice of model Submissions to domain Submissions
func ToDomainSubmissionSlice(ms []models.Submission) []domain.Submission {
	ds := make([]domain.Submission, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubmission(m)
	}
	return ds
}
