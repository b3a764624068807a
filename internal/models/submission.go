package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Submission represents a row in the submissions table.
// submission_date is stored as a DATE column and scanned as a plain
// YYYY-MM-DD string so no timezone conversion is involved.
type Submission struct {
	SubmissionID   string          `db:"submission_id"`
	EmployeeID     string          `db:"employee_id"`
	ManagerID      sql.NullString  `db:"manager_id"`
	SubmissionDate string          `db:"submission_date"`
	HoursSubmitted decimal.Decimal `db:"hours_submitted"`
	OvertimeHours  decimal.Decimal `db:"overtime_hours"`
	Description    string          `db:"description"`
	OvertimeDesc   string          `db:"overtime_description"`
	Status         string          `db:"status"`
	ManagerComment string          `db:"manager_comment"`
	AdminComment   string          `db:"admin_comment"`
	ActedBy        sql.NullString  `db:"acted_by"`
	ActedAt        sql.NullTime    `db:"acted_at"`
	InvoiceID      sql.NullString  `db:"invoice_id"`
	AuditFields
}
