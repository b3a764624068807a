package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	SubmissionID   string          `db:"submission_id"`
	EmployeeID     string          `db:"employee_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	RegularAmount  decimal.Decimal `db:"regular_amount"`
	OvertimeAmount decimal.Decimal `db:"overtime_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	CurrencyCode   string          `db:"currency_code"`
	IssuedAt       time.Time       `db:"issued_at"`
	AuditFields
}
