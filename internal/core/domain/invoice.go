package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the payable record created when an admin processes payment for a
// manager-approved submission.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	SubmissionID   string          `json:"submissionID"`
	EmployeeID     string          `json:"employeeID"`
	InvoiceNumber  string          `json:"invoiceNumber"` // e.g. INV-2025-07-0042
	RegularAmount  decimal.Decimal `json:"regularAmount"`
	OvertimeAmount decimal.Decimal `json:"overtimeAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	IssuedAt       time.Time       `json:"issuedAt"`
	AuditFields
}
