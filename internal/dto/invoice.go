package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	SubmissionID   string          `json:"submissionID"`
	EmployeeID     string          `json:"employeeID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	RegularAmount  decimal.Decimal `json:"regularAmount"`
	OvertimeAmount decimal.Decimal `json:"overtimeAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	IssuedAt       time.Time       `json:"issuedAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		SubmissionID:   inv.SubmissionID,
		EmployeeID:     inv.EmployeeID,
		InvoiceNumber:  inv.InvoiceNumber,
		RegularAmount:  inv.RegularAmount,
		OvertimeAmount: inv.OvertimeAmount,
		TotalAmount:    inv.TotalAmount,
		CurrencyCode:   inv.CurrencyCode,
		IssuedAt:       inv.IssuedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToListInvoicesResponse converts domain invoices to the list DTO
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: responses}
}
