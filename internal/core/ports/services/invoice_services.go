package services

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice; employees may only see their own.
	GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string, role domain.UserRole) (*domain.Invoice, error)

	// ListInvoices retrieves invoices: all of them for admins, the
	// requester's own otherwise.
	ListInvoices(ctx context.Context, requestingUserID string, role domain.UserRole, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceIssuerSvc builds invoices for submissions being paid
type InvoiceIssuerSvc interface {
	// BuildForSubmission constructs the invoice for a submission being paid,
	// priced off the employee's hourly rate. The caller persists it
	// atomically with the paying status transition.
	BuildForSubmission(ctx context.Context, submission domain.Submission, adminID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceIssuerSvc
}
