package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByEmployee retrieves an employee's invoices, newest first.
	ListInvoicesByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.Invoice, error)

	// ListInvoices retrieves a paginated list of all invoices (admin).
	ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error)

	// CountInvoicesForMonth returns how many invoices were issued in a
	// YYYY-MM month, used to build sequential invoice numbers.
	CountInvoicesForMonth(ctx context.Context, month string) (int, error)
}

// InvoiceTransactionSupport defines invoice writes that run inside a caller
// supplied transaction.
type InvoiceTransactionSupport interface {
	// SaveInvoiceInTx persists a new invoice within the given transaction,
	// so it commits or rolls back together with the paying status write.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceTransactionSupport
}
