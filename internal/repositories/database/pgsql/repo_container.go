package pgsql

import (
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	holidayRepo := newPgxHolidayRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	// The submission repository saves invoices inside its payment transaction.
	submissionRepo := newPgxSubmissionRepository(dbPool, invoiceRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		EmployeeRepo:   employeeRepo,
		ProjectRepo:    projectRepo,
		SubmissionRepo: submissionRepo,
		HolidayRepo:    holidayRepo,
		InvoiceRepo:    invoiceRepo,
	}
}
