package services

import (
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.ProjectRepo)
	container.Holiday = NewHolidayService(repos.HolidayRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.EmployeeRepo, cfg.DefaultCurrencyCode)

	// The submission service sits on top of the others: blocked-date checks
	// come from the holiday service, the manager snapshot from the employee
	// service and payment processing issues invoices.
	container.Submission = NewSubmissionService(
		repos.SubmissionRepo,
		container.Employee,
		container.Holiday,
		container.Invoice,
	)

	container.Report = NewReportService(repos.SubmissionRepo, repos.EmployeeRepo, repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
