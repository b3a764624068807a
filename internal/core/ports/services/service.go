package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User       UserSvcFacade
	Employee   EmployeeSvcFacade
	Project    ProjectSvcFacade
	Submission SubmissionSvcFacade
	Holiday    HolidaySvcFacade
	Invoice    InvoiceSvcFacade
	Report     ReportSvcFacade
	Token      TokenSvcFacade
}
