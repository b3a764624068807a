package services

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee profiles
type EmployeeReaderSvc interface {
	// GetProfile retrieves the employee profile for a user.
	GetProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error)

	// GetContext resolves the scope-matching context for a user.
	GetContext(ctx context.Context, userID string) (domain.EmployeeContext, error)

	// ListTeam retrieves the profiles reporting to a manager.
	ListTeam(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error)
}

// EmployeeWriterSvc defines write operations for employee profiles
type EmployeeWriterSvc interface {
	// UpsertProfile creates or replaces an employee profile (admin).
	UpsertProfile(ctx context.Context, userID string, req dto.UpsertEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error)
}

// EmployeeSvcFacade combines all employee-profile service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
