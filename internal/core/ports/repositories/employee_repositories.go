package repositories

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// EmployeeProfileReader defines read operations for employee profiles
type EmployeeProfileReader interface {
	// FindProfileByUserID retrieves the employee profile for a user.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error)

	// FindProfilesByManager retrieves the profiles reporting to a manager.
	FindProfilesByManager(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error)
}

// EmployeeProfileWriter defines write operations for employee profiles
type EmployeeProfileWriter interface {
	// SaveProfile persists a new employee profile.
	SaveProfile(ctx context.Context, profile domain.EmployeeProfile) error

	// UpdateProfile updates an existing employee profile.
	UpdateProfile(ctx context.Context, profile domain.EmployeeProfile) error
}

// EmployeeRepositoryFacade combines all employee-profile repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeProfileReader
	EmployeeProfileWriter
}
