package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
}

// NewEmployeeService creates a new employee-profile service instance.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	profile, err := s.employeeRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee profile", "user_id", userID)
		}
		return nil, err
	}
	return profile, nil
}

// GetContext resolves the holiday scope-matching context for a user. A user
// without a profile gets an empty context rather than an error: scope
// evaluation treats absent values as unrestricted.
func (s *employeeService) GetContext(ctx context.Context, userID string) (domain.EmployeeContext, error) {
	profile, err := s.employeeRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.EmployeeContext{}, nil
		}
		s.LogError(ctx, err, "Failed to resolve employee context", "user_id", userID)
		return domain.EmployeeContext{}, fmt.Errorf("failed to resolve employee context: %w", err)
	}
	return profile.Context(), nil
}

func (s *employeeService) ListTeam(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error) {
	profiles, err := s.employeeRepo.FindProfilesByManager(ctx, managerUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team profiles", "manager_id", managerUserID)
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	if profiles == nil {
		return []domain.EmployeeProfile{}, nil
	}
	return profiles, nil
}

func (s *employeeService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error) {
	if req.HourlyRate.IsNegative() {
		return nil, apperrors.NewValidationError("hourly rate must not be negative")
	}

	// The project must exist and be active before a profile can bill against it.
	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("project %s does not exist", req.ProjectID))
		}
		return nil, err
	}
	if !project.IsActive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("project %s is inactive", req.ProjectID))
	}

	now := time.Now()
	profile := domain.EmployeeProfile{
		UserID:        userID,
		ProjectID:     req.ProjectID,
		ManagerUserID: req.ManagerUserID,
		EmployeeType:  domain.NormalizeEmployeeType(req.EmployeeType),
		Country:       req.Country,
		Region:        req.Region,
		HourlyRate:    req.HourlyRate,
		CurrencyCode:  req.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	existing, err := s.employeeRepo.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
		profile.CreatedBy = existing.CreatedBy
		if err := s.employeeRepo.UpdateProfile(ctx, profile); err != nil {
			s.LogError(ctx, err, "Failed to update employee profile", "user_id", userID)
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
		if err := s.employeeRepo.SaveProfile(ctx, profile); err != nil {
			s.LogError(ctx, err, "Failed to save employee profile", "user_id", userID)
			return nil, err
		}
	default:
		return nil, err
	}

	s.LogInfo(ctx, "Employee profile upserted", "user_id", userID, "project_id", profile.ProjectID)
	return &profile, nil
}
