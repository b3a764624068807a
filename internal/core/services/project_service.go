package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service instance.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", "project_id", projectID)
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	now := time.Now()
	project := domain.Project{
		ProjectID:  uuid.NewString(),
		Name:       req.Name,
		ClientName: req.ClientName,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", "project_id", project.ProjectID)
		return nil, err
	}

	s.LogInfo(ctx, "Project created", "project_id", project.ProjectID)
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update project", "project_id", projectID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Project updated", "project_id", projectID)
	return project, nil
}

func (s *projectService) DeactivateProject(ctx context.Context, projectID string, requestingUserID string) error {
	err := s.projectRepo.DeactivateProject(ctx, projectID, requestingUserID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate project", "project_id", projectID)
		}
		return err
	}
	s.LogInfo(ctx, "Project deactivated", "project_id", projectID)
	return nil
}
