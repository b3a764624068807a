package services

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project by ID.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a paginated list of projects.
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProject updates an existing project.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)

	// DeactivateProject marks a project inactive.
	DeactivateProject(ctx context.Context, projectID string, requestingUserID string) error
}

// ProjectSvcFacade combines all project service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
