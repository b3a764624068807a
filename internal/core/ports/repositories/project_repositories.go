package repositories

import (
	"context"
	"time"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// ProjectReader defines read operations for projects
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a paginated list of active projects.
	ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)
}

// ProjectWriter defines write operations for projects
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeactivateProject marks a project inactive.
	DeactivateProject(ctx context.Context, projectID string, userID string, now time.Time) error
}

// ProjectRepositoryFacade combines all project repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
