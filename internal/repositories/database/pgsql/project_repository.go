package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	"github.com/timecove/timesheet-backend/internal/models"
	"github.com/timecove/timesheet-backend/internal/utils/mapping"
)

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{db: db}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, client_name, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.Name,
		&m.ClientName,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1;
	`
	modelProject, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	domainProject := mapping.ToDomainProject(modelProject)
	return &domainProject, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + projectColumns + `
        FROM projects
        WHERE is_active = TRUE
        ORDER BY name
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects := []models.Project{}
	for rows.Next() {
		modelProject, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		modelProjects = append(modelProjects, modelProject)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}

	return mapping.ToDomainProjectSlice(modelProjects), nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	modelProject := mapping.ToModelProject(project)
	query := `
        INSERT INTO projects (project_id, name, client_name, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelProject.ProjectID,
		modelProject.Name,
		modelProject.ClientName,
		modelProject.IsActive,
		modelProject.CreatedAt,
		modelProject.CreatedBy,
		modelProject.LastUpdatedAt,
		modelProject.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, project.ProjectID)
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	modelProject := mapping.ToModelProject(project)
	query := `
        UPDATE projects
        SET name = $1, client_name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
        WHERE project_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelProject.Name,
		modelProject.ClientName,
		modelProject.IsActive,
		modelProject.LastUpdatedAt,
		modelProject.LastUpdatedBy,
		modelProject.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeactivateProject(ctx context.Context, projectID string, userID string, now time.Time) error {
	query := `
        UPDATE projects
        SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE project_id = $3 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, now, userID, projectID)
	if err != nil {
		return fmt.Errorf("failed to deactivate project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found or already inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}
