package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	"github.com/timecove/timesheet-backend/internal/models"
	"github.com/timecove/timesheet-backend/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{db: db}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeProfileColumns = `user_id, project_id, manager_user_id, employee_type, country, region, hourly_rate, currency_code, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeProfile(row pgx.Row) (models.EmployeeProfile, error) {
	var m models.EmployeeProfile
	err := row.Scan(
		&m.UserID,
		&m.ProjectID,
		&m.ManagerUserID,
		&m.EmployeeType,
		&m.Country,
		&m.Region,
		&m.HourlyRate,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEmployeeRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	query := `
		SELECT ` + employeeProfileColumns + `
		FROM employee_profiles
		WHERE user_id = $1;
	`
	modelProfile, err := scanEmployeeProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee profile for user %s: %w", userID, err)
	}

	domainProfile := mapping.ToDomainEmployeeProfile(modelProfile)
	return &domainProfile, nil
}

func (r *PgxEmployeeRepository) FindProfilesByManager(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error) {
	query := `
		SELECT ` + employeeProfileColumns + `
		FROM employee_profiles
		WHERE manager_user_id = $1
		ORDER BY user_id;
	`
	rows, err := r.db.Query(ctx, query, managerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles by manager: %w", err)
	}
	defer rows.Close()

	profiles := []domain.EmployeeProfile{}
	for rows.Next() {
		modelProfile, err := scanEmployeeProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee profile row: %w", err)
		}
		profiles = append(profiles, mapping.ToDomainEmployeeProfile(modelProfile))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee profile rows: %w", rows.Err())
	}

	return profiles, nil
}

func (r *PgxEmployeeRepository) SaveProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	modelProfile := mapping.ToModelEmployeeProfile(profile)
	query := `
        INSERT INTO employee_profiles (user_id, project_id, manager_user_id, employee_type, country, region, hourly_rate, currency_code, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		modelProfile.UserID,
		modelProfile.ProjectID,
		modelProfile.ManagerUserID,
		modelProfile.EmployeeType,
		modelProfile.Country,
		modelProfile.Region,
		modelProfile.HourlyRate,
		modelProfile.CurrencyCode,
		modelProfile.CreatedAt,
		modelProfile.CreatedBy,
		modelProfile.LastUpdatedAt,
		modelProfile.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: employee profile already exists for user %s", apperrors.ErrDuplicate, profile.UserID)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationError("user, manager or project does not exist")
			}
		}
		return fmt.Errorf("failed to save employee profile: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	modelProfile := mapping.ToModelEmployeeProfile(profile)
	query := `
        UPDATE employee_profiles
        SET project_id = $1, manager_user_id = $2, employee_type = $3, country = $4, region = $5, hourly_rate = $6, currency_code = $7, last_updated_at = $8, last_updated_by = $9
        WHERE user_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelProfile.ProjectID,
		modelProfile.ManagerUserID,
		modelProfile.EmployeeType,
		modelProfile.Country,
		modelProfile.Region,
		modelProfile.HourlyRate,
		modelProfile.CurrencyCode,
		modelProfile.LastUpdatedAt,
		modelProfile.LastUpdatedBy,
		modelProfile.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationError("manager or project does not exist")
		}
		return fmt.Errorf("failed to update employee profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee profile not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
