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

type PgxHolidayRepository struct {
	db *pgxpool.Pool
}

func newPgxHolidayRepository(db *pgxpool.Pool) portsrepo.HolidayRepositoryFacade {
	return &PgxHolidayRepository{db: db}
}

// Ensure PgxHolidayRepository implements portsrepo.HolidayRepositoryFacade
var _ portsrepo.HolidayRepositoryFacade = (*PgxHolidayRepository)(nil)

const holidayColumns = `holiday_id, name, description, type, dates, is_active, is_paid, applies_to_all_projects, project_ids, applies_to_all_employee_types, employee_types, applies_to_all_locations, countries, regions, created_at, created_by, last_updated_at, last_updated_by`

func scanHoliday(row pgx.Row) (models.Holiday, error) {
	var m models.Holiday
	err := row.Scan(
		&m.HolidayID,
		&m.Name,
		&m.Description,
		&m.Type,
		&m.Dates,
		&m.IsActive,
		&m.IsPaid,
		&m.AppliesToAllProjects,
		&m.ProjectIDs,
		&m.AppliesToAllEmployeeTypes,
		&m.EmployeeTypes,
		&m.AppliesToAllLocations,
		&m.Countries,
		&m.Regions,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxHolidayRepository) FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE holiday_id = $1;
	`
	modelHoliday, err := scanHoliday(r.db.QueryRow(ctx, query, holidayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find holiday by ID %s: %w", holidayID, err)
	}

	domainHoliday := mapping.ToDomainHoliday(modelHoliday)
	return &domainHoliday, nil
}

// ListHolidays returns every rule, active and inactive. Scope and date
// filtering happen in memory in the resolver; the query stays a full scan of
// a table that is small by nature.
func (r *PgxHolidayRepository) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	query := `
        SELECT ` + holidayColumns + `
        FROM holidays
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	modelHolidays := []models.Holiday{}
	for rows.Next() {
		modelHoliday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		modelHolidays = append(modelHolidays, modelHoliday)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", rows.Err())
	}

	return mapping.ToDomainHolidaySlice(modelHolidays), nil
}

func (r *PgxHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	modelHoliday := mapping.ToModelHoliday(holiday)
	query := `
        INSERT INTO holidays (holiday_id, name, description, type, dates, is_active, is_paid, applies_to_all_projects, project_ids, applies_to_all_employee_types, employee_types, applies_to_all_locations, countries, regions, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := r.db.Exec(ctx, query,
		modelHoliday.HolidayID,
		modelHoliday.Name,
		modelHoliday.Description,
		modelHoliday.Type,
		modelHoliday.Dates,
		modelHoliday.IsActive,
		modelHoliday.IsPaid,
		modelHoliday.AppliesToAllProjects,
		modelHoliday.ProjectIDs,
		modelHoliday.AppliesToAllEmployeeTypes,
		modelHoliday.EmployeeTypes,
		modelHoliday.AppliesToAllLocations,
		modelHoliday.Countries,
		modelHoliday.Regions,
		modelHoliday.CreatedAt,
		modelHoliday.CreatedBy,
		modelHoliday.LastUpdatedAt,
		modelHoliday.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: holiday with ID %s already exists", apperrors.ErrDuplicate, holiday.HolidayID)
		}
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

func (r *PgxHolidayRepository) UpdateHoliday(ctx context.Context, holiday domain.Holiday) error {
	modelHoliday := mapping.ToModelHoliday(holiday)
	query := `
        UPDATE holidays
        SET name = $1, description = $2, type = $3, dates = $4, is_active = $5, is_paid = $6,
            applies_to_all_projects = $7, project_ids = $8,
            applies_to_all_employee_types = $9, employee_types = $10,
            applies_to_all_locations = $11, countries = $12, regions = $13,
            last_updated_at = $14, last_updated_by = $15
        WHERE holiday_id = $16;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelHoliday.Name,
		modelHoliday.Description,
		modelHoliday.Type,
		modelHoliday.Dates,
		modelHoliday.IsActive,
		modelHoliday.IsPaid,
		modelHoliday.AppliesToAllProjects,
		modelHoliday.ProjectIDs,
		modelHoliday.AppliesToAllEmployeeTypes,
		modelHoliday.EmployeeTypes,
		modelHoliday.AppliesToAllLocations,
		modelHoliday.Countries,
		modelHoliday.Regions,
		modelHoliday.LastUpdatedAt,
		modelHoliday.LastUpdatedBy,
		modelHoliday.HolidayID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("holiday not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxHolidayRepository) DeleteHoliday(ctx context.Context, holidayID string) error {
	query := `DELETE FROM holidays WHERE holiday_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, holidayID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("holiday not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
