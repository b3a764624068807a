package repositories

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// HolidayReader defines read operations for holiday rules
type HolidayReader interface {
	// FindHolidayByID retrieves a specific holiday rule by ID.
	FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)

	// ListHolidays returns the full rule set, active and inactive. The
	// blocked-date resolver filters in memory on purpose; scope filtering is
	// never pushed into the query.
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
}

// HolidayWriter defines write operations for holiday rules
type HolidayWriter interface {
	// SaveHoliday persists a new holiday rule.
	SaveHoliday(ctx context.Context, holiday domain.Holiday) error

	// UpdateHoliday updates an existing holiday rule.
	UpdateHoliday(ctx context.Context, holiday domain.Holiday) error

	// DeleteHoliday removes a holiday rule.
	DeleteHoliday(ctx context.Context, holidayID string) error
}

// HolidayRepositoryFacade combines all holiday repository interfaces
type HolidayRepositoryFacade interface {
	HolidayReader
	HolidayWriter
}
