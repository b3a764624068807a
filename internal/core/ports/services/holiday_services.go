package services

import (
	"context"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/timecove/timesheet-backend/internal/dto"
)

// HolidayReaderSvc defines read operations for holiday rules
type HolidayReaderSvc interface {
	// GetHolidayByID retrieves a holiday rule by ID.
	GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)

	// ListHolidays retrieves the full rule set (admin).
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
}

// HolidayWriterSvc defines write operations for holiday rules
type HolidayWriterSvc interface {
	// CreateHoliday creates a new holiday rule.
	CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorUserID string) (*domain.Holiday, error)

	// UpdateHoliday updates an existing holiday rule.
	UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, requestingUserID string) (*domain.Holiday, error)

	// DeleteHoliday removes a holiday rule.
	DeleteHoliday(ctx context.Context, holidayID string, requestingUserID string) error
}

// BlockedDateSvc exposes the blocked-date resolver over the stored rule set.
// Both operations fail open: if the rule set cannot be loaded the error is
// logged and the dates are reported as not blocked, trading holiday
// enforcement for availability of timesheet entry.
type BlockedDateSvc interface {
	// BlockedDatesInRange returns the blocked dates for an employee context
	// within an inclusive [from, to] calendar interval.
	BlockedDatesInRange(ctx context.Context, employeeCtx domain.EmployeeContext, from, to string) ([]workflow.BlockedDate, error)

	// CheckSubmissionDate reports whether a single target date is blocked for
	// the context; consulted before submission create/update persists.
	CheckSubmissionDate(ctx context.Context, employeeCtx domain.EmployeeContext, date string) workflow.DateCheckResult
}

// HolidaySvcFacade combines all holiday service interfaces
type HolidaySvcFacade interface {
	HolidayReaderSvc
	HolidayWriterSvc
	BlockedDateSvc
}
