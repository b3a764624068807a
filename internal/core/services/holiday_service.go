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
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/timecove/timesheet-backend/internal/dto"
)

type holidayService struct {
	BaseService
	holidayRepo portsrepo.HolidayRepositoryFacade
}

// NewHolidayService creates a new holiday service instance.
func NewHolidayService(holidayRepo portsrepo.HolidayRepositoryFacade) portssvc.HolidaySvcFacade {
	return &holidayService{holidayRepo: holidayRepo}
}

var _ portssvc.HolidaySvcFacade = (*holidayService)(nil)

func (s *holidayService) GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find holiday", "holiday_id", holidayID)
		}
		return nil, err
	}
	return holiday, nil
}

func (s *holidayService) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	holidays, err := s.holidayRepo.ListHolidays(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holidays")
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	if holidays == nil {
		return []domain.Holiday{}, nil
	}
	return holidays, nil
}

func (s *holidayService) CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorUserID string) (*domain.Holiday, error) {
	dates, err := normalizeDates(req.Dates)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	holiday := domain.Holiday{
		HolidayID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.HolidayType(req.Type),
		Dates:       dates,
		IsActive:    boolOrDefault(req.IsActive, true),
		IsPaid:      boolOrDefault(req.IsPaid, true),

		// Omitted applies-to-all flags default to true: a rule is only
		// restricted when the caller explicitly says so.
		AppliesToAllProjects: boolOrDefault(req.AppliesToAllProjects, true),
		ProjectIDs:           req.ProjectIDs,

		AppliesToAllEmployeeTypes: boolOrDefault(req.AppliesToAllEmployeeTypes, true),
		EmployeeTypes:             req.EmployeeTypes,

		AppliesToAllLocations: boolOrDefault(req.AppliesToAllLocations, true),
		Countries:             req.Countries,
		Regions:               req.Regions,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.holidayRepo.SaveHoliday(ctx, holiday); err != nil {
		s.LogError(ctx, err, "Failed to save holiday", "holiday_id", holiday.HolidayID)
		return nil, err
	}

	s.LogInfo(ctx, "Holiday created", "holiday_id", holiday.HolidayID, "name", holiday.Name)
	return &holiday, nil
}

func (s *holidayService) UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, requestingUserID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Description != nil {
		holiday.Description = *req.Description
	}
	if req.Type != nil {
		holiday.Type = domain.HolidayType(*req.Type)
	}
	if req.Dates != nil {
		dates, err := normalizeDates(req.Dates)
		if err != nil {
			return nil, err
		}
		holiday.Dates = dates
	}
	if req.IsActive != nil {
		holiday.IsActive = *req.IsActive
	}
	if req.IsPaid != nil {
		holiday.IsPaid = *req.IsPaid
	}
	if req.AppliesToAllProjects != nil {
		holiday.AppliesToAllProjects = *req.AppliesToAllProjects
	}
	if req.ProjectIDs != nil {
		holiday.ProjectIDs = req.ProjectIDs
	}
	if req.AppliesToAllEmployeeTypes != nil {
		holiday.AppliesToAllEmployeeTypes = *req.AppliesToAllEmployeeTypes
	}
	if req.EmployeeTypes != nil {
		holiday.EmployeeTypes = req.EmployeeTypes
	}
	if req.AppliesToAllLocations != nil {
		holiday.AppliesToAllLocations = *req.AppliesToAllLocations
	}
	if req.Countries != nil {
		holiday.Countries = req.Countries
	}
	if req.Regions != nil {
		holiday.Regions = req.Regions
	}
	holiday.LastUpdatedAt = time.Now()
	holiday.LastUpdatedBy = requestingUserID

	if err := s.holidayRepo.UpdateHoliday(ctx, *holiday); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update holiday", "holiday_id", holidayID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Holiday updated", "holiday_id", holidayID)
	return holiday, nil
}

func (s *holidayService) DeleteHoliday(ctx context.Context, holidayID string, requestingUserID string) error {
	err := s.holidayRepo.DeleteHoliday(ctx, holidayID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete holiday", "holiday_id", holidayID)
		}
		return err
	}
	s.LogInfo(ctx, "Holiday deleted", "holiday_id", holidayID)
	return nil
}

// BlockedDatesInRange resolves the blocked dates for an employee context in
// the inclusive [from, to] interval. A failed rule load fails open: the error
// is logged and no dates are reported blocked, so timesheet entry stays
// available when the holiday table is unreachable.
func (s *holidayService) BlockedDatesInRange(ctx context.Context, employeeCtx domain.EmployeeContext, from, to string) ([]workflow.BlockedDate, error) {
	rules, err := s.holidayRepo.ListHolidays(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load holiday rules, treating range as unblocked")
		return []workflow.BlockedDate{}, nil
	}
	return workflow.BlockedDatesInRange(rules, employeeCtx, from, to), nil
}

// CheckSubmissionDate reports whether a single date is blocked for the
// context. Same fail-open behavior as BlockedDatesInRange.
func (s *holidayService) CheckSubmissionDate(ctx context.Context, employeeCtx domain.EmployeeContext, date string) workflow.DateCheckResult {
	rules, err := s.holidayRepo.ListHolidays(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load holiday rules, treating date as unblocked", "date", date)
		return workflow.DateCheckResult{BlockedDates: []string{}}
	}
	return workflow.CheckDate(rules, employeeCtx, date)
}

// normalizeDates validates and normalizes every date in a rule to YYYY-MM-DD.
func normalizeDates(raw []string) ([]string, error) {
	dates := make([]string, 0, len(raw))
	for _, r := range raw {
		d, ok := workflow.NormalizeDate(r)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date: %s", r))
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
