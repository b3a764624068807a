package dto

import (
	"time"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
)

// CreateHolidayRequest defines the data needed to create a blocked-date rule.
// The applies-to-all flags are pointers so an omitted flag defaults to true
// (unrestricted) rather than false.
type CreateHolidayRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required,oneof=HOLIDAY SPECIAL_TIME_OFF"`
	Dates       []string `json:"dates" binding:"required,min=1"`
	IsActive    *bool    `json:"isActive"`
	IsPaid      *bool    `json:"isPaid"`

	AppliesToAllProjects *bool    `json:"appliesToAllProjects"`
	ProjectIDs           []string `json:"projectIDs"`

	AppliesToAllEmployeeTypes *bool    `json:"appliesToAllEmployeeTypes"`
	EmployeeTypes             []string `json:"employeeTypes"`

	AppliesToAllLocations *bool    `json:"appliesToAllLocations"`
	Countries             []string `json:"countries"`
	Regions               []string `json:"regions"`
}

// UpdateHolidayRequest defines the data allowed when updating a rule.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateHolidayRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Type        *string  `json:"type" binding:"omitempty,oneof=HOLIDAY SPECIAL_TIME_OFF"`
	Dates       []string `json:"dates" binding:"omitempty,min=1"`
	IsActive    *bool    `json:"isActive"`
	IsPaid      *bool    `json:"isPaid"`

	AppliesToAllProjects *bool    `json:"appliesToAllProjects"`
	ProjectIDs           []string `json:"projectIDs"`

	AppliesToAllEmployeeTypes *bool    `json:"appliesToAllEmployeeTypes"`
	EmployeeTypes             []string `json:"employeeTypes"`

	AppliesToAllLocations *bool    `json:"appliesToAllLocations"`
	Countries             []string `json:"countries"`
	Regions               []string `json:"regions"`
}

// BlockedDatesParams defines query parameters for the blocked-dates lookup.
type BlockedDatesParams struct {
	From string `form:"from" binding:"required,datestr"`
	To   string `form:"to" binding:"required,datestr"`
}

// HolidayResponse defines the data returned for a blocked-date rule.
type HolidayResponse struct {
	HolidayID   string   `json:"holidayID"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Dates       []string `json:"dates"`
	IsActive    bool     `json:"isActive"`
	IsPaid      bool     `json:"isPaid"`

	AppliesToAllProjects bool     `json:"appliesToAllProjects"`
	ProjectIDs           []string `json:"projectIDs"`

	AppliesToAllEmployeeTypes bool     `json:"appliesToAllEmployeeTypes"`
	EmployeeTypes             []string `json:"employeeTypes"`

	AppliesToAllLocations bool     `json:"appliesToAllLocations"`
	Countries             []string `json:"countries"`
	Regions               []string `json:"regions"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListHolidaysResponse wraps the list of blocked-date rules.
type ListHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// BlockedDateResponse is one resolved blocked date for an employee.
type BlockedDateResponse struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
	IsPaid bool   `json:"isPaid"`
}

// ListBlockedDatesResponse wraps the resolved blocked dates for a range.
type ListBlockedDatesResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// ToHolidayResponse converts a domain.Holiday to HolidayResponse DTO
func ToHolidayResponse(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		HolidayID:                 h.HolidayID,
		Name:                      h.Name,
		Description:               h.Description,
		Type:                      string(h.Type),
		Dates:                     h.Dates,
		IsActive:                  h.IsActive,
		IsPaid:                    h.IsPaid,
		AppliesToAllProjects:      h.AppliesToAllProjects,
		ProjectIDs:                h.ProjectIDs,
		AppliesToAllEmployeeTypes: h.AppliesToAllEmployeeTypes,
		EmployeeTypes:             h.EmployeeTypes,
		AppliesToAllLocations:     h.AppliesToAllLocations,
		Countries:                 h.Countries,
		Regions:                   h.Regions,
		CreatedAt:                 h.CreatedAt,
		LastUpdatedAt:             h.LastUpdatedAt,
	}
}

// ToListHolidaysResponse converts domain holidays to the list DTO
func ToListHolidaysResponse(holidays []domain.Holiday) ListHolidaysResponse {
	responses := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		responses[i] = ToHolidayResponse(&h)
	}
	return ListHolidaysResponse{Holidays: responses}
}

// ToBlockedDateResponse converts a resolved workflow.BlockedDate to its DTO
func ToBlockedDateResponse(b workflow.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		Date:   b.Date,
		Type:   string(b.Type),
		Name:   b.Name,
		Reason: b.Reason,
		IsPaid: b.IsPaid,
	}
}

// ToListBlockedDatesResponse converts resolved blocked dates to the list DTO
func ToListBlockedDatesResponse(blocked []workflow.BlockedDate) ListBlockedDatesResponse {
	responses := make([]BlockedDateResponse, len(blocked))
	for i, b := range blocked {
		responses[i] = ToBlockedDateResponse(b)
	}
	return ListBlockedDatesResponse{BlockedDates: responses}
}
