package mapping

import (
	"database/sql"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/models"
)

// ToModelHoliday converts a domain Holiday to a model Holiday
func ToModelHoliday(d domain.Holiday) models.Holiday {
	return models.Holiday{
		HolidayID:   d.HolidayID,
		Name:        d.Name,
		Description: d.Description,
		Type:        string(d.Type),
		Dates:       d.Dates,
		IsActive:    d.IsActive,
		IsPaid:      d.IsPaid,

		AppliesToAllProjects: sql.NullBool{Bool: d.AppliesToAllProjects, Valid: true},
		ProjectIDs:           d.ProjectIDs,

		AppliesToAllEmployeeTypes: sql.NullBool{Bool: d.AppliesToAllEmployeeTypes, Valid: true},
		EmployeeTypes:             d.EmployeeTypes,

		AppliesToAllLocations: sql.NullBool{Bool: d.AppliesToAllLocations, Valid: true},
		Countries:             d.Countries,
		Regions:               d.Regions,

		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHoliday converts a model Holiday to a domain Holiday. NULL
// applies-to-all columns map to true: a rule is only restricted when the flag
// was explicitly set to false.
func ToDomainHoliday(m models.Holiday) domain.Holiday {
	return domain.Holiday{
		HolidayID:   m.HolidayID,
		Name:        m.Name,
		Description: m.Description,
		Type:        domain.HolidayType(m.Type),
		Dates:       m.Dates,
		IsActive:    m.IsActive,
		IsPaid:      m.IsPaid,

		AppliesToAllProjects: nullBoolDefaultTrue(m.AppliesToAllProjects),
		ProjectIDs:           m.ProjectIDs,

		AppliesToAllEmployeeTypes: nullBoolDefaultTrue(m.AppliesToAllEmployeeTypes),
		EmployeeTypes:             m.EmployeeTypes,

		AppliesToAllLocations: nullBoolDefaultTrue(m.AppliesToAllLocations),
		Countries:             m.Countries,
		Regions:               m.Regions,

		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainHolidaySlice converts a slice of model Holidays to domain Holidays
func ToDomainHolidaySlice(ms []models.Holiday) []domain.Holiday {
	ds := make([]domain.Holiday, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHoliday(m)
	}
	return ds
}

func nullBoolDefaultTrue(b sql.NullBool) bool {
	if !b.Valid {
		return true
	}
	return b.Bool
}
