package mapping

import (
	"database/sql"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/models"
)

// ToModelEmployeeProfile converts a domain EmployeeProfile to its model
func ToModelEmployeeProfile(d domain.EmployeeProfile) models.EmployeeProfile {
	m := models.EmployeeProfile{
		UserID:       d.UserID,
		ProjectID:    d.ProjectID,
		EmployeeType: string(d.EmployeeType),
		Country:      d.Country,
		Region:       d.Region,
		HourlyRate:   d.HourlyRate,
		CurrencyCode: d.CurrencyCode,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.ManagerUserID != nil {
		m.ManagerUserID = sql.NullString{String: *d.ManagerUserID, Valid: true}
	}
	return m
}

// ToDomainEmployeeProfile converts a model EmployeeProfile to its domain form
func ToDomainEmployeeProfile(m models.EmployeeProfile) domain.EmployeeProfile {
	d := domain.EmployeeProfile{
		UserID:       m.UserID,
		ProjectID:    m.ProjectID,
		EmployeeType: domain.NormalizeEmployeeType(m.EmployeeType),
		Country:      m.Country,
		Region:       m.Region,
		HourlyRate:   m.HourlyRate,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.ManagerUserID.Valid {
		d.ManagerUserID = &m.ManagerUserID.String
	}
	return d
}
