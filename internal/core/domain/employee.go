package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EmployeeType is the normalized contract type of an employee.
type EmployeeType string

const (
	EmployeeTypeFullTime   EmployeeType = "FULL_TIME"
	EmployeeTypePartTime   EmployeeType = "PART_TIME"
	EmployeeTypeContractor EmployeeType = "CONTRACTOR"
)

// NormalizeEmployeeType upper-cases and underscores a raw contract type string
// so that values like "full time" and "FULL_TIME" compare equal.
func NormalizeEmployeeType(raw string) EmployeeType {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return EmployeeType(s)
}

// EmployeeProfile extends a User with the attributes the timesheet flows need:
// which project they bill against, who reviews their submissions and how they
// are matched against holiday scope.
type EmployeeProfile struct {
	UserID        string          `json:"userID"` // Primary Key, FK -> users.user_id
	ProjectID     string          `json:"projectID"`
	ManagerUserID *string         `json:"managerUserID"` // Nullable: not every employee has an assigned reviewer
	EmployeeType  EmployeeType    `json:"employeeType"`
	Country       string          `json:"country"`
	Region        string          `json:"region"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	CurrencyCode  string          `json:"currencyCode"`
	AuditFields
}

// Context projects the profile down to the matching keys used by holiday
// scope evaluation. Empty strings mean the value is unknown.
func (p EmployeeProfile) Context() EmployeeContext {
	return EmployeeContext{
		ProjectID:    p.ProjectID,
		EmployeeType: p.EmployeeType,
		Country:      p.Country,
		Region:       p.Region,
	}
}

// EmployeeContext carries the scope-matching keys for blocked-date resolution.
// It is consumed, never persisted.
type EmployeeContext struct {
	ProjectID    string       `json:"projectID"`
	EmployeeType EmployeeType `json:"employeeType"`
	Country      string       `json:"country"`
	Region       string       `json:"region"`
}
