package models

import "database/sql"

// Holiday represents a row in the holidays table. The applies_to_all_* columns
// are nullable on purpose: NULL means "not explicitly restricted" and maps to
// true on the way into the domain, matching the fail-open scope semantics.
type Holiday struct {
	HolidayID   string   `db:"holiday_id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Type        string   `db:"type"`
	Dates       []string `db:"dates"` // text[] column
	IsActive    bool     `db:"is_active"`
	IsPaid      bool     `db:"is_paid"`

	AppliesToAllProjects sql.NullBool `db:"applies_to_all_projects"`
	ProjectIDs           []string     `db:"project_ids"`

	AppliesToAllEmployeeTypes sql.NullBool `db:"applies_to_all_employee_types"`
	EmployeeTypes             []string     `db:"employee_types"`

	AppliesToAllLocations sql.NullBool `db:"applies_to_all_locations"`
	Countries             []string     `db:"countries"`
	Regions               []string     `db:"regions"`

	AuditFields
}
