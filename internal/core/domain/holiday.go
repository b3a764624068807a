package domain

// HolidayType distinguishes statutory holidays from company-granted days off.
type HolidayType string

const (
	HolidayTypeHoliday        HolidayType = "HOLIDAY"
	HolidayTypeSpecialTimeOff HolidayType = "SPECIAL_TIME_OFF"
)

// Holiday is a blocked-date rule: a named set of calendar dates employees may
// not submit hours against, optionally restricted along four scope dimensions.
//
// A dimension restricts matching only when its applies-to-all flag is
// explicitly false AND its set is non-empty. A flag that is true, absent or
// null leaves the dimension unrestricted. The asymmetric default is a product
// decision: over-include holidays rather than silently drop them.
type Holiday struct {
	HolidayID   string      `json:"holidayID"` // Primary Key (UUID)
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        HolidayType `json:"type"`
	Dates       []string    `json:"dates"` // Calendar dates, YYYY-MM-DD; order irrelevant
	IsActive    bool        `json:"isActive"`
	IsPaid      bool        `json:"isPaid"`

	AppliesToAllProjects bool     `json:"appliesToAllProjects"`
	ProjectIDs           []string `json:"projectIDs"`

	AppliesToAllEmployeeTypes bool     `json:"appliesToAllEmployeeTypes"`
	EmployeeTypes             []string `json:"employeeTypes"`

	// Locations flag covers both countries and regions; regions are only
	// consulted after the country matched.
	AppliesToAllLocations bool     `json:"appliesToAllLocations"`
	Countries             []string `json:"countries"`
	Regions               []string `json:"regions"`

	AuditFields
}
