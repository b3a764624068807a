package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// EmployeeProfile represents a row in the employee_profiles table.
type EmployeeProfile struct {
	UserID        string          `db:"user_id"`
	ProjectID     string          `db:"project_id"`
	ManagerUserID sql.NullString  `db:"manager_user_id"`
	EmployeeType  string          `db:"employee_type"`
	Country       string          `db:"country"`
	Region        string          `db:"region"`
	HourlyRate    decimal.Decimal `db:"hourly_rate"`
	CurrencyCode  string          `db:"currency_code"`
	AuditFields
}
