package dto

import (
	"github.com/shopspring/decimal"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// UpsertEmployeeProfileRequest defines the data an admin supplies when
// creating or replacing an employee profile.
type UpsertEmployeeProfileRequest struct {
	ProjectID     string          `json:"projectID" binding:"required"`
	ManagerUserID *string         `json:"managerUserID"`
	EmployeeType  string          `json:"employeeType" binding:"required"`
	Country       string          `json:"country"`
	Region        string          `json:"region"`
	HourlyRate    decimal.Decimal `json:"hourlyRate" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
}

// EmployeeProfileResponse defines the data returned for an employee profile.
type EmployeeProfileResponse struct {
	UserID        string          `json:"userID"`
	ProjectID     string          `json:"projectID"`
	ManagerUserID *string         `json:"managerUserID"`
	EmployeeType  string          `json:"employeeType"`
	Country       string          `json:"country"`
	Region        string          `json:"region"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	CurrencyCode  string          `json:"currencyCode"`
}

// ToEmployeeProfileResponse converts a domain.EmployeeProfile to its DTO
func ToEmployeeProfileResponse(p *domain.EmployeeProfile) EmployeeProfileResponse {
	return EmployeeProfileResponse{
		UserID:        p.UserID,
		ProjectID:     p.ProjectID,
		ManagerUserID: p.ManagerUserID,
		EmployeeType:  string(p.EmployeeType),
		Country:       p.Country,
		Region:        p.Region,
		HourlyRate:    p.HourlyRate,
		CurrencyCode:  p.CurrencyCode,
	}
}
