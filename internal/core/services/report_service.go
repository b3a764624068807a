package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/utils/billing"
	"github.com/xuri/excelize/v2"
)

type reportService struct {
	BaseService
	submissionRepo portsrepo.SubmissionRepositoryFacade
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
}

// NewReportService creates a new report service instance.
func NewReportService(
	submissionRepo portsrepo.SubmissionRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.ReportSvcFacade {
	return &reportService{
		submissionRepo: submissionRepo,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

var reportHeaders = []string{
	"Employee", "Submission Date", "Status", "Hours", "Overtime Hours",
	"Regular Amount", "Overtime Amount", "Total Amount", "Currency",
}

// MonthlySubmissionsWorkbook builds the admin export: one row per submission
// in the month with billed amounts, plus a totals row. Amounts are priced off
// the employee's current hourly rate; submissions without a profile are listed
// with empty amounts rather than dropped.
func (s *reportService) MonthlySubmissionsWorkbook(ctx context.Context, month string) ([]byte, string, error) {
	subs, err := s.submissionRepo.ListSubmissionsByMonth(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to load submissions for report", "month", month)
		return nil, "", fmt.Errorf("failed to load submissions for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Submissions"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	totalHours := decimal.Zero
	totalOvertime := decimal.Zero
	totalAmount := decimal.Zero

	row := 2
	for _, sub := range subs {
		name := sub.EmployeeID
		if user, err := s.userRepo.FindUserByID(ctx, sub.EmployeeID); err == nil {
			name = user.Name
		}

		values := []any{
			name,
			sub.SubmissionDate,
			string(sub.Status),
			sub.HoursSubmitted.InexactFloat64(),
			sub.OvertimeHours.InexactFloat64(),
		}

		profile, err := s.employeeRepo.FindProfileByUserID(ctx, sub.EmployeeID)
		switch {
		case err == nil:
			amounts := billing.CalculateInvoiceAmounts(sub.HoursSubmitted, sub.OvertimeHours, profile.HourlyRate)
			values = append(values,
				amounts.Regular.InexactFloat64(),
				amounts.Overtime.InexactFloat64(),
				amounts.Total.InexactFloat64(),
				profile.CurrencyCode,
			)
			totalAmount = totalAmount.Add(amounts.Total)
		case errors.Is(err, apperrors.ErrNotFound):
			values = append(values, "", "", "", "")
		default:
			return nil, "", fmt.Errorf("failed to load employee profile for report: %w", err)
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		totalHours = totalHours.Add(sub.HoursSubmitted)
		totalOvertime = totalOvertime.Add(sub.OvertimeHours)
		row++
	}

	totals := map[int]any{
		1: "Total",
		4: totalHours.InexactFloat64(),
		5: totalOvertime.InexactFloat64(),
		8: totalAmount.InexactFloat64(),
	}
	for col, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, cell, v)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize report workbook", "month", month)
		return nil, "", fmt.Errorf("failed to serialize report workbook: %w", err)
	}

	filename := fmt.Sprintf("submissions-%s.xlsx", month)
	s.LogInfo(ctx, "Monthly report generated", "month", month, "rows", len(subs))
	return buf.Bytes(), filename, nil
}
