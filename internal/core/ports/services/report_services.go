package services

import (
	"context"
)

// ReportSvcFacade produces downloadable reports for the admin portal.
type ReportSvcFacade interface {
	// MonthlySubmissionsWorkbook builds an xlsx workbook of every submission
	// in a YYYY-MM month, with billed amounts and totals, returning the file
	// bytes and the suggested filename.
	MonthlySubmissionsWorkbook(ctx context.Context, month string) ([]byte, string, error)
}
