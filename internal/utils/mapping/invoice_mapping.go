package mapping

import (
	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		SubmissionID:   d.SubmissionID,
		EmployeeID:     d.EmployeeID,
		InvoiceNumber:  d.InvoiceNumber,
		RegularAmount:  d.RegularAmount,
		OvertimeAmount: d.OvertimeAmount,
		TotalAmount:    d.TotalAmount,
		CurrencyCode:   d.CurrencyCode,
		IssuedAt:       d.IssuedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		SubmissionID:   m.SubmissionID,
		EmployeeID:     m.EmployeeID,
		InvoiceNumber:  m.InvoiceNumber,
		RegularAmount:  m.RegularAmount,
		OvertimeAmount: m.OvertimeAmount,
		TotalAmount:    m.TotalAmount,
		CurrencyCode:   m.CurrencyCode,
		IssuedAt:       m.IssuedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
