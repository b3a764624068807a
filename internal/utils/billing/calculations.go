// Package billing holds the pure invoice amount calculations, kept separate
// from the services so both the invoice service and the reporting export use
// the same arithmetic.
package billing

import (
	"github.com/shopspring/decimal"
)

// OvertimeMultiplier is the billing rate applied to overtime hours.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// amounts are rounded to 2 decimal places at the end, never in between.
const amountPrecision = 2

// InvoiceAmounts is the monetary breakdown for one submission.
type InvoiceAmounts struct {
	Regular  decimal.Decimal
	Overtime decimal.Decimal
	Total    decimal.Decimal
}

// CalculateInvoiceAmounts computes the payable amounts for a submission given
// the employee's hourly rate. Overtime is billed at OvertimeMultiplier times
// the regular rate.
func CalculateInvoiceAmounts(hours, overtimeHours, hourlyRate decimal.Decimal) InvoiceAmounts {
	regular := hours.Mul(hourlyRate)
	overtime := overtimeHours.Mul(hourlyRate).Mul(OvertimeMultiplier)
	return InvoiceAmounts{
		Regular:  regular.Round(amountPrecision),
		Overtime: overtime.Round(amountPrecision),
		Total:    regular.Add(overtime).Round(amountPrecision),
	}
}
