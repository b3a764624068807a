package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/timecove/timesheet-backend/internal/utils/billing"
)

func TestCalculateInvoiceAmounts(t *testing.T) {
	amounts := billing.CalculateInvoiceAmounts(
		decimal.NewFromInt(160),       // regular hours
		decimal.NewFromInt(10),        // overtime hours
		decimal.NewFromFloat(50.00),   // hourly rate
	)

	assert.True(t, amounts.Regular.Equal(decimal.NewFromInt(8000)), "regular: %s", amounts.Regular)
	assert.True(t, amounts.Overtime.Equal(decimal.NewFromInt(750)), "overtime: %s", amounts.Overtime)
	assert.True(t, amounts.Total.Equal(decimal.NewFromInt(8750)), "total: %s", amounts.Total)
}

func TestCalculateInvoiceAmountsRounding(t *testing.T) {
	amounts := billing.CalculateInvoiceAmounts(
		decimal.NewFromFloat(1.33),
		decimal.NewFromFloat(0.33),
		decimal.NewFromFloat(33.33),
	)

	assert.Equal(t, "44.33", amounts.Regular.StringFixed(2))
	assert.Equal(t, "16.50", amounts.Overtime.StringFixed(2))
	assert.Equal(t, "60.83", amounts.Total.StringFixed(2))
}

func TestCalculateInvoiceAmountsZeroOvertime(t *testing.T) {
	amounts := billing.CalculateInvoiceAmounts(
		decimal.NewFromInt(40),
		decimal.Zero,
		decimal.NewFromInt(20),
	)

	assert.True(t, amounts.Overtime.IsZero())
	assert.True(t, amounts.Total.Equal(amounts.Regular))
}
