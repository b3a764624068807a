package workflow_test

import (
	"testing"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/stretchr/testify/assert"
)

func activeHoliday(name string, dates ...string) domain.Holiday {
	return domain.Holiday{
		HolidayID:                 "h-" + name,
		Name:                      name,
		Type:                      domain.HolidayTypeHoliday,
		Dates:                     dates,
		IsActive:                  true,
		IsPaid:                    true,
		AppliesToAllProjects:      true,
		AppliesToAllEmployeeTypes: true,
		AppliesToAllLocations:     true,
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"2025-12-25", "2025-12-25", true},
		{"2025-12-25T00:00:00.000Z", "2025-12-25", true},
		{"2025-07-04T23:59:59+09:00", "2025-07-04", true},
		{"2025-1-05", "", false},
		{"25-12-2025", "", false},
		{"not a date", "", false},
		{"", "", false},
		{"2025/12/25", "", false},
	}
	for _, tc := range tests {
		got, ok := workflow.NormalizeDate(tc.raw)
		assert.Equal(t, tc.wantOK, ok, "normalize %q", tc.raw)
		assert.Equal(t, tc.want, got, "normalize %q", tc.raw)
	}
}

func TestRuleAppliesCountryRestriction(t *testing.T) {
	h := activeHoliday("Independence Day", "2025-07-04")
	h.AppliesToAllLocations = false
	h.Countries = []string{"US"}

	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "US"}))
	assert.False(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "CA"}))
	// Absent context value on a restricted dimension keeps the rule.
	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{}))
}

func TestRuleAppliesUnrestrictedWhenFlagTrue(t *testing.T) {
	// Flag true wins regardless of the set contents.
	h := activeHoliday("Global Day", "2025-01-01")
	h.AppliesToAllLocations = true
	h.Countries = []string{"US"}

	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "FR"}))
	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{}))
}

func TestRuleAppliesEmptySetIsUnrestricted(t *testing.T) {
	// Flag false with an empty set does not restrict.
	h := activeHoliday("Empty Scope", "2025-01-01")
	h.AppliesToAllProjects = false
	h.ProjectIDs = nil

	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{ProjectID: "p-1"}))
}

func TestRuleAppliesProjectAndEmployeeType(t *testing.T) {
	h := activeHoliday("Plant Shutdown", "2025-08-15")
	h.AppliesToAllProjects = false
	h.ProjectIDs = []string{"p-1", "p-2"}
	h.AppliesToAllEmployeeTypes = false
	h.EmployeeTypes = []string{"full time"}

	ctx := domain.EmployeeContext{ProjectID: "p-1", EmployeeType: domain.EmployeeTypeFullTime}
	assert.True(t, workflow.RuleApplies(h, ctx))

	ctx.ProjectID = "p-9"
	assert.False(t, workflow.RuleApplies(h, ctx))

	ctx.ProjectID = "p-2"
	ctx.EmployeeType = domain.EmployeeTypeContractor
	assert.False(t, workflow.RuleApplies(h, ctx))
}

func TestRuleAppliesRegionNestedUnderCountry(t *testing.T) {
	h := activeHoliday("Bastille Day", "2025-07-14")
	h.AppliesToAllLocations = false
	h.Countries = []string{"FR"}
	h.Regions = []string{"Ile-de-France"}

	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "FR", Region: "Ile-de-France"}))
	assert.False(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "FR", Region: "Provence"}))
	// No region on the context: fail open once the country matched.
	assert.True(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "FR"}))
	// Region never consulted when the country does not match.
	assert.False(t, workflow.RuleApplies(h, domain.EmployeeContext{Country: "DE", Region: "Ile-de-France"}))
}

func TestBlockedDatesInRange(t *testing.T) {
	us := activeHoliday("Independence Day", "2025-07-04")
	us.AppliesToAllLocations = false
	us.Countries = []string{"US"}

	rules := []domain.Holiday{us}
	ctx := domain.EmployeeContext{Country: "US"}

	blocked := workflow.BlockedDatesInRange(rules, ctx, "2025-07-01", "2025-07-10")
	if assert.Len(t, blocked, 1) {
		assert.Equal(t, "2025-07-04", blocked[0].Date)
		assert.Equal(t, workflow.BlockedTypeHoliday, blocked[0].Type)
		assert.Equal(t, "Independence Day", blocked[0].Name)
		assert.True(t, blocked[0].IsPaid)
	}

	// Same rule set, non-matching country: nothing blocked.
	assert.Empty(t, workflow.BlockedDatesInRange(rules, domain.EmployeeContext{Country: "FR"}, "2025-07-01", "2025-07-10"))
}

func TestBlockedDatesInactiveRuleNeverBlocks(t *testing.T) {
	h := activeHoliday("Retired Holiday", "2025-07-04")
	h.IsActive = false

	blocked := workflow.BlockedDatesInRange([]domain.Holiday{h}, domain.EmployeeContext{}, "2025-01-01", "2025-12-31")
	assert.Empty(t, blocked)
}

func TestBlockedDatesNormalizationAndBounds(t *testing.T) {
	h := activeHoliday("Christmas", "2025-12-25T00:00:00.000Z", "garbage", "2026-01-01")

	blocked := workflow.BlockedDatesInRange([]domain.Holiday{h}, domain.EmployeeContext{}, "2025-12-01", "2025-12-31")
	if assert.Len(t, blocked, 1) {
		assert.Equal(t, "2025-12-25", blocked[0].Date)
	}

	// Inclusive interval bounds.
	edges := workflow.BlockedDatesInRange([]domain.Holiday{h}, domain.EmployeeContext{}, "2025-12-25", "2025-12-25")
	assert.Len(t, edges, 1)
}

func TestBlockedDatesDedupeAndOrdering(t *testing.T) {
	first := activeHoliday("New Year", "2025-01-01")
	overlap := activeHoliday("Office Closed", "2025-01-01", "2025-01-02")
	overlap.Type = domain.HolidayTypeSpecialTimeOff

	rules := []domain.Holiday{overlap, first}
	blocked := workflow.BlockedDatesInRange(rules, domain.EmployeeContext{}, "2025-01-01", "2025-01-31")

	if assert.Len(t, blocked, 2) {
		assert.Equal(t, "2025-01-01", blocked[0].Date)
		// First occurrence wins: the overlap rule was evaluated first.
		assert.Equal(t, "Office Closed", blocked[0].Name)
		assert.Equal(t, workflow.BlockedTypeSpecialDayOff, blocked[0].Type)
		assert.Equal(t, "2025-01-02", blocked[1].Date)
	}
}

func TestBlockedDatesIdempotent(t *testing.T) {
	rules := []domain.Holiday{
		activeHoliday("A", "2025-03-03", "2025-03-01"),
		activeHoliday("B", "2025-03-02"),
	}
	ctx := domain.EmployeeContext{Country: "US"}

	one := workflow.BlockedDatesInRange(rules, ctx, "2025-03-01", "2025-03-31")
	two := workflow.BlockedDatesInRange(rules, ctx, "2025-03-01", "2025-03-31")
	assert.Equal(t, one, two)
	if assert.Len(t, one, 3) {
		assert.Equal(t, "2025-03-01", one[0].Date)
		assert.Equal(t, "2025-03-02", one[1].Date)
		assert.Equal(t, "2025-03-03", one[2].Date)
	}
}

func TestBlockedDatesMalformedBounds(t *testing.T) {
	rules := []domain.Holiday{activeHoliday("A", "2025-03-01")}
	assert.Empty(t, workflow.BlockedDatesInRange(rules, domain.EmployeeContext{}, "bad", "2025-03-31"))
	assert.Empty(t, workflow.BlockedDatesInRange(rules, domain.EmployeeContext{}, "2025-03-01", ""))
}

func TestCheckDate(t *testing.T) {
	us := activeHoliday("Independence Day", "2025-07-04")
	us.AppliesToAllLocations = false
	us.Countries = []string{"US"}
	rules := []domain.Holiday{us}

	blocked := workflow.CheckDate(rules, domain.EmployeeContext{Country: "US"}, "2025-07-04")
	assert.True(t, blocked.HasBlockedDates)
	assert.Equal(t, []string{"2025-07-04"}, blocked.BlockedDates)

	clear := workflow.CheckDate(rules, domain.EmployeeContext{Country: "US"}, "2025-07-05")
	assert.False(t, clear.HasBlockedDates)
	assert.Empty(t, clear.BlockedDates)

	// Timestamp-suffixed target date is normalized before comparison.
	suffixed := workflow.CheckDate(rules, domain.EmployeeContext{Country: "US"}, "2025-07-04T12:00:00Z")
	assert.True(t, suffixed.HasBlockedDates)
}
