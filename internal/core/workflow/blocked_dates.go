package workflow

import (
	"sort"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// BlockedDateType is the kind tag attached to a blocked-date result.
type BlockedDateType string

const (
	BlockedTypeHoliday       BlockedDateType = "HOLIDAY"
	BlockedTypeSpecialDayOff BlockedDateType = "SPECIAL_DAY_OFF"
)

// BlockedDate is one calendar date an employee may not submit hours against,
// tagged with the rule that blocked it.
type BlockedDate struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Type   BlockedDateType `json:"type"`
	Name   string          `json:"name"`
	Reason string          `json:"reason"`
	IsPaid bool            `json:"isPaid"`
}

// DateCheckResult is the single-date verdict used to gate submission
// create/update requests.
type DateCheckResult struct {
	HasBlockedDates bool     `json:"hasBlockedDates"`
	BlockedDates    []string `json:"blockedDates"`
}

// NormalizeDate coerces a raw date string to plain YYYY-MM-DD calendar form by
// truncating to the leading 10 characters. Prefix extraction on purpose: going
// through a time value would shift dates across the host timezone. Returns
// false if the prefix does not look like a zero-padded ISO calendar date.
func NormalizeDate(raw string) (string, bool) {
	if len(raw) < 10 {
		return "", false
	}
	s := raw[:10]
	for i := 0; i < 10; i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return "", false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return "", false
			}
		}
	}
	return s, true
}

// RuleApplies evaluates a holiday rule against an employee context.
//
// Each scope dimension restricts matching only when its applies-to-all flag is
// explicitly false and its set is non-empty. When a dimension is restricted
// but the context value is absent, the rule is kept: the only excluding case
// is a present context value that fails to match the restricted set. Region is
// consulted only after the country matched and the rule also restricts region.
func RuleApplies(h domain.Holiday, ctx domain.EmployeeContext) bool {
	if restricted(h.AppliesToAllProjects, h.ProjectIDs) && ctx.ProjectID != "" {
		if !containsString(h.ProjectIDs, ctx.ProjectID) {
			return false
		}
	}

	if restricted(h.AppliesToAllEmployeeTypes, h.EmployeeTypes) && ctx.EmployeeType != "" {
		if !containsEmployeeType(h.EmployeeTypes, ctx.EmployeeType) {
			return false
		}
	}

	if restricted(h.AppliesToAllLocations, h.Countries) && ctx.Country != "" {
		if !containsString(h.Countries, ctx.Country) {
			return false
		}
		// Country matched; apply the narrower region restriction if present.
		if len(h.Regions) > 0 && ctx.Region != "" {
			if !containsString(h.Regions, ctx.Region) {
				return false
			}
		}
	}

	return true
}

// BlockedDatesInRange returns every blocked date for the context within the
// inclusive [start, end] interval, ascending, deduplicated by date with the
// first applying rule winning. Both bounds must already be YYYY-MM-DD;
// malformed bounds yield no matches. Inactive rules never block.
func BlockedDatesInRange(rules []domain.Holiday, ctx domain.EmployeeContext, start, end string) []BlockedDate {
	startNorm, okS := NormalizeDate(start)
	endNorm, okE := NormalizeDate(end)
	if !okS || !okE {
		return []BlockedDate{}
	}

	seen := make(map[string]bool)
	blocked := []BlockedDate{}
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if !RuleApplies(rule, ctx) {
			continue
		}
		for _, raw := range rule.Dates {
			date, ok := NormalizeDate(raw)
			if !ok {
				continue // malformed dates are dropped, not fatal
			}
			// Lexicographic comparison is order-equivalent for zero-padded
			// ISO calendar dates.
			if date < startNorm || date > endNorm {
				continue
			}
			if seen[date] {
				continue
			}
			seen[date] = true
			blocked = append(blocked, BlockedDate{
				Date:   date,
				Type:   blockedTypeFor(rule.Type),
				Name:   rule.Name,
				Reason: reasonFor(rule),
				IsPaid: rule.IsPaid,
			})
		}
	}

	sort.Slice(blocked, func(i, j int) bool { return blocked[i].Date < blocked[j].Date })
	return blocked
}

// CheckDate collapses the range query to a single target date for submission
// create/update validation.
func CheckDate(rules []domain.Holiday, ctx domain.EmployeeContext, date string) DateCheckResult {
	matches := BlockedDatesInRange(rules, ctx, date, date)
	result := DateCheckResult{BlockedDates: []string{}}
	for _, m := range matches {
		result.HasBlockedDates = true
		result.BlockedDates = append(result.BlockedDates, m.Date)
	}
	return result
}

// restricted implements the "restricted only if explicit" rule: the
// applies-to-all flag must be explicitly false and the set non-empty.
func restricted(appliesToAll bool, set []string) bool {
	return !appliesToAll && len(set) > 0
}

func blockedTypeFor(t domain.HolidayType) BlockedDateType {
	if t == domain.HolidayTypeSpecialTimeOff {
		return BlockedTypeSpecialDayOff
	}
	return BlockedTypeHoliday
}

func reasonFor(h domain.Holiday) string {
	label := "Company Holiday"
	if h.Type == domain.HolidayTypeSpecialTimeOff {
		label = "Special Time Off"
	}
	if h.Description != "" {
		return label + ": " + h.Description
	}
	return label + ": " + h.Name
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsEmployeeType(set []string, v domain.EmployeeType) bool {
	for _, s := range set {
		if domain.NormalizeEmployeeType(s) == v {
			return true
		}
	}
	return false
}
