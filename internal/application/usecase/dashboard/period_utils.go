// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// Granularity represents the time granularity for trends data.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// monthAbbreviations maps months to German abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mär",
	time.April:     "Apr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Dez",
}

// GeneratePeriodLabel generates a human-readable label for a period based on granularity.
// Formats:
// - Weekly: "KW{week} {year}" (e.g., "KW12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mär 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("KW%d %d", week, year)
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	default:
		return date.Format("02.01.2006")
	}
}

// resolveMonth parses month ("YYYY-MM") or falls back to the month of asOf.
func resolveMonth(month string, asOf time.Time) (finance.Month, error) {
	if month == "" {
		return finance.MonthOf(asOf), nil
	}
	m, err := finance.ParseMonth(month)
	if err != nil {
		return finance.Month{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	return m, nil
}

func missingUserError() error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardMissingUser,
		"user id is required",
		domainerror.ErrMissingUserID,
	)
}

func internalError(message string, err error) error {
	return domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, message, err)
}
