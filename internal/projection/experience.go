package projection

import (
	"regexp"
	"strconv"
	"strings"

	"career-predictor/internal/resumeparse"
)

var reYear = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// ExperienceYears sums the duration of every entry, counting at least six
// months per entry. With no entries the estimate is half a year.
func ExperienceYears(entries []resumeparse.Experience, currentYear int) float64 {
	if len(entries) == 0 {
		return 0.5
	}
	months := 0
	for _, e := range entries {
		start := yearOf(e.StartDate, currentYear-1)
		end := currentYear
		if !isOngoing(e.EndDate) {
			end = yearOf(e.EndDate, currentYear)
		}
		m := (end - start) * 12
		if m < 6 {
			m = 6
		}
		months += m
	}
	return float64(months) / 12
}

func isOngoing(endDate string) bool {
	lower := strings.ToLower(endDate)
	return strings.TrimSpace(lower) == "" || strings.Contains(lower, "present") || strings.Contains(lower, "current")
}

func yearOf(date string, fallback int) int {
	m := reYear.FindString(date)
	if m == "" {
		return fallback
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return fallback
	}
	return y
}

func experienceFactor(years float64) float64 {
	switch {
	case years < 1:
		return 1.15
	case years < 3:
		return 1.10
	case years < 5:
		return 1.05
	case years < 8:
		return 1.02
	default:
		return 1.00
	}
}
