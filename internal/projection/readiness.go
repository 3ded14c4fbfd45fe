package projection

import "math"

func capInt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

// readinessBase scores the resume without any horizon bonus.
func readinessBase(skills int, years float64, projects, education int) int {
	score := capInt(3*skills, 30) +
		int(math.Min(math.Floor(8*years), 25)) +
		capInt(5*projects, 15) +
		capInt(5*education, 10)
	return clampScore(score)
}

func readinessScore(skills int, years float64, projects, education int, t Timeframe) int {
	return clampScore(readinessBase(skills, years, projects, education) + t.table().readinessBonus)
}

func clampScore(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// readinessConfidence boosts the extraction confidence by a fifth, capped at 1.
func readinessConfidence(overall float64) float64 {
	return round2(math.Min(1, math.Max(0, overall*1.2)))
}
