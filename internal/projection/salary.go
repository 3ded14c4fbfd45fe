package projection

import (
	"fmt"
	"math"
)

const currencyINR = "INR"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// currentSalary estimates today's salary in LPA from role, experience and
// breadth of skills.
func currentSalary(profile RoleProfile, years float64, skillCount int) float64 {
	y := math.Min(years, 10)
	s := math.Min(float64(skillCount), 20)
	return round2(profile.BaseSalary * (1 + y*0.6) * (1 + s*0.03))
}

func estimateSalary(profile RoleProfile, years float64, skillCount int, t Timeframe, extra Enrichment) Salary {
	current := currentSalary(profile, years, skillCount)
	growth := t.table().salaryGrowth
	factor := experienceFactor(years)
	future := current * (1 + growth) * profile.Multiplier * factor

	lo, hi := round2(future*0.85), round2(future*1.15)
	factors := []string{
		fmt.Sprintf("%.1f years of experience", years),
		fmt.Sprintf("%d skills on record", skillCount),
		fmt.Sprintf("%s market multiplier %.2f", profile.Name, profile.Multiplier),
		fmt.Sprintf("%d-day growth rate of %.0f%%", t.Days(), growth*100),
	}
	factors = append(factors, extra.factors()...)

	reasoning := fmt.Sprintf(
		"Starting from an estimated %.2f LPA, %d days of targeted growth toward %s with an experience factor of %.2f projects about %.2f LPA.",
		current, t.Days(), profile.Name, factor, round2(future)) + extra.reasoning()

	return Salary{
		EstimateRangeText: fmt.Sprintf("₹%.1f - %.1f LPA", lo, hi),
		Range:             SalaryRange{Min: lo, Max: hi},
		Current:           current,
		Future:            round2(future),
		Currency:          currencyINR,
		Factors:           factors,
		Reasoning:         reasoning,
	}
}
