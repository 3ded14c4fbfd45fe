package projection

import (
	"fmt"
	"strings"
)

func buildAchievements(profile RoleProfile, progression SkillProgression, projects []Project, salary Salary, t Timeframe) []Achievement {
	days := t.Days()

	focus := progression.Names()
	if len(focus) > 3 {
		focus = focus[:3]
	}
	mastery := Achievement{
		Title:       "Technical skill mastery",
		Description: fmt.Sprintf("Reach working proficiency in %s.", joinOr(focus, "the core "+profile.Name+" stack")),
		Timeline:    fmt.Sprintf("Day %d", days/2),
		Difficulty:  masteryDifficulty(t),
		Category:    "Technical",
	}

	portfolio := Achievement{
		Title:       "Portfolio",
		Description: fmt.Sprintf("Ship %d portfolio projects with public code and write-ups.", len(projects)),
		Timeline:    fmt.Sprintf("Day %d", days),
		Difficulty:  portfolioDifficulty(len(projects)),
		Category:    "Portfolio",
	}

	delta := 0.0
	if salary.Current > 0 {
		delta = (salary.Future - salary.Current) / salary.Current
	}
	career := Achievement{
		Title: "Career salary growth",
		Description: fmt.Sprintf("Interview for %s roles in the %s band, about %.0f%% above your current estimate.",
			profile.Name, salary.EstimateRangeText, delta*100),
		Timeline:   fmt.Sprintf("Day %d", days),
		Difficulty: salaryDifficulty(delta),
		Category:   "Career",
	}
	return []Achievement{mastery, portfolio, career}
}

func masteryDifficulty(t Timeframe) Difficulty {
	switch t {
	case Days30:
		return Hard
	case Days60:
		return Medium
	default:
		return Easy
	}
}

func portfolioDifficulty(projects int) Difficulty {
	switch {
	case projects <= 2:
		return Easy
	case projects == 3:
		return Medium
	default:
		return Hard
	}
}

func salaryDifficulty(delta float64) Difficulty {
	switch {
	case delta < 0.15:
		return Easy
	case delta < 0.30:
		return Medium
	default:
		return Hard
	}
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
