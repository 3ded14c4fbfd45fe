package projection

import "math"

func buildComparison(have []string, progression SkillProgression, projectsBefore, projectsAfter, readinessBefore, readinessAfter int) Comparison {
	current := SkillLevels{}
	for i, skill := range have {
		current = append(current, SkillLevel{Name: skill, Level: existingLevel(skill, i)})
	}

	future := SkillLevels{}
	seen := make(map[string]bool)
	for _, p := range progression {
		future = append(future, SkillLevel{Name: p.Name, Level: p.Future})
		seen[p.Name] = true
	}
	// skills beyond the progression cap keep their current level
	for _, l := range current {
		if !seen[l.Name] {
			future = append(future, l)
		}
	}

	return Comparison{
		Current: snapshot(current, projectsBefore, readinessBefore),
		Future:  snapshot(future, projectsAfter, readinessAfter),
	}
}

func snapshot(levels SkillLevels, projects, readiness int) Snapshot {
	depth := 0
	if len(levels) > 0 {
		sum := 0
		for _, l := range levels {
			sum += l.Level
		}
		depth = int(math.Round(float64(sum) / float64(len(levels))))
	}
	portfolio := clampScore(projects * 20)
	return Snapshot{
		SkillCount:        len(levels),
		ProjectCount:      projects,
		TechnicalDepth:    clampScore(depth),
		PortfolioStrength: portfolio,
		MarketReadiness:   clampScore(readiness),
		OverallScore:      clampScore(int(math.Round(0.4*float64(depth) + 0.3*float64(portfolio) + 0.3*float64(readiness)))),
		Skills:            levels,
	}
}
