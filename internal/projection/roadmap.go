package projection

import "fmt"

func buildRoadmap(profile RoleProfile, progression SkillProgression, projects []Project, t Timeframe) map[string]Phase {
	phases := t.Phases()
	keys := progression.Names()
	chunk := 0
	if len(keys) > 0 {
		chunk = (len(keys) + len(phases) - 1) / len(phases)
	}

	roadmap := make(map[string]Phase, len(phases))
	for i, key := range phases {
		focus := focusChunk(keys, i, chunk)
		project := "your first portfolio project"
		if i < len(projects) {
			project = projects[i].Title
		}
		roadmap[key] = Phase{
			Goals:             phaseGoals(i, profile, focus, project),
			WeeklyMissions:    phaseMissions(i, focus, project),
			MonthlyMilestones: phaseMilestones(i, profile, project),
			FocusAreas:        focus,
		}
	}
	return roadmap
}

// focusChunk returns the i-th chunk of keys, or the first three keys when the
// chunk is empty.
func focusChunk(keys []string, i, chunk int) []string {
	start, end := i*chunk, (i+1)*chunk
	if end > len(keys) {
		end = len(keys)
	}
	if chunk > 0 && start < end {
		return cloneStrings(keys[start:end])
	}
	if len(keys) > 3 {
		return cloneStrings(keys[:3])
	}
	return cloneStrings(keys)
}

func phaseGoals(i int, profile RoleProfile, focus []string, project string) []string {
	skills := joinOr(focus, "core "+profile.Name+" fundamentals")
	switch i {
	case 0:
		return []string{
			"Build a daily practice habit around " + skills,
			"Start " + project,
		}
	case 1:
		return []string{
			"Apply " + skills + " in a larger build",
			"Complete " + project + " with tests and documentation",
		}
	default:
		return []string{
			"Polish " + project + " to production quality",
			"Begin applying for " + profile.Name + " roles",
		}
	}
}

func phaseMissions(i int, focus []string, project string) []string {
	first := "review fundamentals"
	if len(focus) > 0 {
		first = "go deep on " + focus[0]
	}
	base := i * 4
	return []string{
		fmt.Sprintf("Week %d: %s", base+1, first),
		fmt.Sprintf("Week %d: ship a working slice of %s", base+2, project),
		fmt.Sprintf("Week %d: refactor, test and write up what you learned", base+3),
		fmt.Sprintf("Week %d: get feedback from a peer or mentor", base+4),
	}
}

func phaseMilestones(i int, profile RoleProfile, project string) []string {
	switch i {
	case 0:
		return []string{project + " published with a README", "Resume updated with new skills"}
	case 1:
		return []string{project + " deployed and demoable", "Five " + profile.Name + " applications sent"}
	default:
		return []string{project + " case study written", "Mock interviews completed for " + profile.Name}
	}
}
