package projection

import (
	"fmt"
	"strings"
)

var projectLevels = []Difficulty{Beginner, Intermediate, Advanced}

const techStackThreshold = 40

// buildProjects picks the role's first templates for the horizon and tailors
// each one to the projected skills.
func buildProjects(profile RoleProfile, progression SkillProgression, missing []string, t Timeframe) []Project {
	n := t.table().projects
	if n > len(profile.Templates) {
		n = len(profile.Templates)
	}

	var strong []string
	for _, s := range progression {
		if s.Future > techStackThreshold {
			strong = append(strong, s.Name)
		}
	}

	span := t.Days() / n
	out := make([]Project, 0, n)
	for i := 0; i < n; i++ {
		tpl := profile.Templates[i]
		stack := filterStack(tpl.TechStack, strong)
		difficulty := projectLevels[3*i/n]

		start := i*span + 1
		end := (i + 1) * span
		if i == n-1 {
			end = t.Days()
		}

		out = append(out, Project{
			Title:               tpl.Title,
			TechStack:           stack,
			Description:         tpl.Description,
			Impact:              tpl.Impact,
			Difficulty:          difficulty,
			Timeline:            fmt.Sprintf("Days %d-%d", start, end),
			WhatYouWillBuild:    cloneStrings(tpl.WhatYouWillBuild),
			WhyThisMatters:      tpl.WhyThisMatters,
			WhatRecruiterLearns: cloneStrings(tpl.WhatRecruiterLearns),
			ResumeImpact: fmt.Sprintf("Adds a %s %s project showing %s.",
				strings.ToLower(string(difficulty)), profile.Name, strings.Join(stack, ", ")),
			AddressesSkillGaps: gapsAddressed(stack, missing),
			LearningOutcomes:   cloneStrings(tpl.LearningOutcomes),
		})
	}
	return out
}

// filterStack keeps template technologies that the progression grows past
// the threshold. An empty result falls back to the whole template stack.
func filterStack(stack, strong []string) []string {
	out := make([]string, 0, len(stack))
	for _, tech := range stack {
		if skillPresent(tech, strong) {
			out = append(out, tech)
		}
	}
	if len(out) == 0 {
		return cloneStrings(stack)
	}
	return out
}

func gapsAddressed(stack, missing []string) []string {
	out := make([]string, 0)
	for _, tech := range stack {
		for _, m := range missing {
			if strings.EqualFold(tech, m) {
				out = append(out, tech)
				break
			}
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
