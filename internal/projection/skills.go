package projection

import (
	"fmt"
	"math"
	"strings"
)

// skillPresent reports whether skill matches any of have, comparing
// case-insensitively as a substring in either direction.
func skillPresent(skill string, have []string) bool {
	s := strings.ToLower(skill)
	for _, h := range have {
		h = strings.ToLower(h)
		if h == "" {
			continue
		}
		if strings.Contains(h, s) || strings.Contains(s, h) {
			return true
		}
	}
	return false
}

// missingSkills returns the role skills not covered by the resume, in role order.
func missingSkills(roleSkills, have []string) []string {
	out := make([]string, 0, len(roleSkills))
	for _, skill := range roleSkills {
		if !skillPresent(skill, have) {
			out = append(out, skill)
		}
	}
	return out
}

func existingCap(t Timeframe) int {
	n := int(math.Ceil(float64(t.Days()) / 10))
	if n > 10 {
		n = 10
	}
	return n
}

func newCap(t Timeframe) int {
	n := t.Days() / 15
	if n > 6 {
		n = 6
	}
	return n
}

// marketRelevance scores role-canonical skills by their position in the
// role list and everything else from the seed.
func marketRelevance(skill string, index int, roleSkills []string) int {
	for pos, rs := range roleSkills {
		if strings.EqualFold(rs, skill) {
			score := 10 - pos/2
			if score < 7 {
				score = 7
			}
			return score
		}
	}
	return 5 + int(math.Floor(3*skillSeed(skill, index)))
}

func priorityFor(relevance int) Priority {
	switch {
	case relevance >= 8:
		return PriorityHigh
	case relevance >= 6:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// projectSkills builds the ordered progression: existing skills first, then
// new skills drawn from the role's canonical list.
func projectSkills(have []string, profile RoleProfile, t Timeframe) SkillProgression {
	h := t.table()
	out := SkillProgression{}

	existing := have
	if limit := existingCap(t); len(existing) > limit {
		existing = existing[:limit]
	}
	for i, skill := range existing {
		current := existingLevel(skill, i)
		future := int(math.Round(float64(current) * (1 + h.existingGrowth)))
		if future > 95 {
			future = 95
		}
		relevance := marketRelevance(skill, i, profile.Skills)
		out = append(out, SkillProgress{
			Name:            skill,
			Current:         current,
			Future:          future,
			Improvement:     future - current,
			MarketRelevance: relevance,
			Priority:        priorityFor(relevance),
			Reasoning: fmt.Sprintf("Already on your resume; %d days of focused practice as a %s deepens it from %d to %d.",
				t.Days(), profile.Name, current, future),
		})
	}

	missing := missingSkills(profile.Skills, have)
	if limit := newCap(t); len(missing) > limit {
		missing = missing[:limit]
	}
	for j, skill := range missing {
		index := len(existing) + j
		level := newSkillLevel(skill, index)
		future := int(math.Round(float64(level) * (1 + h.newGrowth)))
		if future > h.maxNew {
			future = h.maxNew
		}
		relevance := marketRelevance(skill, index, profile.Skills)
		out = append(out, SkillProgress{
			Name:            skill,
			Current:         0,
			Future:          future,
			Improvement:     future,
			MarketRelevance: relevance,
			Priority:        priorityFor(relevance),
			Reasoning: fmt.Sprintf("Core %s skill missing from your resume; learning it in %d days reaches a working level of %d.",
				profile.Name, t.Days(), future),
			IsNew: true,
		})
	}
	return out
}
