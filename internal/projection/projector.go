package projection

import (
	"time"

	"career-predictor/internal/resumeparse"
)

// Projector computes predictions. Now resolves open-ended experience dates
// and defaults to time.Now.
type Projector struct {
	Now func() time.Time
}

func NewProjector(now func() time.Time) *Projector {
	if now == nil {
		now = time.Now
	}
	return &Projector{Now: now}
}

func (p *Projector) year() int {
	if p == nil || p.Now == nil {
		return time.Now().Year()
	}
	return p.Now().Year()
}

// Project derives the trajectory for rec. The result is a pure function of
// its inputs and the projector's current year.
func (p *Projector) Project(rec resumeparse.Record, role Role, t Timeframe, extra Enrichment) Prediction {
	rec = rec.Normalize()
	profile := role.Profile()
	t, err := ParseTimeframe(t.Days())
	if err != nil {
		t = DefaultTimeframe
	}

	have := rec.FlattenSkills()
	years := ExperienceYears(rec.Experience, p.year())
	validProjects := len(resumeparse.ValidProjects(rec.Projects))

	progression := projectSkills(have, profile, t)
	missing := missingSkills(profile.Skills, have)
	projects := buildProjects(profile, progression, missing, t)
	salary := estimateSalary(profile, years, len(have), t, extra)

	before := readinessBase(len(have), years, validProjects, len(rec.Education))
	after := readinessScore(len(have), years, validProjects, len(rec.Education), t)

	return Prediction{
		TargetRole:       profile.Name,
		TimeframeDays:    t.Days(),
		SkillProgression: progression,
		Projects:         projects,
		Achievements:     buildAchievements(profile, progression, projects, salary, t),
		Roadmap:          buildRoadmap(profile, progression, projects, t),
		Salary:           salary,
		JobRoleReadiness: JobRoleReadiness{
			PredictedRole:  profile.Name,
			Confidence:     readinessConfidence(rec.Confidence.Overall),
			Requirements:   cloneStrings(profile.Requirements),
			ReadinessScore: after,
		},
		Comparison: buildComparison(have, progression, validProjects, validProjects+len(projects), before, after),
	}
}
