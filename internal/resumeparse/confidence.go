package resumeparse

import "math"

var overallWeights = struct {
	personal, skills, experience, education, projects, certifications, achievements float64
}{0.15, 0.25, 0.25, 0.15, 0.15, 0.025, 0.025}

func ratio(n int, full float64) float64 {
	return math.Min(1, float64(n)/full)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func scoreConfidence(r Record) Confidence {
	var personal float64
	if r.PersonalInfo.Name != "" {
		personal += 0.3
	}
	if r.PersonalInfo.Email != "" {
		personal += 0.3
	}
	if r.PersonalInfo.Phone != "" {
		personal += 0.2
	}
	if links := r.PersonalInfo.Links; links.LinkedIn != "" || links.GitHub != "" || links.Website != "" {
		personal += 0.2
	}

	skillCount := 0
	for _, items := range r.Skills {
		skillCount += len(items)
	}

	c := Confidence{
		PersonalInfo:   round2(personal),
		Skills:         round2(ratio(skillCount, 8)),
		Experience:     round2(ratio(len(r.Experience), 2)),
		Education:      round2(ratio(len(r.Education), 1)),
		Projects:       round2(ratio(len(r.Projects), 2)),
		Certifications: round2(ratio(len(r.Certifications), 1)),
		Achievements:   round2(ratio(len(r.Achievements), 1)),
	}
	w := overallWeights
	overall := w.personal*personal +
		w.skills*ratio(skillCount, 8) +
		w.experience*ratio(len(r.Experience), 2) +
		w.education*ratio(len(r.Education), 1) +
		w.projects*ratio(len(r.Projects), 2) +
		w.certifications*ratio(len(r.Certifications), 1) +
		w.achievements*ratio(len(r.Achievements), 1)
	c.Overall = round2(math.Min(1, overall))
	return c
}
