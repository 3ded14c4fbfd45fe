package resumeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutDateRange(t *testing.T) {
	cases := []struct {
		line, start, end, rest string
	}{
		{line: "Engineer at Acme (Mar 2019 – Jun 2021)", start: "Mar 2019", end: "Jun 2021", rest: "Engineer at Acme"},
		{line: "01/2020 to Present", start: "01/2020", end: "Present"},
		{line: "Analyst, Initech 2018 - current", start: "2018", end: "Current", rest: "Analyst, Initech"},
		{line: "September 2022 - till date", start: "September 2022", end: "Present"},
	}
	for _, tc := range cases {
		start, end, rest, ok := cutDateRange(tc.line)
		require.True(t, ok, tc.line)
		assert.Equal(t, tc.start, start, tc.line)
		assert.Equal(t, tc.end, end, tc.line)
		assert.Equal(t, tc.rest, rest, tc.line)
	}

	_, _, _, ok := cutDateRange("Led a team of 5")
	assert.False(t, ok)
}

func TestExtractExperienceBareLines(t *testing.T) {
	doc := splitSections([]string{
		"Experience",
		"Data Analyst 2019 - 2021",
		"Initech",
		"Built dashboards",
		"- Automated reports",
	})
	got := extractExperience(doc)

	require.Len(t, got, 1)
	assert.Equal(t, "Data Analyst", got[0].JobTitle)
	assert.Equal(t, "Initech", got[0].CompanyName)
	assert.Equal(t, []string{"Built dashboards", "Automated reports"}, got[0].Responsibilities)
}

func TestExtractEducationVariants(t *testing.T) {
	doc := splitSections([]string{
		"Education",
		"Bachelor of Science in Computer Science Stanford University 2018",
		"MBA from Wharton 2022",
		"12th, Delhi Public School, 2014, 92.4%",
	})
	got := extractEducation(doc)

	require.Len(t, got, 3)
	assert.Equal(t, Education{Degree: "Bachelor of Science in Computer Science", Institution: "Stanford University", Year: "2018"}, got[0])
	assert.Equal(t, Education{Degree: "MBA", Institution: "Wharton", Year: "2022"}, got[1])
	assert.Equal(t, Education{Degree: "12th", Institution: "Delhi Public School", Year: "2014", CGPA: "92.4%"}, got[2])
}

func TestSkillLabelsAndAliases(t *testing.T) {
	doc := splitSections([]string{
		"Skills",
		"Frontend: reactjs, Vue.js, react",
		"• golang (advanced); k8s | Figma",
		"A very long sentence about my love for building reliable distributed systems",
	})
	got := extractSkills(doc)

	assert.Equal(t, []string{"React", "Vue"}, got["Frontend"])
	assert.Equal(t, []string{"Go"}, got["Languages"])
	assert.Equal(t, []string{"Kubernetes"}, got["Cloud & DevOps"])
	assert.Equal(t, []string{"Figma"}, got["Design"])
	assert.NotContains(t, got, categoryOther)
}

func TestConfidenceIsMonotonic(t *testing.T) {
	base := Record{Skills: map[string][]string{}}
	prev := scoreConfidence(base).Overall

	steps := []func(*Record){
		func(r *Record) { r.PersonalInfo.Email = "a@b.co" },
		func(r *Record) { r.Skills["Languages"] = []string{"Go", "Python"} },
		func(r *Record) { r.Experience = append(r.Experience, Experience{JobTitle: "Engineer"}) },
		func(r *Record) { r.Education = append(r.Education, Education{Degree: "BS"}) },
		func(r *Record) { r.Projects = append(r.Projects, "Tracker: app") },
		func(r *Record) { r.Certifications = append(r.Certifications, "CKA") },
		func(r *Record) { r.Achievements = append(r.Achievements, "Hackathon winner") },
	}
	for i, step := range steps {
		step(&base)
		next := scoreConfidence(base).Overall
		assert.GreaterOrEqual(t, next, prev, "step %d", i)
		assert.LessOrEqual(t, next, 1.0)
		prev = next
	}
}

func TestFlattenSkillsOrder(t *testing.T) {
	rec := Record{Skills: map[string][]string{
		"Frontend":  {"React", "CSS"},
		"Backend":   {"Node.js", "react"},
		"Languages": {"Go"},
	}}
	assert.Equal(t, []string{"Node.js", "react", "CSS", "Go"}, rec.FlattenSkills())
}
