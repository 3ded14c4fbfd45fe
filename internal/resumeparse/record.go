// Package resumeparse turns free-form resume text into a structured Record.
//
// Parsing is a pure function of its input: it never consults the clock,
// randomness or any external service, and it never fails. Text that cannot be
// understood simply yields empty collections and a low confidence score.
package resumeparse

import (
	"sort"
	"strings"
)

// Record is the structured result of parsing resume text.
type Record struct {
	ParseID        string              `json:"parseId"`
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Summary        string              `json:"summary"`
	Skills         map[string][]string `json:"skills"`
	Experience     []Experience        `json:"experience"`
	Education      []Education         `json:"education"`
	Projects       []string            `json:"projects"`
	Certifications []string            `json:"certifications"`
	Achievements   []string            `json:"achievements"`
	Confidence     Confidence          `json:"confidence"`
}

type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    Links  `json:"links"`
}

type Links struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	JobTitle         string   `json:"jobTitle"`
	CompanyName      string   `json:"companyName"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	CGPA        string `json:"cgpa,omitempty"`
}

// Confidence holds per-section coverage scores in [0,1].
type Confidence struct {
	PersonalInfo   float64 `json:"personalInfo"`
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Projects       float64 `json:"projects"`
	Certifications float64 `json:"certifications"`
	Achievements   float64 `json:"achievements"`
	Overall        float64 `json:"overall"`
}

// FlattenSkills returns every skill once, walking categories in sorted order
// and keeping the order of skills inside each category.
func (r Record) FlattenSkills() []string {
	categories := make([]string, 0, len(r.Skills))
	for category := range r.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, category := range categories {
		for _, skill := range r.Skills[category] {
			key := strings.ToLower(skill)
			if skill == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out
}

// Normalize fills nil collections so a Record decoded from outside JSON has
// the same shape as one produced by Parse.
func (r Record) Normalize() Record {
	if r.Skills == nil {
		r.Skills = map[string][]string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Responsibilities == nil {
			r.Experience[i].Responsibilities = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
	return r
}
