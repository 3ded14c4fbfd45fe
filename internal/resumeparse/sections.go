package resumeparse

import "strings"

type section int

const (
	sectionContact section = iota
	sectionSummary
	sectionSkills
	sectionExperience
	sectionEducation
	sectionProjects
	sectionCertifications
	sectionAchievements
)

var sectionAliases = []struct {
	section section
	aliases []string
}{
	{sectionSkills, []string{
		"technical skills", "core skills", "key skills", "skill set", "skillset", "skills & tools",
		"skills and tools", "skills", "technologies", "tech stack", "core competencies", "competencies", "tools",
	}},
	{sectionExperience, []string{
		"work experience", "professional experience", "employment history", "work history",
		"career history", "experience", "employment", "internships", "internship",
	}},
	{sectionEducation, []string{
		"educational qualifications", "academic background", "education", "academics", "qualifications",
	}},
	{sectionProjects, []string{
		"personal projects", "academic projects", "key projects", "side projects", "projects",
	}},
	{sectionCertifications, []string{
		"licenses & certifications", "licenses and certifications", "certifications", "certificates", "licenses", "courses",
	}},
	{sectionAchievements, []string{
		"awards & achievements", "awards and achievements", "achievements", "awards", "honors", "honours", "accomplishments",
	}},
	{sectionSummary, []string{
		"professional summary", "career objective", "summary", "objective", "profile", "about me",
	}},
}

// headerSeparators may follow a header alias on the same line.
var headerSeparators = []string{":", "-", "–", "—", "|"}

// matchHeader reports whether line opens a section. Inline content after the
// separator ("Skills: React, Go") is returned as rest.
func matchHeader(line string) (section, string, bool) {
	trimmed := strings.TrimSpace(strings.Trim(line, "#*_= "))
	if trimmed == "" {
		return sectionContact, "", false
	}
	for _, group := range sectionAliases {
		for _, alias := range group.aliases {
			if len(trimmed) < len(alias) || !strings.EqualFold(trimmed[:len(alias)], alias) {
				continue
			}
			rest := strings.TrimSpace(trimmed[len(alias):])
			rest = strings.TrimSpace(strings.TrimLeft(rest, "*_ "))
			if rest == "" {
				return group.section, "", true
			}
			for _, sep := range headerSeparators {
				if strings.HasPrefix(rest, sep) {
					return group.section, strings.TrimSpace(rest[len(sep):]), true
				}
			}
		}
	}
	return sectionContact, "", false
}

// document is text split into its sections. Lines before the first header
// belong to the contact block.
type document struct {
	all    []string
	bodies map[section][]string
	found  map[section]bool
}

func splitSections(lines []string) document {
	doc := document{
		all:    lines,
		bodies: make(map[section][]string),
		found:  make(map[section]bool),
	}
	current := sectionContact
	for _, line := range lines {
		if sec, rest, ok := matchHeader(line); ok {
			current = sec
			doc.found[sec] = true
			if rest != "" {
				doc.bodies[sec] = append(doc.bodies[sec], rest)
			}
			continue
		}
		doc.bodies[current] = append(doc.bodies[current], line)
	}
	return doc
}

func (d document) lines(sec section) []string {
	return d.bodies[sec]
}
