package resumeparse

import "strings"

// LowConfidence is the overall score under which a record is too sparse to
// trust; callers should ask for better input.
const LowConfidence = 0.3

// Parse extracts a Record from resume text. It never fails: unparseable input
// produces empty collections and an overall confidence near zero.
func Parse(text string) Record {
	doc := splitSections(splitLines(text))

	rec := Record{
		ParseID:        ParseID(text),
		PersonalInfo:   extractPersonalInfo(doc),
		Summary:        strings.Join(doc.lines(sectionSummary), " "),
		Skills:         extractSkills(doc),
		Experience:     extractExperience(doc),
		Education:      extractEducation(doc),
		Projects:       extractProjects(doc),
		Certifications: extractList(doc, sectionCertifications),
		Achievements:   extractList(doc, sectionAchievements),
	}
	rec.Confidence = scoreConfidence(rec)
	return rec
}
