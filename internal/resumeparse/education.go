package resumeparse

import (
	"regexp"
	"strings"
)

var (
	reDegreeLong = regexp.MustCompile(`(?i)\b(?:b\.?\s?tech|b\.?\s?sc|b\.?\s?com|bca|bba|m\.?\s?tech|m\.?\s?sc|mca|mba|ph\.?\s?d|bachelor|master|diploma|high school|hsc|ssc|associate)\b|\b(?:10|12)th\b`)
	reDegreeShort = regexp.MustCompile(`(?:^|[\s(])(?:B\.E\.?|B\.S\.?|B\.A\.?|M\.E\.?|M\.S\.?|M\.A\.?|BE|BS|BA|ME|MS|MA)(?:[\s,.)]|$)`)
	reCGPA        = regexp.MustCompile(`(?i)\b(?:c?gpa|cpi|sgpa)\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?(?:\s*/\s*\d{1,2}(?:\.\d+)?)?)`)
	rePercent     = regexp.MustCompile(`\b(\d{2}(?:\.\d+)?)\s*%`)
	reEduSep      = regexp.MustCompile(`(?i)\s*[,|]\s*|\s+[-–—]\s+|\s+(?:at|from)\s+`)

	institutionWords = []string{
		"university", "college", "institute", "school", "academy", "iit", "nit", "iiit", "polytechnic", "vidyalaya",
	}
)

func isDegreeLine(line string) bool {
	return reDegreeLong.MatchString(line) || reDegreeShort.MatchString(line)
}

func hasInstitutionWord(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ",.()")
		for _, word := range institutionWords {
			if w == word {
				return true
			}
		}
	}
	return false
}

// scrubEducationLine removes years, date ranges and grades from line.
func scrubEducationLine(line string) (base, year, grade string) {
	if years := reYear.FindAllString(line, -1); len(years) > 0 {
		year = years[len(years)-1]
	}
	if m := reCGPA.FindStringSubmatch(line); m != nil {
		grade = strings.ReplaceAll(m[1], " ", "")
		line = strings.Replace(line, m[0], " ", 1)
	} else if m := rePercent.FindStringSubmatch(line); m != nil {
		grade = m[1] + "%"
		line = strings.Replace(line, m[0], " ", 1)
	}
	line = reDateRange.ReplaceAllString(line, " ")
	line = reYear.ReplaceAllString(line, " ")
	line = strings.ReplaceAll(line, "()", " ")
	base = strings.TrimSpace(reInlineSpace.ReplaceAllString(line, " "))
	return trimPunct(base), year, grade
}

// splitDegree separates the degree and institution parts of a scrubbed line.
func splitDegree(base string) (degree, institution string) {
	var parts []string
	for _, p := range reEduSep.Split(base, -1) {
		if p = trimPunct(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) >= 2 {
		if hasInstitutionWord(parts[0]) && !isDegreeLine(parts[0]) {
			return strings.Join(parts[1:], ", "), parts[0]
		}
		for i := 1; i < len(parts); i++ {
			if hasInstitutionWord(parts[i]) {
				return strings.Join(parts[:i], ", "), parts[i]
			}
		}
		return parts[0], parts[1]
	}

	tokens := strings.Fields(base)
	for k, tok := range tokens {
		if k == 0 || !hasInstitutionWord(tok) {
			continue
		}
		cut := k - 1
		if cut < 1 {
			cut = 1
		}
		return strings.Join(tokens[:cut], " "), strings.Join(tokens[cut:], " ")
	}
	switch {
	case len(tokens) == 0:
		return "", ""
	case len(tokens) <= 2:
		return tokens[0], strings.Join(tokens[1:], " ")
	default:
		return strings.Join(tokens[:2], " "), strings.Join(tokens[2:], " ")
	}
}

func extractEducation(doc document) []Education {
	entries := make([]Education, 0)
	current := -1
	for _, raw := range doc.lines(sectionEducation) {
		line := stripBullet(raw)
		if line == "" {
			continue
		}
		base, year, grade := scrubEducationLine(line)

		if isDegreeLine(line) {
			degree, institution := splitDegree(base)
			entries = append(entries, Education{Degree: degree, Institution: institution, Year: year, CGPA: grade})
			current = len(entries) - 1
			continue
		}
		if current < 0 {
			if hasInstitutionWord(base) {
				entries = append(entries, Education{Institution: base, Year: year, CGPA: grade})
				current = len(entries) - 1
			}
			continue
		}

		e := &entries[current]
		if e.Institution == "" && base != "" {
			e.Institution = base
		}
		if e.Year == "" {
			e.Year = year
		}
		if e.CGPA == "" {
			e.CGPA = grade
		}
	}
	return entries
}
