package resumeparse

import (
	"regexp"
	"strings"
)

const (
	monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`
	datePattern  = `(?:` + monthPattern + `\s*,?\s*\d{4}|\d{1,2}/\d{4}|\d{4})`
	endPattern   = `(?:` + datePattern + `|present|current|now|ongoing|till\s+date|to\s+date)`

	maxRoleWords = 8
)

var (
	reDateRange = regexp.MustCompile(`(?i)\(?\b(` + datePattern + `)\s*(?:-|–|—|to|until)\s*(` + endPattern + `)\b\)?`)
	reYear      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	reRoleAt    = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|@)\s+(.+)$`)
	roleSeps    = []string{" | ", " – ", " — ", " - ", ", "}
)

// cutDateRange removes the first date range from line and returns its parts.
func cutDateRange(line string) (start, end, rest string, ok bool) {
	loc := reDateRange.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", line, false
	}
	start = reInlineSpace.ReplaceAllString(line[loc[2]:loc[3]], " ")
	end = normalizeEndDate(line[loc[4]:loc[5]])
	rest = trimPunct(strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:]))
	return start, end, rest, true
}

func normalizeEndDate(s string) string {
	s = reInlineSpace.ReplaceAllString(strings.TrimSpace(s), " ")
	switch strings.ToLower(s) {
	case "present", "now", "ongoing", "till date", "to date":
		return "Present"
	case "current":
		return "Current"
	}
	return s
}

// splitRoleLine splits an entry header into job title and company.
func splitRoleLine(s string) (title, company string, ok bool) {
	s = trimPunct(s)
	if s == "" {
		return "", "", false
	}
	if m := reRoleAt.FindStringSubmatch(s); m != nil && shortPhrase(m[1]) && shortPhrase(m[2]) {
		return trimPunct(m[1]), trimPunct(m[2]), true
	}
	for _, sep := range roleSeps {
		parts := strings.Split(s, sep)
		if len(parts) < 2 {
			continue
		}
		title, company = trimPunct(parts[0]), trimPunct(parts[1])
		if title != "" && company != "" && shortPhrase(title) && shortPhrase(company) {
			return title, company, true
		}
	}
	return s, "", false
}

func shortPhrase(s string) bool {
	n := len(strings.Fields(s))
	return n > 0 && n <= maxRoleWords
}

func extractExperience(doc document) []Experience {
	entries := make([]Experience, 0)
	current := -1
	open := func(e Experience) {
		e.Responsibilities = make([]string, 0)
		entries = append(entries, e)
		current = len(entries) - 1
	}

	for _, raw := range doc.lines(sectionExperience) {
		bullet := isBullet(raw)
		line := raw
		if bullet {
			line = stripBullet(raw)
		}
		if line == "" {
			continue
		}
		start, end, rest, dated := cutDateRange(line)

		if bullet && !dated {
			if current >= 0 {
				entries[current].Responsibilities = append(entries[current].Responsibilities, line)
			}
			continue
		}

		if dated && rest == "" {
			// a dates-only line completes the entry it follows
			if current >= 0 && entries[current].StartDate == "" {
				entries[current].StartDate, entries[current].EndDate = start, end
				continue
			}
			open(Experience{StartDate: start, EndDate: end})
			continue
		}

		title, company, split := splitRoleLine(rest)
		switch {
		case dated || split:
			open(Experience{JobTitle: title, CompanyName: company, StartDate: start, EndDate: end})
		case current < 0:
			open(Experience{JobTitle: line})
		case entries[current].CompanyName == "" && len(entries[current].Responsibilities) == 0:
			entries[current].CompanyName = line
		default:
			entries[current].Responsibilities = append(entries[current].Responsibilities, line)
		}
	}
	return entries
}
