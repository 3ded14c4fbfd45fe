package resumeparse

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	rePhone    = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{8,20}\d`)
	reLinkedIn = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/[^\s,|;)]+`)
	reGitHub   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[^\s,|;)]+`)
	reURL      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s,|;)]+`)
	reBareHost = regexp.MustCompile(`(?i)^[a-z0-9\-]+(?:\.[a-z0-9\-]+)*\.(?:com|org|net|io|dev|in|co|app|me|ai)(?:/\S*)?$`)
	reLocation = regexp.MustCompile(`^[\p{L}][\p{L} .'\-]*,\s*[\p{L}][\p{L} .'\-]*(?:,\s*[\p{L}][\p{L} .'\-]*)?$`)
	reNameWord = regexp.MustCompile(`^\p{Lu}[\p{L}'.\-]*$|^\p{L}[\p{Ll}'.\-]*$`)
)

var contactSeparators = regexp.MustCompile(`\s*[|•·]\s*`)

func extractPersonalInfo(doc document) PersonalInfo {
	contact := doc.lines(sectionContact)
	scope := contact
	if len(scope) == 0 {
		scope = doc.all
	}

	var info PersonalInfo
	info.Email = firstMatch(reEmail, doc.all)
	info.Phone = findPhone(contact)
	if info.Phone == "" {
		info.Phone = findPhone(doc.all)
	}
	info.Links.LinkedIn = firstMatch(reLinkedIn, doc.all)
	info.Links.GitHub = firstMatch(reGitHub, doc.all)
	info.Links.Website = findWebsite(doc.all)

	candidates := scope
	if len(contact) == 0 && len(candidates) > 5 {
		candidates = candidates[:5]
	}
	info.Name = findName(candidates)
	info.Location = findLocation(contact, info.Name)
	return info
}

func firstMatch(re *regexp.Regexp, lines []string) string {
	for _, line := range lines {
		if m := re.FindString(line); m != "" {
			return strings.TrimRight(m, ".")
		}
	}
	return ""
}

func findPhone(lines []string) string {
	for _, line := range lines {
		if reDateRange.MatchString(line) {
			continue
		}
		for _, m := range rePhone.FindAllString(line, -1) {
			m = strings.TrimSpace(m)
			if isPhoneLike(m) {
				return m
			}
		}
	}
	return ""
}

// isPhoneLike reports whether s consists of phone punctuation around 10-15 digits.
func isPhoneLike(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("+()-. ", r):
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

func findWebsite(lines []string) string {
	for _, line := range lines {
		for _, m := range reURL.FindAllString(line, -1) {
			lower := strings.ToLower(m)
			if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
				continue
			}
			return strings.TrimRight(m, ".")
		}
	}
	return ""
}

func isContactToken(s string) bool {
	return reEmail.MatchString(s) || reURL.MatchString(s) || reLinkedIn.MatchString(s) ||
		reGitHub.MatchString(s) || isPhoneLike(s)
}

func contactParts(lines []string) []string {
	var parts []string
	for _, line := range lines {
		for _, part := range contactSeparators.Split(line, -1) {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
	}
	return parts
}

func findName(lines []string) string {
	for _, part := range contactParts(lines) {
		if looksLikeName(part) {
			return part
		}
	}
	return ""
}

func looksLikeName(s string) bool {
	if strings.ContainsAny(s, "@:/,") {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
	}
	if _, _, ok := matchHeader(s); ok {
		return false
	}
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !reNameWord.MatchString(w) {
			return false
		}
	}
	return true
}

func findLocation(contact []string, name string) string {
	for _, part := range contactParts(contact) {
		if part == name || isContactToken(part) {
			continue
		}
		if reLocation.MatchString(part) {
			return part
		}
	}
	return ""
}
