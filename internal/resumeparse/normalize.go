package resumeparse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"career-predictor/internal/shared/util"
)

var (
	reAnySpace    = regexp.MustCompile(`[\s\p{Zs}]+`)
	reInlineSpace = regexp.MustCompile(`[\t\f\v \p{Zs}]+`)
)

// NormalizeText applies NFKC, full case folding and whitespace collapsing.
func NormalizeText(text string) string {
	s := norm.NFKC.String(text)
	s = cases.Fold().String(s)
	s = reAnySpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseID derives the stable identifier of a resume text.
func ParseID(text string) string {
	return "parse_" + util.Fingerprint(NormalizeText(text))[:24]
}

// splitLines prepares text for the section scanner. Blank lines are dropped.
func splitLines(text string) []string {
	s := norm.NFKC.String(text)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(reInlineSpace.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

var reNumberedBullet = regexp.MustCompile(`^\(?\d{1,2}[.)]\s+`)

const bulletRunes = "•-*–—·▪►◦○●■□✓✔➢➤>"

func isBullet(line string) bool {
	if line == "" {
		return false
	}
	if reNumberedBullet.MatchString(line) {
		return true
	}
	runes := []rune(line)
	if !strings.ContainsRune(bulletRunes, runes[0]) {
		return false
	}
	if !strings.ContainsRune("-*–—>", runes[0]) {
		return true
	}
	// dashes only count when followed by a space, so "-2020" stays text
	return len(runes) == 1 || runes[1] == ' ' || strings.ContainsRune(bulletRunes, runes[1])
}

func stripBullet(line string) string {
	if reNumberedBullet.MatchString(line) {
		return strings.TrimSpace(reNumberedBullet.ReplaceAllString(line, ""))
	}
	return strings.TrimSpace(strings.TrimLeft(line, bulletRunes+" "))
}

// trimPunct removes separator noise around a fragment.
func trimPunct(s string) string {
	return strings.Trim(s, " ,;:|-–—()[]")
}

func dedupeKeep(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
