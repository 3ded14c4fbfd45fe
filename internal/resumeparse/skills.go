package resumeparse

import (
	"regexp"
	"strings"
)

const (
	maxSkillLen      = 40
	maxSkillWords    = 5
	maxCategoryLabel = 30
)

var (
	reSkillSep = regexp.MustCompile(`\s*[,;|•·]\s*|\s+and\s+|\s+&\s+`)
	reParen    = regexp.MustCompile(`\s*\([^)]*\)`)
)

type skillSet struct {
	byCategory map[string][]string
	seen       map[string]bool
}

func newSkillSet() *skillSet {
	return &skillSet{byCategory: make(map[string][]string), seen: make(map[string]bool)}
}

func (s *skillSet) add(category, raw string) {
	name := strings.TrimSpace(reParen.ReplaceAllString(raw, ""))
	name = strings.TrimRight(trimPunct(name), ".")
	if name == "" || len([]rune(name)) > maxSkillLen || len(strings.Fields(name)) > maxSkillWords {
		return
	}
	name = CanonicalSkill(name)
	key := strings.ToLower(name)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	if category == "" {
		category = SkillCategory(name)
	}
	s.byCategory[category] = append(s.byCategory[category], name)
}

func extractSkills(doc document) map[string][]string {
	set := newSkillSet()
	for _, line := range doc.lines(sectionSkills) {
		line = stripBullet(line)
		category := ""
		if label, rest, ok := splitSkillLabel(line); ok {
			category, line = label, rest
		}
		for _, item := range reSkillSep.Split(line, -1) {
			set.add(category, item)
		}
	}
	if len(set.byCategory) == 0 {
		scanSkills(set, doc.all)
	}
	return set.byCategory
}

// splitSkillLabel recognises "Languages: Go, Python" style lines.
func splitSkillLabel(line string) (string, string, bool) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", line, false
	}
	label = strings.TrimSpace(label)
	if label == "" || len([]rune(label)) > maxCategoryLabel || strings.Contains(label, ",") {
		return "", line, false
	}
	return label, strings.TrimSpace(rest), true
}

func scanSkills(set *skillSet, lines []string) {
	text := strings.Join(lines, "\n")
	for _, scan := range catalogScans {
		if scan.re.MatchString(text) {
			set.add(scan.entry.category, scan.entry.name)
		}
	}
}
