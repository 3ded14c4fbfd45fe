package resumeparse

import (
	"strings"
)

const maxProjectTitle = 100

// ValidProjectTitle reports whether title can name a real project. Contact
// details and summary text that leak into a projects section are rejected.
func ValidProjectTitle(title string) bool {
	t := strings.TrimSpace(title)
	if t == "" || len([]rune(t)) > maxProjectTitle {
		return false
	}
	if reEmail.MatchString(t) || reURL.MatchString(t) || reBareHost.MatchString(t) ||
		reLinkedIn.MatchString(t) || reGitHub.MatchString(t) || isPhoneLike(t) {
		return false
	}
	lower := strings.ToLower(t)
	return !strings.Contains(lower, "summary") && !strings.Contains(lower, "objective")
}

// ProjectTitle returns the part of a project entry before its first colon.
func ProjectTitle(project string) string {
	title, _, _ := strings.Cut(project, ":")
	return strings.TrimSpace(title)
}

// ValidProjects keeps the entries whose title passes ValidProjectTitle.
func ValidProjects(projects []string) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if ValidProjectTitle(ProjectTitle(p)) {
			out = append(out, p)
		}
	}
	return out
}

type projectDraft struct {
	title       string
	description []string
}

// splitProjectLine separates "Title: description" or "Title - description".
// A colon that starts a URL scheme does not split.
func splitProjectLine(line string) (string, string) {
	for i := 0; i < len(line); i++ {
		if line[i] == ':' && !strings.HasPrefix(line[i+1:], "//") {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
		}
	}
	for _, sep := range []string{" - ", " – ", " — ", " | "} {
		if title, desc, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(title), strings.TrimSpace(desc)
		}
	}
	return strings.TrimSpace(line), ""
}

func extractProjects(doc document) []string {
	var drafts []projectDraft
	for _, raw := range doc.lines(sectionProjects) {
		if isBullet(raw) && len(drafts) > 0 {
			if text := stripBullet(raw); text != "" {
				last := &drafts[len(drafts)-1]
				last.description = append(last.description, text)
			}
			continue
		}
		title, desc := splitProjectLine(stripBullet(raw))
		d := projectDraft{title: title}
		if desc != "" {
			d.description = append(d.description, desc)
		}
		drafts = append(drafts, d)
	}

	out := make([]string, 0, len(drafts))
	for _, d := range drafts {
		if !ValidProjectTitle(d.title) {
			continue
		}
		entry := d.title
		if len(d.description) > 0 {
			entry += ": " + strings.Join(d.description, " ")
		}
		out = append(out, entry)
	}
	return dedupeKeep(out)
}

func extractList(doc document, sec section) []string {
	out := make([]string, 0)
	for _, line := range doc.lines(sec) {
		if text := stripBullet(line); text != "" {
			out = append(out, text)
		}
	}
	return dedupeKeep(out)
}
