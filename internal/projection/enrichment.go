package projection

import (
	"fmt"
	"sort"
	"strings"
)

// Enrichment is optional platform data about the candidate. It only adds
// context to the salary factors and reasoning.
type Enrichment struct {
	InterviewScores       map[string]float64 `json:"interviewScores,omitempty"`
	Strengths             []string           `json:"strengths,omitempty"`
	Weaknesses            []string           `json:"weaknesses,omitempty"`
	TechnicalPatterns     []string           `json:"technicalPatterns,omitempty"`
	CommunicationPatterns []string           `json:"communicationPatterns,omitempty"`
}

func (e Enrichment) IsZero() bool {
	return len(e.InterviewScores) == 0 && len(e.Strengths) == 0 && len(e.Weaknesses) == 0 &&
		len(e.TechnicalPatterns) == 0 && len(e.CommunicationPatterns) == 0
}

// averageScore returns the mean interview score and the number of rounds.
func (e Enrichment) averageScore() (float64, int) {
	if len(e.InterviewScores) == 0 {
		return 0, 0
	}
	keys := make([]string, 0, len(e.InterviewScores))
	for k := range e.InterviewScores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sum := 0.0
	for _, k := range keys {
		sum += e.InterviewScores[k]
	}
	return sum / float64(len(keys)), len(keys)
}

func (e Enrichment) factors() []string {
	var out []string
	if avg, n := e.averageScore(); n > 0 {
		out = append(out, fmt.Sprintf("Interview performance averaging %.0f/100 across %d sessions", avg, n))
	}
	if len(e.Strengths) > 0 {
		out = append(out, "Demonstrated strengths: "+strings.Join(e.Strengths, ", "))
	}
	if len(e.Weaknesses) > 0 {
		out = append(out, "Growth areas: "+strings.Join(e.Weaknesses, ", "))
	}
	if len(e.TechnicalPatterns) > 0 {
		out = append(out, "Technical patterns: "+strings.Join(e.TechnicalPatterns, ", "))
	}
	if len(e.CommunicationPatterns) > 0 {
		out = append(out, "Communication patterns: "+strings.Join(e.CommunicationPatterns, ", "))
	}
	return out
}

func (e Enrichment) reasoning() string {
	avg, n := e.averageScore()
	if n == 0 {
		if len(e.Strengths) == 0 {
			return ""
		}
		return fmt.Sprintf(" Platform activity highlights %s.", strings.Join(e.Strengths, ", "))
	}
	return fmt.Sprintf(" Interview practice averaging %.0f/100 supports negotiating toward the upper half of the range.", avg)
}
