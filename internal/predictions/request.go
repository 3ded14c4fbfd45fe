package predictions

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"career-predictor/internal/projection"
)

var validate = validator.New()

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	ResumeText            string             `json:"resumeText" validate:"required"`
	TargetRole            string             `json:"targetRole" validate:"required"`
	TimeGoal              *int               `json:"timeGoal,omitempty" validate:"omitempty,oneof=30 60 90"`
	InterviewScores       map[string]float64 `json:"interviewScores,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	Strengths             []string           `json:"strengths,omitempty"`
	Weaknesses            []string           `json:"weaknesses,omitempty"`
	TechnicalPatterns     []string           `json:"technicalPatterns,omitempty"`
	CommunicationPatterns []string           `json:"communicationPatterns,omitempty"`
}

// Validate trims the request and maps validator failures onto API errors.
func (r *AnalyzeRequest) Validate() error {
	r.ResumeText = strings.TrimSpace(r.ResumeText)
	r.TargetRole = strings.TrimSpace(r.TargetRole)

	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	// Missing fields outrank horizon and score problems.
	var firstErr error
	for _, fe := range verrs {
		switch fe.Field() {
		case "ResumeText", "TargetRole":
			return ErrMissingFields
		case "TimeGoal":
			if firstErr == nil {
				firstErr = ErrInvalidTimeGoal
			}
		default:
			if firstErr == nil {
				firstErr = ErrInvalidScores
			}
		}
	}
	return firstErr
}

// Timeframe resolves the requested horizon, defaulting to 90 days.
func (r AnalyzeRequest) Timeframe() (projection.Timeframe, error) {
	if r.TimeGoal == nil {
		return projection.DefaultTimeframe, nil
	}
	t, err := projection.ParseTimeframe(*r.TimeGoal)
	if err != nil || *r.TimeGoal == 0 {
		return 0, ErrInvalidTimeGoal
	}
	return t, nil
}

// Enrichment collects the optional platform data.
func (r AnalyzeRequest) Enrichment() projection.Enrichment {
	return projection.Enrichment{
		InterviewScores:       r.InterviewScores,
		Strengths:             cleanList(r.Strengths),
		Weaknesses:            cleanList(r.Weaknesses),
		TechnicalPatterns:     cleanList(r.TechnicalPatterns),
		CommunicationPatterns: cleanList(r.CommunicationPatterns),
	}
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

func (r *ExtractRequest) Validate() error {
	r.ResumeText = strings.TrimSpace(r.ResumeText)
	if err := validate.Struct(r); err != nil {
		return ErrMissingResumeText
	}
	return nil
}

func cleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
