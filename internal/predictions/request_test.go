package predictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-predictor/internal/projection"
)

func intPtr(v int) *int { return &v }

func TestAnalyzeRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  AnalyzeRequest
		want error
	}{
		{"ok", AnalyzeRequest{ResumeText: "x", TargetRole: "QA Engineer"}, nil},
		{"ok with horizon", AnalyzeRequest{ResumeText: "x", TargetRole: "QA", TimeGoal: intPtr(30)}, nil},
		{"blank resume", AnalyzeRequest{ResumeText: "   ", TargetRole: "QA"}, ErrMissingFields},
		{"blank role", AnalyzeRequest{ResumeText: "x", TargetRole: "\t"}, ErrMissingFields},
		{"missing beats horizon", AnalyzeRequest{TimeGoal: intPtr(45)}, ErrMissingFields},
		{"bad horizon", AnalyzeRequest{ResumeText: "x", TargetRole: "QA", TimeGoal: intPtr(45)}, ErrInvalidTimeGoal},
		{"bad score", AnalyzeRequest{ResumeText: "x", TargetRole: "QA", InterviewScores: map[string]float64{"dsa": 120}}, ErrInvalidScores},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			err := req.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyzeRequestTimeframe(t *testing.T) {
	tf, err := AnalyzeRequest{}.Timeframe()
	require.NoError(t, err)
	assert.Equal(t, projection.Days90, tf)

	tf, err = AnalyzeRequest{TimeGoal: intPtr(60)}.Timeframe()
	require.NoError(t, err)
	assert.Equal(t, projection.Days60, tf)

	_, err = AnalyzeRequest{TimeGoal: intPtr(0)}.Timeframe()
	assert.ErrorIs(t, err, ErrInvalidTimeGoal)
}

func TestAnalyzeRequestEnrichmentDropsBlanks(t *testing.T) {
	req := AnalyzeRequest{Strengths: []string{" APIs ", ""}, Weaknesses: []string{"  "}}
	e := req.Enrichment()
	assert.Equal(t, []string{"APIs"}, e.Strengths)
	assert.Nil(t, e.Weaknesses)
}

func TestExtractRequestValidate(t *testing.T) {
	req := ExtractRequest{ResumeText: "  "}
	assert.ErrorIs(t, req.Validate(), ErrMissingResumeText)

	req = ExtractRequest{ResumeText: " Jane "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Jane", req.ResumeText)
}
