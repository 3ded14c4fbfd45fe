package predictions

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
)

func TestSchemaAcceptsEveryRoleAndHorizon(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)
	projector := projection.NewProjector(func() time.Time { return fixedNow })

	texts := []string{"", "hello", scenarioText}
	for _, role := range projection.Roles() {
		for _, tf := range []projection.Timeframe{projection.Days30, projection.Days60, projection.Days90} {
			for _, text := range texts {
				pred := projector.Project(resumeparse.Parse(text), role, tf, projection.Enrichment{})
				assert.NoError(t, v.Validate(pred), "role=%s days=%d text=%q", role, tf.Days(), text)
			}
		}
	}
}

func TestSchemaRejectsBrokenPrediction(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	pred := samplePrediction(projection.Days60)
	doc, err := json.Marshal(pred)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(doc, &raw))
	raw["timeframeDays"] = 45
	raw["achievements"] = []any{}
	raw["roadmap"].(map[string]any)["day120"] = map[string]any{}
	broken, err := json.Marshal(raw)
	require.NoError(t, err)

	err = v.ValidateJSON(broken)
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "timeframeDays")
	assert.Contains(t, fields, "achievements")
	assert.Contains(t, fields, "roadmap")
	assert.Contains(t, err.Error(), "validation failed")
}
