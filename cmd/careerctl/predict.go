package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"career-predictor/internal/predictions"
	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
)

type predictOutput struct {
	ParseID       string                `json:"parseId"`
	RoleFallback  bool                  `json:"roleFallback"`
	LowConfidence bool                  `json:"lowConfidence"`
	Prediction    projection.Prediction `json:"prediction"`
}

func newPredictCmd() *cobra.Command {
	var (
		in     string
		role   string
		days   int
		now    string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Project a resume toward a target role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role == "" {
				return fmt.Errorf("--role is required")
			}
			tf, err := projection.ParseTimeframe(days)
			if err != nil {
				return err
			}
			clock, err := clockFlag(now)
			if err != nil {
				return err
			}
			text, err := readResume(cmd.Context(), in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := predictText(text, role, tf, projection.NewProjector(clock))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out, pretty)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Resume file (.txt, .pdf, .docx) or - for stdin")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Target role, e.g. \"Backend Developer\"")
	cmd.Flags().IntVarP(&days, "days", "d", projection.DefaultTimeframe.Days(), "Horizon in days: 30, 60 or 90")
	cmd.Flags().StringVar(&now, "now", "", "Pin the clock to YYYY-MM-DD for reproducible output")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}

var loadSchema = sync.OnceValues(predictions.NewSchemaValidator)

func predictText(text, roleName string, tf projection.Timeframe, projector *projection.Projector) (predictOutput, error) {
	rec := resumeparse.Parse(text)
	role, known := projection.ParseRole(roleName)
	pred := projector.Project(rec, role, tf, projection.Enrichment{})
	if err := checkPrediction(pred); err != nil {
		return predictOutput{}, err
	}
	return predictOutput{
		ParseID:       rec.ParseID,
		RoleFallback:  !known,
		LowConfidence: rec.Confidence.Overall < resumeparse.LowConfidence,
		Prediction:    pred,
	}, nil
}

// checkPrediction applies the same invariant and schema checks as the API.
func checkPrediction(pred projection.Prediction) error {
	if err := pred.Validate(); err != nil {
		return fmt.Errorf("%w: %v", predictions.ErrInvalidPrediction, err)
	}
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(pred); err != nil {
		return fmt.Errorf("%w: %v", predictions.ErrInvalidPrediction, err)
	}
	return nil
}
