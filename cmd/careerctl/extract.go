package main

import (
	"github.com/spf13/cobra"

	"career-predictor/internal/resumeparse"
)

func newExtractCmd() *cobra.Command {
	var (
		in     string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Parse a resume into a structured record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readResume(cmd.Context(), in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resumeparse.Parse(text), pretty)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Resume file (.txt, .pdf, .docx) or - for stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}
