package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"career-predictor/internal/projection"
)

func newRolesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List the target role catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				names := make([]string, 0, len(projection.Roles()))
				for _, r := range projection.Roles() {
					names = append(names, r.String())
				}
				return writeJSON(cmd.OutOrStdout(), names, false)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ROLE\tBASE LPA\tMULTIPLIER\tALIASES")
			for _, r := range projection.Roles() {
				p := r.Profile()
				fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%s\n", p.Name, p.BaseSalary, p.Multiplier, strings.Join(p.Aliases, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print role names as a JSON array")
	return cmd
}
