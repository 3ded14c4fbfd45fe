package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"career-predictor/internal/projection"
)

type batchLine struct {
	File           string  `json:"file"`
	ParseID        string  `json:"parseId,omitempty"`
	TargetRole     string  `json:"targetRole,omitempty"`
	ReadinessScore int     `json:"readinessScore,omitempty"`
	FutureSalary   float64 `json:"futureSalary,omitempty"`
	LowConfidence  bool    `json:"lowConfidence,omitempty"`
	Error          string  `json:"error,omitempty"`
}

func newBatchCmd() *cobra.Command {
	var (
		dir         string
		role        string
		days        int
		now         string
		concurrency int
		failFast    bool
	)
	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Project many resumes concurrently and print one JSON line per file",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			files, err := batchFiles(dir, args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no resume files given")
			}

			lines, err := runBatch(cmd.Context(), files, role, tf, projection.NewProjector(clock), concurrency, failFast)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if err := writeJSON(cmd.OutOrStdout(), line, false); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of resume files (.txt, .pdf, .docx)")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Target role")
	cmd.Flags().IntVarP(&days, "days", "d", projection.DefaultTimeframe.Days(), "Horizon in days: 30, 60 or 90")
	cmd.Flags().StringVar(&now, "now", "", "Pin the clock to YYYY-MM-DD")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Files processed in parallel")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first unreadable file")
	return cmd
}

// runBatch keeps output in input order regardless of completion order.
func runBatch(ctx context.Context, files []string, role string, tf projection.Timeframe, projector *projection.Projector, concurrency int, failFast bool) ([]batchLine, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	lines := make([]batchLine, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, file := range files {
		g.Go(func() error {
			line := batchLine{File: file}
			text, err := readResume(gctx, file, nil)
			if err == nil {
				var out predictOutput
				out, err = predictText(text, role, tf, projector)
				if err == nil {
					line.ParseID = out.ParseID
					line.TargetRole = out.Prediction.TargetRole
					line.ReadinessScore = out.Prediction.JobRoleReadiness.ReadinessScore
					line.FutureSalary = out.Prediction.Salary.Future
					line.LowConfidence = out.LowConfidence
				}
			}
			if err != nil {
				if failFast {
					return err
				}
				line.Error = err.Error()
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

func batchFiles(dir string, args []string) ([]string, error) {
	files := append([]string{}, args...)
	if dir == "" {
		return files, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md", ".pdf", ".docx":
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(found)
	return append(files, found...), nil
}
