package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"career-predictor/internal/extract"
)

// readResume loads resume text from a file path or "-" for stdin. PDF and
// DOCX files go through the document extractor.
func readResume(ctx context.Context, path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--in is required")
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		if stdin == nil {
			return "", fmt.Errorf("stdin is not available here")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	mime := extract.DetectMimeType(path, data)
	if mime == extract.MimeText {
		return string(data), nil
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, mime, path)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return text, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// clockFlag parses --now; empty means the wall clock.
func clockFlag(raw string) (func() time.Time, error) {
	if raw == "" {
		return time.Now, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("--now must be YYYY-MM-DD: %w", err)
	}
	return func() time.Time { return t }, nil
}
