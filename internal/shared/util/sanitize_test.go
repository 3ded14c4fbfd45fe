package util

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "resume.pdf", want: "resume.pdf"},
		{in: " dir/resume.docx ", want: "resume.docx"},
		{in: `C:\Users\me\cv.txt`, want: "cv.txt"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: "cv\x00\n.txt", want: "cv.txt"},
		{in: "uploads/..", wantErr: true},
		{in: "dir/", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := CleanFileName(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFileName) {
				t.Fatalf("CleanFileName(%q): expected ErrInvalidFileName, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CleanFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("CleanFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanFileNameTruncates(t *testing.T) {
	got, err := CleanFileName(strings.Repeat("é", 300) + ".pdf")
	if err != nil {
		t.Fatalf("CleanFileName: %v", err)
	}
	if n := len([]rune(got)); n != maxFileNameRunes {
		t.Fatalf("expected %d runes, got %d", maxFileNameRunes, n)
	}
}
