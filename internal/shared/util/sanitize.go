package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameRunes = 120

// ErrInvalidFileName is returned for names with no usable base component.
var ErrInvalidFileName = errors.New("invalid file name")

// CleanFileName reduces a client-supplied upload name to a display-safe base
// name: directories are dropped, control characters removed and the result
// truncated.
func CleanFileName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "", ErrInvalidFileName
	}
	if runes := []rune(name); len(runes) > maxFileNameRunes {
		name = string(runes[:maxFileNameRunes])
	}
	return name, nil
}
