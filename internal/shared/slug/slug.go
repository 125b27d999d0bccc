package slug

import (
	"path/filepath"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

const maxLen = 40

// FromName lowercases s and joins its ASCII alphanumeric runs with dashes.
// fallback is returned when nothing is left.
func FromName(s, fallback string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	if s == "" {
		return fallback
	}
	return s
}

// FileStem slugs a file name without its extension, e.g.
// "Summer Tee (Red).PNG" -> "summer-tee-red".
func FileStem(filename string) string {
	base := filepath.Base(filename)
	return FromName(strings.TrimSuffix(base, filepath.Ext(base)), "file")
}
