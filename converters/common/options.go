package common

import (
	"strings"
)

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that produces the most fields.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) rune {
	if line == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	maxCount := 0
	winner := ','

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}

// ParseDelimiter converts a configured delimiter string to a rune.
// "auto" reports auto detection; an empty string returns 0, leaving the
// choice to the input format.
func ParseDelimiter(s string) (delim rune, auto bool, ok bool) {
	switch s {
	case "":
		return 0, false, true
	case "auto":
		return ',', true, true
	case `\t`, "tab":
		return '\t', false, true
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '"' || r[0] == '\r' || r[0] == '\n' {
		return 0, false, false
	}
	return r[0], false, true
}
