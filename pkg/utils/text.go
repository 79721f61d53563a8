// Package utils provides small helpers shared across packages.
package utils

import "strings"

// CollapseWhitespace replaces runs of whitespace with single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TrimEdges removes leading and trailing spaces and tabs, keeping newlines.
func TrimEdges(s string) string {
	return strings.Trim(s, " \t")
}

// Truncate shortens s to at most max runes, appending an ellipsis marker when
// something was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}

// LeftStripLines removes leading spaces and tabs from every line of s.
func LeftStripLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}

	return strings.Join(lines, "\n")
}
