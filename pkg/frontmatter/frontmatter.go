// Package frontmatter provides utilities for reading the YAML header block of
// rendered markdown documents.
package frontmatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a front-matter block.
const Delimiter = "---"

// Front-matter errors.
var (
	ErrNoBlock        = errors.New("no front-matter block found")
	ErrUnterminated   = errors.New("front-matter block not terminated")
	ErrInvalidYAML    = errors.New("front-matter is not valid YAML")
	ErrMultipleBlocks = errors.New("multiple front-matter blocks found")
)

// blockRegex matches a leading front-matter block including delimiters.
var blockRegex = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n`)

// Fields is the decoded front-matter of a migrated document.
type Fields struct {
	Authors     []string `yaml:"authors"`
	Categories  []string `yaml:"categories"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	License     string   `yaml:"license"`
	Legacy      Legacy   `yaml:"legacy"`
	Robots      string   `yaml:"robots"`
	Tags        []string `yaml:"tags"`
	Title       string   `yaml:"title"`
}

// Legacy carries the identifier of the source CMS node.
type Legacy struct {
	Node *int `yaml:"node"`
}

// Split separates a document into its YAML header and markdown body.
func Split(doc string) (header, body string, err error) {
	if !strings.HasPrefix(doc, Delimiter+"\n") {
		return "", "", ErrNoBlock
	}

	match := blockRegex.FindStringSubmatch(doc)
	if len(match) < 2 {
		return "", "", ErrUnterminated
	}

	return match[1], doc[len(match[0]):], nil
}

// Parse decodes the YAML header of doc into Fields.
func Parse(doc string) (*Fields, error) {
	header, _, err := Split(doc)
	if err != nil {
		return nil, err
	}

	var f Fields
	if err := yaml.Unmarshal([]byte(header), &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &f, nil
}

// Count returns how many front-matter style blocks appear in doc. A well
// formed document has exactly one, at the very top.
func Count(doc string) int {
	count := 0
	lines := strings.Split(doc, "\n")

	open := false
	for i, line := range lines {
		if strings.TrimRight(line, " ") != Delimiter {
			continue
		}

		if !open && (i == 0 || looksLikeHeaderStart(lines, i)) {
			open = true
			continue
		}

		if open {
			count++
			open = false
		}
	}

	return count
}

// looksLikeHeaderStart reports whether the delimiter at index i opens a new
// header, which only happens right after a blank line followed by key lines.
func looksLikeHeaderStart(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}

	next := lines[i+1]

	return strings.Contains(next, ":") && !strings.HasPrefix(next, "#")
}
