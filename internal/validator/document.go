// Package validator checks rendered markdown documents against the migration
// invariants.
package validator

import (
	"fmt"
	"strings"

	"geoscraper/pkg/frontmatter"
)

// maxDescriptionLength is the front-matter description cap including the
// truncation marker.
const maxDescriptionLength = 163

// DocumentValidator verifies that a rendered document has exactly one
// front-matter block followed by exactly one title line.
type DocumentValidator struct{}

// New creates a document validator.
func New() *DocumentValidator {
	return &DocumentValidator{}
}

// Check inspects doc and returns a human readable warning per violation. An
// empty slice means the document is well formed.
func (v *DocumentValidator) Check(doc string) []string {
	var warnings []string

	fields, err := frontmatter.Parse(doc)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("front-matter: %v", err))

		return warnings
	}

	if n := frontmatter.Count(doc); n != 1 {
		warnings = append(warnings, fmt.Sprintf("expected exactly one front-matter block, found %d", n))
	}

	if len([]rune(fields.Description)) > maxDescriptionLength {
		warnings = append(warnings, fmt.Sprintf("description exceeds %d characters", maxDescriptionLength))
	}

	if fields.Title == "" {
		warnings = append(warnings, "front-matter title is empty")
	}

	if len(fields.Categories) != 1 {
		warnings = append(warnings, "expected exactly one category")
	}

	_, body, err := frontmatter.Split(doc)
	if err != nil {
		return warnings
	}

	headings := 0

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			headings++
		}
	}

	if headings != 1 {
		warnings = append(warnings, fmt.Sprintf("expected exactly one level-1 heading, found %d", headings))
	}

	return warnings
}
