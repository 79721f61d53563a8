package render

import (
	"strings"

	"geoscraper/pkg/utils"
)

// Rewriter substitutes legacy media URLs in converted markdown text.
//
// The historical behaviour, kept as the default, stops at the first table
// entry that matches and replaces all of its occurrences; later entries are
// not considered even if their URLs are also present. ApplyAll applies every
// matching entry instead.
type Rewriter struct {
	table    []Replacement
	applyAll bool
}

// NewRewriter creates a rewriter over the static replacement table.
func NewRewriter(applyAll bool) *Rewriter {
	return &Rewriter{
		table:    URLReplacements,
		applyAll: applyAll,
	}
}

// NewRewriterWithTable creates a rewriter over a custom table.
func NewRewriterWithTable(table []Replacement, applyAll bool) *Rewriter {
	return &Rewriter{
		table:    table,
		applyAll: applyAll,
	}
}

// Rewrite substitutes known legacy URLs in text. When nothing matches, only
// leading and trailing spaces and tabs are stripped; newlines are kept.
func (rw *Rewriter) Rewrite(text string) string {
	matched := false

	for _, repl := range rw.table {
		if !strings.Contains(text, repl.Old) {
			continue
		}

		text = strings.ReplaceAll(text, repl.Old, repl.New)
		matched = true

		if !rw.applyAll {
			return text
		}
	}

	if matched {
		return text
	}

	return utils.TrimEdges(text)
}
