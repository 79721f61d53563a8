// Package markdown converts legacy HTML fragments into markdown and cleans
// up the result.
package markdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Converter turns HTML fragments into markdown. Tables are converted too,
// tutorial pages rely on them.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// IsIframe reports whether the fragment starts with an iframe tag. Embedded
// players are passed through verbatim because conversion mangles them.
func IsIframe(fragment string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(fragment)), "<iframe")
}

// Convert converts an HTML fragment to markdown.
func (c *Converter) Convert(html string) (string, error) {
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return md, nil
}

// ConvertFragment converts an HTML fragment, leaving iframes untouched.
func (c *Converter) ConvertFragment(fragment string) (string, error) {
	if IsIframe(fragment) {
		return fragment, nil
	}

	return c.Convert(fragment)
}
