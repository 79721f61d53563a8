// Package models defines data structures shared by the crawler and the renderer.
package models

// Kind classifies a scraped page. Press reviews carry grouped news sections,
// articles and tutorials carry a single body with one author block.
type Kind string

// Known content kinds on the legacy site.
const (
	KindPressReview Kind = "press-review"
	KindArticle     Kind = "article"
	KindTutorial    Kind = "tutorial"
)

// Author holds the author block scraped from a page.
type Author struct {
	Name        string   `json:"name"`
	Thumbnail   string   `json:"thumbnail"`
	Description []string `json:"description"`
}

// NewsItem is a single entry inside a press-review section.
type NewsItem struct {
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail"`
	Fragments []string `json:"fragments"`
}

// NewsSection groups news items under a thematic heading. The heading is the
// raw HTML fragment as scraped, converted at render time.
type NewsSection struct {
	Heading string     `json:"heading"`
	Items   []NewsItem `json:"items"`
}

// PublishedDate is the raw day / month-abbreviation / year triple displayed
// on legacy pages, e.g. ("20", "avr", "2014").
type PublishedDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Record is the write-once result of scraping one page. It is produced by the
// crawler, consumed exactly once by the renderer, then discarded.
//
// Exactly one of Body or Sections is populated, depending on Kind.
type Record struct {
	Kind          Kind          `json:"kind"`
	Title         string        `json:"title"`
	URLFull       string        `json:"url_full"`
	PublishedDate PublishedDate `json:"published_date"`
	Tags          []string      `json:"tags"`
	Intro         string        `json:"intro"`
	Body          []string      `json:"body,omitempty"`
	Sections      []NewsSection `json:"news_sections,omitempty"`
	Author        Author        `json:"author"`
	LegacyNode    *int          `json:"legacy_node,omitempty"`
}

// IsPressReview reports whether the record renders as a revue de presse.
func (r *Record) IsPressReview() bool {
	return r.Kind == KindPressReview
}
