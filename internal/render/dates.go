// Package render turns scraped records into markdown documents with YAML
// front-matter, rewriting legacy media URLs along the way.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"geoscraper/internal/models"
)

// ResolvedDate is either a resolved calendar date or the raw value that could
// not be parsed. Callers must check IsResolved before using Date.
type ResolvedDate struct {
	date     time.Time
	raw      string
	resolved bool
}

// Resolved wraps a parsed calendar date.
func Resolved(t time.Time) ResolvedDate {
	return ResolvedDate{date: t, resolved: true}
}

// Unparsed wraps a raw value that failed to parse.
func Unparsed(raw string) ResolvedDate {
	return ResolvedDate{raw: raw}
}

// IsResolved reports whether the date parsed to a real calendar date.
func (d ResolvedDate) IsResolved() bool {
	return d.resolved
}

// Date returns the calendar date. Zero when unresolved.
func (d ResolvedDate) Date() time.Time {
	return d.date
}

// String renders the date as YYYY-MM-DD, or the raw fallback value.
func (d ResolvedDate) String() string {
	if d.resolved {
		return d.date.Format("2006-01-02")
	}

	return d.raw
}

// Year returns the publication year: the calendar year when resolved, else
// the third dash-delimited segment of the raw value, else "".
func (d ResolvedDate) Year() string {
	if d.resolved {
		return strconv.Itoa(d.date.Year())
	}

	parts := strings.Split(d.raw, "-")
	if len(parts) >= 3 {
		return parts[2]
	}

	return ""
}

// DateResolver converts the two raw date representations found on the legacy
// site into calendar dates. The French month table is held as a value so no
// process-wide locale state is involved and the resolver is safe to share.
type DateResolver struct {
	months map[string]time.Month
}

// NewDateResolver creates a resolver loaded with the French month
// abbreviations the legacy theme emits.
func NewDateResolver() *DateResolver {
	return &DateResolver{
		months: map[string]time.Month{
			"janv":    time.January,
			"janvier": time.January,
			"fév":     time.February,
			"févr":    time.February,
			"fev":     time.February,
			"février": time.February,
			"mars":    time.March,
			"avr":     time.April,
			"avril":   time.April,
			"mai":     time.May,
			"juin":    time.June,
			"juil":    time.July,
			"juillet": time.July,
			"août":    time.August,
			"aout":    time.August,
			"sept":    time.September,
			"oct":     time.October,
			"nov":     time.November,
			"déc":     time.December,
			"dec":     time.December,
		},
	}
}

// FromURL extracts a date from a legacy URL whose last path segment is a
// YYYYMMDD stamp, e.g. "GeoRDP/20150206". Anything else comes back unparsed
// with the original value.
func (r *DateResolver) FromURL(raw string) ResolvedDate {
	segments := strings.Split(raw, "/")
	last := segments[len(segments)-1]

	t, err := time.Parse("20060102", last)
	if err != nil {
		return Unparsed(raw)
	}

	return Resolved(t)
}

// FromTag builds a date from the day / month-abbreviation / year spans shown
// on legacy pages, e.g. ("20", "avr", "2014").
func (r *DateResolver) FromTag(pd models.PublishedDate) ResolvedDate {
	month, ok := r.months[normalizeMonth(pd.Month)]
	if !ok {
		return Unparsed(rawFallback(pd))
	}

	day, err := strconv.Atoi(strings.TrimSpace(pd.Day))
	if err != nil {
		return Unparsed(rawFallback(pd))
	}

	year, err := strconv.Atoi(strings.TrimSpace(pd.Year))
	if err != nil {
		return Unparsed(rawFallback(pd))
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days, e.g. 31 février; reject those.
	if t.Day() != day || t.Month() != month {
		return Unparsed(rawFallback(pd))
	}

	return Resolved(t)
}

// Resolve picks the best available date for a record: the displayed date tag
// first, then the URL stamp, then the lower-cased raw triple.
func (r *DateResolver) Resolve(rec *models.Record) ResolvedDate {
	if d := r.FromTag(rec.PublishedDate); d.IsResolved() {
		return d
	}

	if d := r.FromURL(rec.URLFull); d.IsResolved() {
		return d
	}

	return Unparsed(rawFallback(rec.PublishedDate))
}

func normalizeMonth(month string) string {
	m := strings.ToLower(strings.TrimSpace(month))

	return strings.TrimSuffix(m, ".")
}

func rawFallback(pd models.PublishedDate) string {
	raw := fmt.Sprintf("%s-%s-%s", pd.Day, pd.Month, pd.Year)

	return strings.ToLower(raw)
}
