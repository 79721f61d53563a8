package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// frenchStopwords are dropped from slugs to keep filenames short.
var frenchStopwords = map[string]bool{
	"le": true, "la": true, "les": true, "l": true,
	"de": true, "des": true, "du": true, "d": true,
	"un": true, "une": true, "et": true, "en": true,
	"au": true, "aux": true, "a": true, "ou": true,
	"pour": true, "sur": true, "avec": true, "dans": true,
	"par": true, "ce": true, "se": true, "qui": true, "que": true,
	"ne": true, "pas": true, "est": true,
}

// asciiFolder strips combining marks so accented letters fold to ASCII.
var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DisplayTitle returns the title as published: the publication year is
// appended unless it already appears somewhere in the raw title.
func DisplayTitle(raw string, appendYear bool, date ResolvedDate) string {
	title := strings.TrimSpace(raw)

	if appendYear {
		if year := date.Year(); year != "" && !strings.Contains(title, year) {
			title += " " + year
		}
	}

	return title
}

// Heading wraps the display title as a level-1 markdown heading with a
// trailing blank line.
func Heading(raw string, appendYear bool, date ResolvedDate) string {
	return "# " + DisplayTitle(raw, appendYear, date) + "\n\n"
}

// Slugify derives a filename-safe slug: accents folded to ASCII, lower-cased,
// split on non-alphanumeric runs, French stopwords removed, joined with
// underscores.
func Slugify(title string) string {
	folded, _, err := transform.String(asciiFolder, title)
	if err != nil {
		folded = title
	}

	folded = strings.ToLower(folded)

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var kept []string
	for _, w := range words {
		if frenchStopwords[w] {
			continue
		}

		kept = append(kept, w)
	}

	return strings.Join(kept, "_")
}
