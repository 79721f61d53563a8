package utils

import (
	"net/http"
	"net/url"
)

// BuildHeaders creates HTTP headers with crawler defaults.
func BuildHeaders(userAgent string) http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	return headers
}

// AbsoluteURL resolves href against base. Unparseable input returns href
// unchanged.
func AbsoluteURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}

	h, err := url.Parse(href)
	if err != nil {
		return href
	}

	return b.ResolveReference(h).String()
}
