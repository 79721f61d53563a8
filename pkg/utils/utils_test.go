package utils

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"un  texte\n\tsur plusieurs   lignes", "un texte sur plusieurs lignes"},
		{"  bords  ", "bords"},
		{"", ""},
		{"déjà propre", "déjà propre"},
	}

	for _, tc := range cases {
		if got := CollapseWhitespace(tc.in); got != tc.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrimEdges(t *testing.T) {
	if got := TrimEdges(" \tdu texte\t "); got != "du texte" {
		t.Errorf("got %q", got)
	}

	// Newlines survive, only spaces and tabs are removed.
	if got := TrimEdges("\nparagraphe\n"); got != "\nparagraphe\n" {
		t.Errorf("got %q, newlines must be kept", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("court", 10); got != "court" {
		t.Errorf("got %q", got)
	}

	// Rune based, not byte based.
	if got := Truncate("ééééé", 3); got != "ééé..." {
		t.Errorf("got %q", got)
	}
}

func TestLeftStripLines(t *testing.T) {
	in := "  première\n\t seconde\ntroisième"
	want := "première\nseconde\ntroisième"

	if got := LeftStripLines(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "http://localhost/geotribu_reborn/"

	cases := []struct {
		href string
		want string
	}{
		{"/geotribu_reborn/node/1234", "http://localhost/geotribu_reborn/node/1234"},
		{"revues-de-presse?page=1", "http://localhost/geotribu_reborn/revues-de-presse?page=1"},
		{"http://example.org/abs", "http://example.org/abs"},
	}

	for _, tc := range cases {
		if got := AbsoluteURL(base, tc.href); got != tc.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}

func TestBuildHeaders(t *testing.T) {
	h := BuildHeaders("geoscraper/1.0")

	if got := h.Get("User-Agent"); got != "geoscraper/1.0" {
		t.Errorf("User-Agent = %q", got)
	}

	if h.Get("Accept") == "" {
		t.Errorf("Accept header missing")
	}
}
