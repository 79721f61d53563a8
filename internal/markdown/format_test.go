package markdown

import (
	"strings"
	"testing"
)

func TestFormatTables_Alignment(t *testing.T) {
	in := strings.Join([]string{
		"| Nom | Description |",
		"| --- | --- |",
		"| QGIS | SIG bureautique |",
		"| GRASS | Boîte à outils |",
	}, "\n")

	out := FormatTables(in)
	lines := strings.Split(out, "\n")

	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}

	// All rows pad to the same display width.
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if got := len([]rune(line)); got != width {
			t.Errorf("line %d width = %d, want %d: %q", i, got, width, line)
		}
	}

	if !strings.Contains(lines[1], "-----") {
		t.Errorf("separator row not widened: %q", lines[1])
	}

	if !strings.Contains(lines[2], "| QGIS  |") {
		t.Errorf("cell not padded to column width: %q", lines[2])
	}
}

func TestFormatTables_DisplayWidth(t *testing.T) {
	// "Boîte" and "Carte" have equal display width despite the accent.
	in := strings.Join([]string{
		"| Outil |",
		"| --- |",
		"| Boîte |",
		"| Carte |",
	}, "\n")

	lines := strings.Split(FormatTables(in), "\n")

	if lines[2] != "| Boîte |" || lines[3] != "| Carte |" {
		t.Errorf("accented cells misaligned:\n%s", strings.Join(lines, "\n"))
	}
}

func TestFormatTables_LeavesProseAlone(t *testing.T) {
	in := "Un paragraphe.\n\nEt | un pipe au milieu.\n"

	if got := FormatTables(in); got != in {
		t.Errorf("non-table content changed:\n%q", got)
	}
}

func TestFormatTables_LonePipeLine(t *testing.T) {
	in := "| pas un tableau |"

	if got := FormatTables(in); got != in {
		t.Errorf("single pipe line reformatted: %q", got)
	}
}

func TestFormatTables_MinimumColumnWidth(t *testing.T) {
	in := strings.Join([]string{
		"| a | b |",
		"| - | - |",
		"| x | y |",
	}, "\n")

	lines := strings.Split(FormatTables(in), "\n")

	// Columns never shrink below three dashes.
	if lines[1] != "| --- | --- |" {
		t.Errorf("separator = %q, want minimum three dashes", lines[1])
	}
}

func TestIsIframe(t *testing.T) {
	cases := []struct {
		fragment string
		want     bool
	}{
		{`<iframe src="https://example.org"></iframe>`, true},
		{"  <IFRAME src='x'></IFRAME>", true},
		{"<p>texte</p>", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsIframe(tc.fragment); got != tc.want {
			t.Errorf("IsIframe(%q) = %v, want %v", tc.fragment, got, tc.want)
		}
	}
}

func TestConvert_BasicFragment(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert(`<p>Un <strong>paragraphe</strong> avec <a href="https://example.org">lien</a>.</p>`)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if !strings.Contains(md, "**paragraphe**") {
		t.Errorf("bold not converted: %q", md)
	}

	if !strings.Contains(md, "[lien](https://example.org)") {
		t.Errorf("link not converted: %q", md)
	}
}

func TestConvert_Table(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert(`<table><tr><th>Outil</th><th>Usage</th></tr><tr><td>Composeur</td><td>Mise en page</td></tr></table>`)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if !strings.Contains(md, "|") || !strings.Contains(md, "Outil") {
		t.Errorf("table not converted to pipes: %q", md)
	}
}

func TestConvertFragment_IframePassthrough(t *testing.T) {
	c := NewConverter()
	iframe := `<iframe src="https://player.example.org/v/42"></iframe>`

	got, err := c.ConvertFragment(iframe)
	if err != nil {
		t.Fatalf("ConvertFragment returned error: %v", err)
	}

	if got != iframe {
		t.Errorf("iframe changed: %q", got)
	}
}
