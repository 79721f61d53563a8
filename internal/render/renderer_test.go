package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geoscraper/internal/logger"
	"geoscraper/internal/models"
	"geoscraper/internal/output"
)

func newTestRenderer(t *testing.T, opts Options) (*Renderer, string) {
	t.Helper()

	dir := t.TempDir()
	writer := output.NewWriter(dir)
	log := logger.New("error", "text")

	return NewRenderer(writer, nil, log, opts), dir
}

func pressReviewRecord() *models.Record {
	node := 1234

	return &models.Record{
		Kind:          models.KindPressReview,
		Title:         "Revue de presse",
		URLFull:       "/geotribu_reborn/GeoRDP/20150206",
		PublishedDate: models.PublishedDate{Day: "6", Month: "févr", Year: "2015"},
		Tags:          []string{"revue de presse"},
		Intro:         "<p>Une intro de revue.</p>",
		Sections: []models.NewsSection{
			{
				Heading: `<p class="typeNews">Webmapping</p>`,
				Items: []models.NewsItem{
					{
						Title:     "Leaflet 1.0",
						Thumbnail: `<img src="` + legacyNewsIcon + `" alt="">`,
						Fragments: []string{"<p>Sortie de Leaflet.</p>"},
					},
				},
			},
			{
				Heading: `<p class="typeNews">Logiciels</p>`,
				Items: []models.NewsItem{
					{
						Title:     "QGIS 2.8",
						Thumbnail: `<img src="` + legacyNewsIcon + `" alt="">`,
						Fragments: []string{"<p>Nouvelle version.</p>"},
					},
				},
			},
		},
		Author:     models.Author{Name: "Geotribu", Thumbnail: "?"},
		LegacyNode: &node,
	}
}

func TestRenderer_PressReview(t *testing.T) {
	r, dir := newTestRenderer(t, Options{AppendYearToTitle: true})

	relPath, err := r.Render(pressReviewRecord())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if relPath != "rdp/2015/rdp_2015-02-06.md" {
		t.Errorf("path = %s, want rdp/2015/rdp_2015-02-06.md", relPath)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}

	doc := string(raw)

	if !strings.HasPrefix(doc, "---\n") {
		t.Errorf("document must start with front-matter")
	}

	if !strings.Contains(doc, "# Revue de presse 2015\n") {
		t.Errorf("missing title heading with appended year:\n%s", doc)
	}

	if !strings.Contains(doc, "Date de publication : 2015-02-06") {
		t.Errorf("missing publication date line")
	}

	for _, heading := range []string{"## Webmapping", "## Logiciels", "### Leaflet 1.0", "### QGIS 2.8"} {
		if !strings.Contains(doc, heading) {
			t.Errorf("missing heading %q", heading)
		}
	}

	if got := strings.Count(doc, thumbnailMarker); got != 2 {
		t.Errorf("thumbnail marker count = %d, want 2", got)
	}

	// Legacy icon URLs are rewritten to the CDN.
	if strings.Contains(doc, legacyNewsIcon) {
		t.Errorf("legacy thumbnail URL survived rewriting")
	}

	if got := strings.Count(doc, cdnNewsIcon); got != 2 {
		t.Errorf("CDN thumbnail count = %d, want 2", got)
	}

	// Press reviews carry no author block.
	if strings.Contains(doc, "## Auteur") {
		t.Errorf("press review must not have an author section")
	}
}

func TestRenderer_RedirectEntry(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})

	if _, err := r.Render(pressReviewRecord()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	entries := r.Redirects().Entries()
	if len(entries) != 1 {
		t.Fatalf("redirect entries = %d, want 1", len(entries))
	}

	if entries[0].Source != "node/1234.md" {
		t.Errorf("Source = %s", entries[0].Source)
	}

	if entries[0].Target != "/rdp/2015/rdp_2015-02-06.md" {
		t.Errorf("Target = %s", entries[0].Target)
	}
}

func TestRenderer_ArticleWithKnownContributor(t *testing.T) {
	r, dir := newTestRenderer(t, Options{AppendYearToTitle: true})

	node := 987
	rec := &models.Record{
		Kind:          models.KindArticle,
		Title:         "Cartographie avec QGIS",
		URLFull:       "/geotribu_reborn/cartographie-avec-qgis",
		PublishedDate: models.PublishedDate{Day: "20", Month: "avr", Year: "2014"},
		Tags:          []string{"QGIS"},
		Body:          []string{"<p>Premier paragraphe.</p>"},
		Author: models.Author{
			Name:        "Julien Moura",
			Thumbnail:   "http://example.org/jmou.jpg",
			Description: []string{"<p>Géomaticien.</p>"},
		},
		LegacyNode: &node,
	}

	relPath, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if relPath != "articles/2014/2014-04-20_cartographie_qgis.md" {
		t.Errorf("path = %s", relPath)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}

	doc := string(raw)

	if !strings.Contains(doc, "## Auteur") {
		t.Errorf("missing author section")
	}

	// A known contributor is referenced by snippet, not inlined.
	if !strings.Contains(doc, `--8<-- "content/team/jmou.md"`) {
		t.Errorf("missing author snippet reference:\n%s", doc)
	}

	if strings.Contains(doc, "**Julien Moura**") {
		t.Errorf("known contributor must not be inlined")
	}
}

func TestRenderer_ArticleWithUnknownAuthor(t *testing.T) {
	r, dir := newTestRenderer(t, Options{})

	rec := &models.Record{
		Kind:          models.KindArticle,
		Title:         "Un billet invité",
		URLFull:       "/geotribu_reborn/node/555",
		PublishedDate: models.PublishedDate{Day: "3", Month: "juin", Year: "2013"},
		Body:          []string{"<p>Contenu.</p>"},
		Author: models.Author{
			Name:        "Jeanne Dupont",
			Thumbnail:   "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/default_images/default-contributeur.png",
			Description: []string{"<p>Invitée.</p>"},
		},
	}

	relPath, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}

	doc := string(raw)

	if !strings.Contains(doc, "**Jeanne Dupont**") {
		t.Errorf("missing bolded author name")
	}

	// The default portrait is rewritten to the CDN logo.
	if !strings.Contains(doc, "https://cdn.geotribu.fr/images/internal/charte/geotribu_logo_64x64.png") {
		t.Errorf("author thumbnail was not rewritten:\n%s", doc)
	}
}

func TestRenderer_LegacyNodeFromURL(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})

	rec := &models.Record{
		Kind:          models.KindArticle,
		Title:         "Sans shortlink",
		URLFull:       "/geotribu_reborn/node/777",
		PublishedDate: models.PublishedDate{Day: "1", Month: "mai", Year: "2012"},
		Body:          []string{"<p>Texte.</p>"},
	}

	if _, err := r.Render(rec); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	entries := r.Redirects().Entries()
	if len(entries) != 1 || entries[0].Source != "node/777.md" {
		t.Errorf("entries = %v, want node id parsed from URL", entries)
	}
}

func TestRenderer_UnresolvedDateFallbackPath(t *testing.T) {
	r, dir := newTestRenderer(t, Options{})

	rec := &models.Record{
		Kind:          models.KindArticle,
		Title:         "Vieille page",
		URLFull:       "/geotribu_reborn/vieille-page",
		PublishedDate: models.PublishedDate{Day: "6", Month: "Zzz", Year: "2015"},
		Body:          []string{"<p>Texte.</p>"},
	}

	relPath, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if relPath != "article_6-zzz-2015.md" {
		t.Errorf("path = %s, want flat fallback filename", relPath)
	}

	if _, err := os.Stat(filepath.Join(dir, relPath)); err != nil {
		t.Errorf("fallback document not written: %v", err)
	}
}

func TestRenderer_IframePassthrough(t *testing.T) {
	r, dir := newTestRenderer(t, Options{})

	iframe := `<iframe src="https://player.example.org/v/42"></iframe>`
	rec := &models.Record{
		Kind:          models.KindArticle,
		Title:         "Avec vidéo",
		URLFull:       "/geotribu_reborn/node/31",
		PublishedDate: models.PublishedDate{Day: "2", Month: "oct", Year: "2014"},
		Body:          []string{"<p>Avant.</p>", iframe},
	}

	relPath, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}

	if !strings.Contains(string(raw), iframe) {
		t.Errorf("iframe fragment was not passed through verbatim:\n%s", raw)
	}
}
