// Package parsers extracts scraped records from the legacy site's page
// templates using CSS selectors.
package parsers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"geoscraper/internal/models"
	"geoscraper/pkg/utils"
)

// Selectors shared by the legacy Drupal templates.
const (
	selectorArticle      = "article"
	selectorTitleSection = "div.title-and-meta"
	selectorTitleLink    = "h2.node__title a"
	selectorNextPage     = "li.pager-next a"
	selectorTutorialRow  = "div.views-row"
	selectorDate         = "div.date"
	selectorTags         = "span.taxonomy-tag a"
	selectorShortlink    = `link[rel="shortlink"]`
)

// ErrNoArticle is returned when a detail page carries no article element.
var ErrNoArticle = errors.New("page contains no article element")

// Parser extracts records from fetched documents. The base URL is used to
// absolutize relative links.
type Parser struct {
	baseURL string
}

// New creates a parser for a site rooted at baseURL.
func New(baseURL string) *Parser {
	return &Parser{baseURL: baseURL}
}

// AbsoluteURL resolves href against the site base.
func (p *Parser) AbsoluteURL(href string) string {
	return utils.AbsoluteURL(p.baseURL, href)
}

// ListingLinks returns the detail-page links of a paginated listing plus the
// next page link, empty when the last page is reached.
func (p *Parser) ListingLinks(doc *goquery.Document) (links []string, nextPage string) {
	doc.Find(selectorArticle).Each(func(_ int, art *goquery.Selection) {
		href, ok := art.Find(selectorTitleSection).Find(selectorTitleLink).Attr("href")
		if ok && href != "" {
			links = append(links, p.AbsoluteURL(href))
		}
	})

	if href, ok := doc.Find(selectorNextPage).First().Attr("href"); ok {
		nextPage = p.AbsoluteURL(href)
	}

	return links, nextPage
}

// TutorialLinks returns the detail-page links of the tutorial index, which
// uses a flat view instead of the paginated listing template.
func (p *Parser) TutorialLinks(doc *goquery.Document) []string {
	var links []string

	doc.Find(selectorTutorialRow).Each(func(_ int, row *goquery.Selection) {
		href, ok := row.Find("a").First().Attr("href")
		if ok && href != "" {
			links = append(links, p.AbsoluteURL(href))
		}
	})

	return links
}

// parseTitle reads the page title and its relative URL.
func parseTitle(art *goquery.Selection) (title, relURL string) {
	section := art.Find(selectorTitleSection)
	link := section.Find(selectorTitleLink).First()

	title = strings.TrimSpace(link.Text())
	relURL, _ = link.Attr("href")

	return title, relURL
}

// classify maps the section's default kind through the historical quirk that
// early press reviews were published as plain articles: any title containing
// "revue de presse" is a press review regardless of where it was listed.
func classify(defaultKind models.Kind, title string) models.Kind {
	if strings.Contains(strings.ToLower(title), "revue de presse") {
		return models.KindPressReview
	}

	return defaultKind
}

// parseDate reads the day / month / year spans of the publication date block.
func parseDate(art *goquery.Selection) models.PublishedDate {
	date := art.Find(selectorDate)

	return models.PublishedDate{
		Day:   strings.TrimSpace(date.Find("span.day").First().Text()),
		Month: strings.TrimSpace(date.Find("span.month").First().Text()),
		Year:  strings.TrimSpace(date.Find("span.year").First().Text()),
	}
}

// parseTags reads the taxonomy tags, in page order.
func parseTags(art *goquery.Selection) []string {
	var tags []string

	art.Find(selectorTitleSection).Find(selectorTags).Each(func(_ int, tag *goquery.Selection) {
		if text := strings.TrimSpace(tag.Text()); text != "" {
			tags = append(tags, text)
		}
	})

	return tags
}

// parseLegacyNode reads the CMS node id from the shortlink, when present.
// Custom page URLs do not carry it, the shortlink always does.
func parseLegacyNode(doc *goquery.Document) *int {
	href, ok := doc.Find(selectorShortlink).Attr("href")
	if !ok || !strings.Contains(href, "node") {
		return nil
	}

	segments := strings.Split(strings.TrimRight(href, "/"), "/")

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return nil
	}

	return &id
}

// outerHTML returns the full HTML of a selection, empty on error.
func outerHTML(s *goquery.Selection) string {
	html, err := goquery.OuterHtml(s)
	if err != nil {
		return ""
	}

	return html
}
