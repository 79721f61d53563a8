package parsers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"geoscraper/internal/models"
)

// Article template selectors.
const (
	selectorIntro       = "div.field-name-field-introduction"
	selectorBody        = "div.field-name-body"
	selectorAuthorBlock = "div.view.view-about-author"
	selectorAuthorName  = "div.views-field.views-field-field-nom-complet"
	selectorAuthorDesc  = "div.views-field.views-field-field-description p"
	selectorUsername    = "span.username a"
)

// ParseArticle extracts a record from an article or tutorial detail page.
func (p *Parser) ParseArticle(doc *goquery.Document, kind models.Kind) (*models.Record, error) {
	art := doc.Find(selectorArticle).First()
	if art.Length() == 0 {
		return nil, ErrNoArticle
	}

	title, relURL := parseTitle(art)

	rec := &models.Record{
		Kind:          classify(kind, title),
		Title:         title,
		URLFull:       relURL,
		PublishedDate: parseDate(art),
		Tags:          parseTags(art),
		LegacyNode:    parseLegacyNode(doc),
	}

	// Tutorials carry a dedicated introduction field; plain articles do not.
	if intro := art.Find(selectorIntro).First(); intro.Length() > 0 {
		rec.Intro = outerHTML(intro)
	}

	art.Find(selectorBody).Each(func(_ int, body *goquery.Selection) {
		if html := outerHTML(body); html != "" {
			rec.Body = append(rec.Body, html)
		}
	})

	rec.Author = p.parseAuthor(art)

	return rec, nil
}

// parseAuthor reads the about-author block, falling back to the byline
// username when the page has no such block.
func (p *Parser) parseAuthor(art *goquery.Selection) models.Author {
	block := art.Find(selectorAuthorBlock)
	if block.Length() == 0 {
		return models.Author{
			Name:      strings.TrimSpace(art.Find(selectorTitleSection).Find(selectorUsername).First().Text()),
			Thumbnail: "?",
		}
	}

	author := models.Author{Thumbnail: "?"}

	if src, ok := block.Find("img").First().Attr("src"); ok && src != "" {
		author.Thumbnail = p.AbsoluteURL(src)
	}

	author.Name = strings.TrimSpace(block.Find(selectorAuthorName).Find("div.field-content").First().Text())
	if author.Name == "" {
		author.Name = "?"
	}

	block.Find(selectorAuthorDesc).Each(func(_ int, para *goquery.Selection) {
		if html := outerHTML(para); html != "" {
			author.Description = append(author.Description, html)
		}
	})

	return author
}
