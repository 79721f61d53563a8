package parsers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"geoscraper/internal/models"
)

// Press-review template selectors.
const (
	selectorSectionHead = "p.typeNews"
	selectorNewsDetails = "div.news-details"
	selectorNewsTitle   = "span.news-title"
	selectorDirectNews  = "directNews"
)

// defaultSectionHeading collects news that appear before any section marker.
const defaultSectionHeading = "Non classés"

// ParsePressReview extracts a record from a revue de presse detail page.
func (p *Parser) ParsePressReview(doc *goquery.Document) (*models.Record, error) {
	art := doc.Find(selectorArticle).First()
	if art.Length() == 0 {
		return nil, ErrNoArticle
	}

	title, relURL := parseTitle(art)

	rec := &models.Record{
		Kind:          classify(models.KindPressReview, title),
		Title:         title,
		URLFull:       relURL,
		PublishedDate: parseDate(art),
		Tags:          parseTags(art),
		Intro:         parseReviewIntro(art),
		Sections:      parseSections(art),
		LegacyNode:    parseLegacyNode(doc),
		// The review has no byline; credit the collective.
		Author: models.Author{
			Name:      "Geotribu",
			Thumbnail: "?",
		},
	}

	return rec, nil
}

// parseReviewIntro concatenates the paragraphs preceding the first news
// entry.
func parseReviewIntro(art *goquery.Selection) string {
	var intro strings.Builder

	art.Find("p").EachWithBreak(func(_ int, para *goquery.Selection) bool {
		if para.HasClass(selectorDirectNews) {
			return false
		}

		intro.WriteString(outerHTML(para))

		return true
	})

	return intro.String()
}

// parseSections walks section markers and news entries in document order,
// grouping each entry under the latest section heading.
func parseSections(art *goquery.Selection) []models.NewsSection {
	var sections []models.NewsSection

	current := -1

	art.Find(selectorNewsDetails + ", " + selectorSectionHead).Each(func(_ int, s *goquery.Selection) {
		if s.Is(selectorSectionHead) {
			sections = append(sections, models.NewsSection{
				Heading: outerHTML(s),
			})
			current = len(sections) - 1

			return
		}

		if current == -1 {
			sections = append(sections, models.NewsSection{
				Heading: defaultSectionHeading,
			})
			current = 0
		}

		sections[current].Items = append(sections[current].Items, parseNewsItem(s))
	})

	return sections
}

func parseNewsItem(s *goquery.Selection) models.NewsItem {
	item := models.NewsItem{
		Title: strings.TrimSpace(s.Find(selectorNewsTitle).First().Text()),
	}

	if img := s.Find("img").First(); img.Length() > 0 {
		item.Thumbnail = outerHTML(img)
	}

	s.Find("p, iframe, li").Each(func(_ int, frag *goquery.Selection) {
		if html := outerHTML(frag); html != "" {
			item.Fragments = append(item.Fragments, html)
		}
	})

	return item
}
