package crawler

import (
	"context"
	"fmt"

	"geoscraper/internal/config"
	"geoscraper/internal/crawler/parsers"
	"geoscraper/internal/logger"
	"geoscraper/internal/models"
	"geoscraper/pkg/utils"
)

// Handler consumes one scraped record. Errors abort that record only; the
// crawl moves on to the next page.
type Handler func(*models.Record) error

// Client walks the legacy site's sections and hands each scraped record to a
// handler.
type Client struct {
	scraper *Scraper
	parser  *parsers.Parser
	cfg     *config.Config
	log     *logger.Logger
}

// NewClient creates a crawler client.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		scraper: NewScraper(&cfg.Crawl),
		parser:  parsers.New(cfg.Site.BaseURL),
		cfg:     cfg,
		log:     log,
	}
}

// CrawlSection walks one section's listing pages, fetches every discovered
// detail page and hands the parsed records to handle.
func (c *Client) CrawlSection(ctx context.Context, section config.SectionConfig, handle Handler) (FetchStats, error) {
	frontier := NewFrontier()

	if err := c.discover(ctx, section, frontier); err != nil {
		return frontier.Stats(), err
	}

	c.log.Info("section discovered", "section", section.Name, "pages", frontier.Stats().Discovered)

	for {
		url, ok := frontier.Next()
		if !ok {
			break
		}

		if err := c.processPage(ctx, section, url, handle); err != nil {
			// Per-record isolation: a broken page must not halt the crawl.
			c.log.Error("page failed", "url", url, "error", err)
			frontier.RecordResult(false)

			continue
		}

		frontier.RecordResult(true)
	}

	return frontier.Stats(), nil
}

// discover fills the frontier from the section's listing pages, following
// bottom pagination until the last page.
func (c *Client) discover(ctx context.Context, section config.SectionConfig, frontier *Frontier) error {
	pageURL := utils.AbsoluteURL(c.cfg.Site.BaseURL, section.Path)
	pages := 0

	for pageURL != "" {
		pages++
		if c.cfg.Crawl.MaxPages > 0 && pages > c.cfg.Crawl.MaxPages {
			c.log.Warn("page limit reached", "section", section.Name, "limit", c.cfg.Crawl.MaxPages)

			break
		}

		doc, err := c.scraper.FetchDocument(ctx, pageURL)
		if err != nil {
			return fmt.Errorf("failed to fetch listing page: %w", err)
		}

		var links []string

		var next string

		// The tutorial index is a single flat view; other sections paginate.
		if section.RecordKind() == models.KindTutorial {
			links = c.parser.TutorialLinks(doc)
		} else {
			links, next = c.parser.ListingLinks(doc)
		}

		for _, link := range links {
			frontier.Push(link)
		}

		c.log.Debug("listing page parsed", "url", pageURL, "links", len(links))
		pageURL = next
	}

	return nil
}

func (c *Client) processPage(ctx context.Context, section config.SectionConfig, url string, handle Handler) error {
	doc, err := c.scraper.FetchDocument(ctx, url)
	if err != nil {
		return err
	}

	var rec *models.Record

	if section.RecordKind() == models.KindPressReview {
		rec, err = c.parser.ParsePressReview(doc)
	} else {
		rec, err = c.parser.ParseArticle(doc, section.RecordKind())
	}

	if err != nil {
		return err
	}

	c.log.Info("record scraped", "kind", rec.Kind, "title", rec.Title)

	return handle(rec)
}
