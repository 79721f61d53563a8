package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"geoscraper/internal/logger"
	"geoscraper/internal/markdown"
	"geoscraper/internal/models"
	"geoscraper/internal/output"
	"geoscraper/pkg/utils"
)

// thumbnailMarker is the attribute-list annotation appended to news
// thumbnails so the target theme can style them.
const thumbnailMarker = "{: .img-rdp-news-thumb }"

// ErrStrictValidation is returned when a rendered document fails validation
// in strict mode.
var ErrStrictValidation = errors.New("rendered document failed validation")

// DocumentChecker inspects a rendered document and returns warnings.
type DocumentChecker interface {
	Check(doc string) []string
}

// Options tunes renderer behaviour.
type Options struct {
	AppendYearToTitle bool
	ApplyAllRewrites  bool
	StrictValidation  bool
}

// Renderer composes the date resolver, URL rewriter, front-matter and title
// builders into the per-record pipeline, and owns the redirect accumulator.
type Renderer struct {
	conv      *markdown.Converter
	dates     *DateResolver
	rewriter  *Rewriter
	writer    *output.Writer
	redirects *output.RedirectMap
	checker   DocumentChecker
	log       *logger.Logger
	opts      Options
}

// NewRenderer creates a renderer writing through writer. checker may be nil.
func NewRenderer(writer *output.Writer, checker DocumentChecker, log *logger.Logger, opts Options) *Renderer {
	return &Renderer{
		conv:      markdown.NewConverter(),
		dates:     NewDateResolver(),
		rewriter:  NewRewriter(opts.ApplyAllRewrites),
		writer:    writer,
		redirects: output.NewRedirectMap(),
		checker:   checker,
		log:       log,
		opts:      opts,
	}
}

// Redirects exposes the accumulated redirect map for flushing at crawl end.
func (r *Renderer) Redirects() *output.RedirectMap {
	return r.redirects
}

// Render converts one scraped record into a markdown document, writes it and
// records its redirect entry. It returns the relative output path.
func (r *Renderer) Render(rec *models.Record) (string, error) {
	date := r.dates.Resolve(rec)
	if !date.IsResolved() {
		r.log.Warn("date did not resolve, using raw value", "url", rec.URLFull, "raw", date.String())
	}

	node := resolveLegacyNode(rec)
	relPath := r.documentPath(rec, date)

	if node != nil {
		r.redirects.Add(*node, relPath)
	} else {
		r.log.Warn("no legacy node id, skipping redirect entry", "url", rec.URLFull)
	}

	doc, err := r.compose(rec, date, node)
	if err != nil {
		return "", err
	}

	if r.checker != nil {
		warnings := r.checker.Check(doc)
		for _, w := range warnings {
			r.log.Warn("document validation", "path", relPath, "issue", w)
		}

		if len(warnings) > 0 && r.opts.StrictValidation {
			return "", fmt.Errorf("%w: %s", ErrStrictValidation, relPath)
		}
	}

	if err := r.writer.WriteDocument(relPath, doc); err != nil {
		return "", err
	}

	return relPath, nil
}

// compose assembles front-matter, title, publication date line, intro, body
// and author block.
func (r *Renderer) compose(rec *models.Record, date ResolvedDate, node *int) (string, error) {
	introMD := ""

	if rec.Intro != "" {
		converted, err := r.conv.Convert(rec.Intro)
		if err != nil {
			return "", fmt.Errorf("failed to convert intro: %w", err)
		}

		introMD = r.rewriter.Rewrite(converted)
	}

	title := DisplayTitle(rec.Title, r.opts.AppendYearToTitle, date)

	fm := BuildFrontMatter(rec.Kind, authorName(rec), date, introMD, node, rec.Tags, title)

	header, err := fm.Marshal()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteString("---\n\n")
	sb.WriteString(Heading(rec.Title, r.opts.AppendYearToTitle, date))
	sb.WriteString("Date de publication : " + date.String() + "\n\n")

	if introMD != "" {
		sb.WriteString(introMD + "\n\n")
	}

	// Early press reviews were published as plain articles: they classify as
	// press reviews but carry a body instead of sections.
	if rec.IsPressReview() && len(rec.Sections) > 0 {
		if err := r.composeSections(&sb, rec); err != nil {
			return "", err
		}
	} else {
		if err := r.composeBody(&sb, rec); err != nil {
			return "", err
		}
	}

	if !rec.IsPressReview() {
		if err := r.composeAuthor(&sb, rec); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

// composeSections renders the grouped news of a press review.
func (r *Renderer) composeSections(sb *strings.Builder, rec *models.Record) error {
	for _, section := range rec.Sections {
		heading, err := r.conv.Convert(section.Heading)
		if err != nil {
			return fmt.Errorf("failed to convert section heading: %w", err)
		}

		sb.WriteString("## " + utils.CollapseWhitespace(heading) + "\n\n")

		for _, item := range section.Items {
			if item.Title != "" {
				sb.WriteString("### " + strings.TrimSpace(item.Title) + "\n\n")
			}

			if item.Thumbnail != "" {
				thumb, err := r.conv.Convert(item.Thumbnail)
				if err != nil {
					return fmt.Errorf("failed to convert thumbnail: %w", err)
				}

				thumb = r.rewriter.Rewrite(utils.CollapseWhitespace(thumb))
				sb.WriteString(thumb + thumbnailMarker + "\n\n")
			}

			for _, fragment := range item.Fragments {
				rendered, err := r.renderFragment(fragment)
				if err != nil {
					return err
				}

				if rendered != "" {
					sb.WriteString(rendered + "\n\n")
				}
			}
		}
	}

	return nil
}

// composeBody renders the fragments of an article or tutorial.
func (r *Renderer) composeBody(sb *strings.Builder, rec *models.Record) error {
	for _, fragment := range rec.Body {
		rendered, err := r.renderFragment(fragment)
		if err != nil {
			return err
		}

		if rendered == "" {
			continue
		}

		if !markdown.IsIframe(fragment) {
			rendered = markdown.FormatTables(utils.LeftStripLines(rendered))
		}

		sb.WriteString(rendered + "\n\n")
	}

	return nil
}

// composeAuthor appends the author block. Known contributors are included by
// snippet reference, everyone else gets an inline portrait and description.
func (r *Renderer) composeAuthor(sb *strings.Builder, rec *models.Record) error {
	name := strings.TrimSpace(rec.Author.Name)
	if name == "" && rec.Author.Thumbnail == "" {
		return nil
	}

	sb.WriteString("----\n\n## Auteur\n\n")

	if snippet, ok := AuthorSnippets[strings.ToLower(name)]; ok {
		sb.WriteString("--8<-- \"" + snippet + "\"\n")

		return nil
	}

	if rec.Author.Thumbnail != "" && rec.Author.Thumbnail != "?" {
		url := r.rewriter.Rewrite(rec.Author.Thumbnail)
		sb.WriteString(fmt.Sprintf("![Portrait de %s](%s)%s\n\n", name, url, thumbnailMarker))
	}

	if name != "" {
		sb.WriteString("**" + name + "**\n\n")
	}

	for _, para := range rec.Author.Description {
		converted, err := r.conv.Convert(para)
		if err != nil {
			return fmt.Errorf("failed to convert author description: %w", err)
		}

		converted = r.rewriter.Rewrite(converted)
		if converted != "" {
			sb.WriteString(converted + "\n\n")
		}
	}

	return nil
}

// renderFragment converts one HTML fragment, passing iframes through
// untouched so embedded players are not mangled.
func (r *Renderer) renderFragment(fragment string) (string, error) {
	if markdown.IsIframe(fragment) {
		return strings.TrimSpace(fragment), nil
	}

	converted, err := r.conv.ConvertFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("failed to convert fragment: %w", err)
	}

	return strings.TrimSpace(r.rewriter.Rewrite(converted)), nil
}

// documentPath derives the output location from category, date and slug.
// Records whose date never resolved land flat, without a year directory.
func (r *Renderer) documentPath(rec *models.Record, date ResolvedDate) string {
	if !date.IsResolved() {
		return fmt.Sprintf("%s_%s.md", rec.Kind, date.String())
	}

	category := "articles"
	if rec.IsPressReview() {
		category = "rdp"
	}

	year := date.Year()

	if rec.IsPressReview() {
		return fmt.Sprintf("%s/%s/rdp_%s.md", category, year, date.String())
	}

	return fmt.Sprintf("%s/%s/%s_%s.md", category, year, date.String(), Slugify(rec.Title))
}

// resolveLegacyNode returns the explicit node id when scraped, else tries to
// read a numeric trailing path segment from the page URL.
func resolveLegacyNode(rec *models.Record) *int {
	if rec.LegacyNode != nil {
		return rec.LegacyNode
	}

	segments := strings.Split(strings.TrimRight(rec.URLFull, "/"), "/")
	last := segments[len(segments)-1]

	if id, err := strconv.Atoi(last); err == nil {
		return &id
	}

	return nil
}

func authorName(rec *models.Record) string {
	if name := strings.TrimSpace(rec.Author.Name); name != "" {
		return name
	}

	return "Geotribu"
}
