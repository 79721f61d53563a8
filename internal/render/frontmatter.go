package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"geoscraper/internal/models"
	"geoscraper/pkg/utils"
)

const (
	// publicationTime is the fixed time-of-day stamped on every migrated page.
	publicationTime = "10:20"

	// descriptionLength caps front-matter descriptions before the marker.
	descriptionLength = 160
)

// Category labels used in front-matter.
const (
	CategoryPressReview = "revue de presse"
	CategoryArticle     = "article"
)

// FrontMatter is the metadata header of a migrated document. Field order is
// the serialization order.
type FrontMatter struct {
	Authors     []string           `yaml:"authors"`
	Categories  []string           `yaml:"categories"`
	Date        string             `yaml:"date"`
	Description string             `yaml:"description"`
	Image       string             `yaml:"image"`
	License     string             `yaml:"license"`
	Legacy      frontmatterLegacy  `yaml:"legacy"`
	Robots      string             `yaml:"robots"`
	Tags        []string           `yaml:"tags"`
	Title       string             `yaml:"title"`
}

type frontmatterLegacy struct {
	Node *int `yaml:"node"`
}

// BuildFrontMatter assembles the metadata block for one record. The
// introduction is the already converted markdown intro; legacyNode may be nil.
func BuildFrontMatter(kind models.Kind, author string, date ResolvedDate, introduction string, legacyNode *int, tags []string, title string) *FrontMatter {
	categories := []string{CategoryArticle}
	if kind == models.KindPressReview {
		categories = []string{CategoryPressReview}
	}

	description := utils.CollapseWhitespace(introduction)
	if runes := []rune(description); len(runes) > descriptionLength {
		description = string(runes[:descriptionLength])
	}

	return &FrontMatter{
		Authors:     []string{author},
		Categories:  categories,
		Date:        date.String() + " " + publicationTime,
		Description: description + "...",
		Image:       "",
		License:     "default",
		Legacy:      frontmatterLegacy{Node: legacyNode},
		Robots:      "index, follow",
		Tags:        tags,
		Title:       title,
	}
}

// Marshal serializes the block with its leading delimiter. The trailing
// delimiter line is written by the caller.
func (fm *FrontMatter) Marshal() (string, error) {
	out, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front-matter: %w", err)
	}

	return "---\n" + string(out), nil
}
