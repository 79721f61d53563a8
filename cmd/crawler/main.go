// Package main provides the crawler command: it walks the legacy site and
// writes migrated markdown documents, a redirect map and a raw items dump.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"geoscraper/internal/config"
	"geoscraper/internal/crawler"
	"geoscraper/internal/logger"
	"geoscraper/internal/models"
	"geoscraper/internal/output"
	"geoscraper/internal/render"
	"geoscraper/internal/validator"
)

func main() {
	configFile := flag.String("config", "configs/crawler.yaml", "Path to YAML configuration file")
	sectionName := flag.String("section", "", "Only crawl the named section")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	crawlerName := flag.String("name", "geoscraper", "Crawler name used in the redirect map filename")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	fmt.Printf("✅ Configuration loaded: %s\n\n", cfg)

	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	sections := cfg.EnabledSections()

	if *sectionName != "" {
		sec, ok := cfg.SectionByName(*sectionName)
		if !ok {
			log.Fatalf("❌ Unknown section: %s\n", *sectionName)
		}

		sections = []config.SectionConfig{sec}
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v\n", err)
	}

	dump, err := output.OpenItemsDump(filepath.Join(cfg.Output.Dir, cfg.Output.ItemsDump))
	if err != nil {
		log.Fatalf("❌ Failed to open items dump: %v\n", err)
	}

	writer := output.NewWriter(cfg.Output.Dir)
	renderer := render.NewRenderer(writer, validator.New(), appLog, render.Options{
		AppendYearToTitle: cfg.Render.AppendYearToTitle,
		ApplyAllRewrites:  cfg.Render.ApplyAllRewrites,
		StrictValidation:  cfg.Render.StrictValidation,
	})
	client := crawler.NewClient(cfg, appLog)

	ctx := context.Background()
	rendered := 0

	for i, section := range sections {
		fmt.Printf("----------------------------------------------------------------\n")
		fmt.Printf("📦 Section %d/%d: %s (%s)\n", i+1, len(sections), section.Name, section.Kind)

		stats, err := client.CrawlSection(ctx, section, func(rec *models.Record) error {
			if dumpErr := dump.Write(rec); dumpErr != nil {
				appLog.Warn("items dump write failed", "error", dumpErr)
			}

			path, renderErr := renderer.Render(rec)
			if renderErr != nil {
				return renderErr
			}

			rendered++
			appLog.Debug("document written", "path", path)

			return nil
		})
		if err != nil {
			fmt.Printf("❌ Section %s failed: %v\n", section.Name, err)

			continue
		}

		fmt.Printf("✅ Section %s: %s\n", section.Name, stats)
	}

	if err := dump.Close(); err != nil {
		appLog.Error("failed to close items dump", "error", err)
	}

	redirectFile := filepath.Join(cfg.Output.Dir, fmt.Sprintf("redirection_mapping_%s.txt", *crawlerName))
	if err := renderer.Redirects().Flush(redirectFile); err != nil {
		log.Fatalf("❌ Failed to write redirect map: %v\n", err)
	}

	fmt.Printf("\n🏁 Done: %d documents, %d redirect entries in %s\n", rendered, renderer.Redirects().Len(), cfg.Output.Dir)
}

func printUsage() {
	fmt.Println("Usage: crawler [flags]")
	fmt.Println()
	fmt.Println("Crawls the legacy site configured in the YAML file and converts every")
	fmt.Println("page into a markdown document with YAML front-matter, rewriting broken")
	fmt.Println("legacy media URLs to their CDN location.")
	fmt.Println()
	flag.PrintDefaults()
}
