// Package main provides the renderer command: it replays a previously
// crawled items dump through the render pipeline without touching the
// network.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"geoscraper/internal/config"
	"geoscraper/internal/logger"
	"geoscraper/internal/output"
	"geoscraper/internal/render"
	"geoscraper/internal/validator"
)

func main() {
	configFile := flag.String("config", "configs/crawler.yaml", "Path to YAML configuration file")
	inputFile := flag.String("input", "", "Items dump to replay (defaults to the configured dump)")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	crawlerName := flag.String("name", "geoscraper", "Crawler name used in the redirect map filename")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	input := *inputFile
	if input == "" {
		input = filepath.Join(cfg.Output.Dir, cfg.Output.ItemsDump)
	}

	fmt.Printf("⚙️  Replaying items dump: %s\n", input)

	records, err := output.ReadItemsDump(input)
	if err != nil {
		log.Fatalf("❌ Failed to read items dump: %v\n", err)
	}

	fmt.Printf("✅ Loaded %d records\n\n", len(records))

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v\n", err)
	}

	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	writer := output.NewWriter(cfg.Output.Dir)
	renderer := render.NewRenderer(writer, validator.New(), appLog, render.Options{
		AppendYearToTitle: cfg.Render.AppendYearToTitle,
		ApplyAllRewrites:  cfg.Render.ApplyAllRewrites,
		StrictValidation:  cfg.Render.StrictValidation,
	})

	rendered := 0
	failed := 0

	for _, rec := range records {
		path, err := renderer.Render(rec)
		if err != nil {
			appLog.Error("render failed", "title", rec.Title, "error", err)
			failed++

			continue
		}

		rendered++
		appLog.Debug("document written", "path", path)
	}

	redirectFile := filepath.Join(cfg.Output.Dir, fmt.Sprintf("redirection_mapping_%s.txt", *crawlerName))
	if err := renderer.Redirects().Flush(redirectFile); err != nil {
		log.Fatalf("❌ Failed to write redirect map: %v\n", err)
	}

	fmt.Printf("🏁 Done: %d rendered, %d failed, output in %s\n", rendered, failed, cfg.Output.Dir)
}
