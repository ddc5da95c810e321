package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"astro-context-be/internal/bootstrap"
	"astro-context-be/internal/catalog"
	"astro-context-be/internal/config"
	"astro-context-be/internal/tracer"

	"github.com/fatih/color"
)

// The daily cron entrypoint. Walks the full scrape catalog for one date
// and reports the run summary.
func main() {
	dateFlag := flag.String("date", "", "ingestion date as YYYY-MM-DD (default: today UTC)")
	flag.Parse()

	date := time.Now().UTC()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("[FATAL] Invalid -date value %q: %v", *dateFlag, err)
		}
		date = parsed
	}

	cfg := config.Load()

	if err := catalog.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid scrape catalog: %v", err)
	}

	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("[WARN] Tracer shutdown: %v", err)
		}
	}()

	db := bootstrap.NewGormDB(cfg)
	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("[WARN] Failed to start event consumer: %v", err)
	}

	color.Cyan("🚀 Starting daily ingestion for %s (%d scrape targets)", date.Format("2006-01-02"), catalog.TotalTargetCount())

	summary, err := container.IngestionService.RunDailyIngestion(ctx, date)
	if err != nil {
		color.Red("Run aborted: %v", err)
		if summary == nil {
			os.Exit(1)
		}
	}

	color.Cyan("\nIngestion run %s", summary.RunId)
	color.Green("Uploaded: %d/%d", summary.Uploaded, summary.Attempted)
	if len(summary.Failed) > 0 {
		color.Red("Failed: %d", len(summary.Failed))
		for _, f := range summary.Failed {
			color.Red("  - %s (%s)", f.DocumentId, f.Reason)
		}
	}

	if summary.Uploaded == 0 {
		color.Red("Nothing was ingested, check source and provider availability")
		os.Exit(1)
	}
}
