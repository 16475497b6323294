// Command seed_cache warms the company cache from the bulk dataset.
//
// It resolves each dataset company through the dataset adapter only (no
// network calls), completes the profile, and upserts it into company_cache.
// Useful for pre-populating a fresh database so first lookups are cache hits.
//
// Usage:
//
//	go run cmd/tools/seed_cache/main.go [-limit N]
//
// Requires DATABASE_URL and COMPANY_DATASET_PATH environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/pranav/placement-helper/internal/config"
	"github.com/pranav/placement-helper/internal/dataset"
	"github.com/pranav/placement-helper/internal/db"
	"github.com/pranav/placement-helper/internal/resolver"
	"github.com/pranav/placement-helper/internal/sources"
)

func main() {
	limit := flag.Int("limit", 1000, "maximum number of companies to seed (0 seeds all)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		fatal("DATABASE_URL environment variable not set")
	}
	if cfg.DatasetPath == "" {
		fatal("COMPANY_DATASET_PATH environment variable not set")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal("failed to connect to database: %v", err)
	}
	defer database.Close()

	loader := dataset.NewLoader(cfg.DatasetPath)
	adapter := sources.NewDatasetAdapter(loader)

	records := loader.All(ctx)
	fmt.Printf("dataset: %s\n", loader.Stats(ctx))

	seeded, failed := 0, 0
	for _, rec := range records {
		if *limit > 0 && seeded >= *limit {
			break
		}

		profile, err := adapter.TryResolve(ctx, rec.Name)
		if err != nil || profile == nil {
			failed++
			continue
		}
		resolver.EnsureComplete(profile)

		if err := database.SaveProfile(ctx, rec.Name, profile); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: failed to save %q: %v\n", rec.Name, err)
			failed++
			continue
		}
		seeded++
	}

	fmt.Printf("seeded %d companies (%d skipped)\n", seeded, failed)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
