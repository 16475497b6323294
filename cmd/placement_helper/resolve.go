package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranav/placement-helper/internal/config"
	"github.com/pranav/placement-helper/internal/dataset"
	"github.com/pranav/placement-helper/internal/db"
	"github.com/pranav/placement-helper/internal/resolver"
	"github.com/pranav/placement-helper/internal/sources"
)

var resolveNoCache bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <company name>",
	Short: "Resolve a company profile on the command line",
	Long: `Run the full resolution cascade for one company and print the resulting
profile as JSON. Works without DATABASE_URL; caching is skipped in that case.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveNoCache, "no-cache", false, "Skip the database cache even when DATABASE_URL is set")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var store sources.ProfileStore
	if cfg.DatabaseURL != "" && !resolveNoCache {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		store = database
	}

	svc := newResolver(store, cfg)
	result := svc.Resolve(ctx, name)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Profile); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Err)
	}
	return nil
}

// newResolver assembles the resolution cascade the same way the server does.
func newResolver(store sources.ProfileStore, cfg *config.Config) *resolver.Service {
	client := sources.NewClient(cfg.SourceTimeout)
	loader := dataset.NewLoader(cfg.DatasetPath)
	return resolver.New(store, sources.NewDatasetAdapter(loader),
		sources.NewSerpAPIAdapter(client, cfg.SerpAPIKey),
		sources.NewWikidataAdapter(client),
		sources.NewWikipediaAdapter(client),
		sources.NewDuckDuckGoAdapter(client),
	)
}
