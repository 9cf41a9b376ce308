package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"code-lookup/internal/handler/middleware"
	"code-lookup/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the declarative schema with the atlas CLI. The service also
// creates the schema on startup, so this is only needed for managed rollouts.
func main() {
	schema := flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema URL")
	devURL := flag.String("dev-url", "docker://postgres/16/dev", "dev database used by atlas to normalize the schema")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *schema,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	logger.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
