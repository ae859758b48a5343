// Command awmoltin rebuilds the Adventure Works catalog graph from the raw
// flat-file exports and emits the recommendation-engine extracts plus the
// publish plan consumed by the commerce-platform glue.
//
// Usage:
//
//	awmoltin [--skip step]... <path to Adventure Works catalog files>
//
// Recognized --skip steps: preprocess, recommendations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/joho/godotenv"

	"github.com/pveller/adventureworks-moltin/internal/catalog"
	"github.com/pveller/adventureworks-moltin/internal/config"
	"github.com/pveller/adventureworks-moltin/internal/dataset"
	"github.com/pveller/adventureworks-moltin/internal/logging"
	"github.com/pveller/adventureworks-moltin/internal/moltin"
	"github.com/pveller/adventureworks-moltin/internal/preprocess"
	"github.com/pveller/adventureworks-moltin/internal/recommend"
)

// stepList collects repeatable --skip flags.
type stepList []string

func (s *stepList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stepList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func (s stepList) Has(step string) bool { return slices.Contains(s, step) }

func main() {
	var skip stepList
	flag.Var(&skip, "skip", "pipeline step to skip (repeatable): preprocess, recommendations")
	flag.Parse()

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("moltin credentials", "configured", cfg.Moltin.ClientID != "")

	dir := flag.Arg(0)
	if dir == "" {
		slog.Error("missing required argument: path to the Adventure Works catalog files")
		os.Exit(1)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		slog.Error("catalog path is not a directory", "path", dir)
		os.Exit(1)
	}

	if err := run(context.Background(), dir, skip); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("new catalog is ready to go")
}

func run(ctx context.Context, dir string, skip stepList) error {
	if skip.Has("preprocess") {
		slog.Info("skipping preprocess step")
	} else {
		if err := preprocess.Run(dir); err != nil {
			return err
		}
		slog.Info("preprocess complete")
	}

	data, err := dataset.Load(ctx, dir)
	if err != nil {
		return err
	}

	graph, err := catalog.Assemble(data)
	if err != nil {
		return err
	}

	plan := moltin.BuildPlan(graph)
	slog.Info("publish plan ready",
		"categories", len(plan.Categories),
		"variations", len(plan.Variations),
		"products", len(plan.Products),
	)

	if skip.Has("recommendations") {
		slog.Info("skipping recommendations step")
		return nil
	}
	if err := recommend.WriteCatalog(dir, graph); err != nil {
		return err
	}
	if err := recommend.WriteUsage(dir, graph); err != nil {
		return err
	}
	slog.Info("recommendation extracts written", "dir", dir)

	return nil
}
