package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictbuild/internal/adapter/source"
	"github.com/heartmarshall/dictbuild/internal/adapter/sqlite"
	"github.com/heartmarshall/dictbuild/internal/app/builder"
	"github.com/heartmarshall/dictbuild/internal/config"
	"github.com/heartmarshall/dictbuild/internal/domain"
)

// RunOptions carries the command-line selections. Non-empty directories
// override the configured ones.
type RunOptions struct {
	ConfigPath   string
	ResourcesDir string
	RawDir       string
	Sample       bool
	// Force overwrites existing artifacts and downloads cached raw
	// sources again.
	Force     bool
	Languages []string
}

// Run is the application entry point. It loads configuration, initializes
// the logger and runs one build. Per-language failures are logged and do
// not fail the run; only configuration errors and an unwritable manifest do.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.ResourcesDir != "" {
		cfg.Build.ResourcesDir = opts.ResourcesDir
	}
	if opts.RawDir != "" {
		cfg.Build.RawDir = opts.RawDir
	}

	logger := NewLogger(cfg.Log)

	mode := domain.BuildModeFull
	if opts.Sample {
		mode = domain.BuildModeSample
	}

	logger.Info("starting dictionary build",
		slog.String("version", BuildVersion()),
		slog.String("mode", mode.String()),
		slog.String("resources_dir", cfg.Build.ResourcesDir),
		slog.String("raw_dir", cfg.Build.RawDir),
	)

	ctx, cancel := context.WithTimeout(ctx, cfg.Build.Timeout)
	defer cancel()

	orchestrator := builder.NewOrchestrator(
		logger,
		builder.DefaultRegistry(),
		source.NewAcquirer(cfg.Build.RawDir, opts.Force, cfg.Sources.HTTPTimeout, logger),
		builder.NewSources(cfg.Sources.WiktionaryURL, cfg.Sources.CEDICTURL, cfg.Sources.JMdictURL),
		sqlite.NewWriter(cfg.Build.BatchSize, logger),
		cfg.Build.ResourcesDir,
	)

	manifest, err := orchestrator.Run(ctx, builder.Options{
		Mode:      mode,
		Force:     opts.Force,
		Languages: opts.Languages,
	})
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	for lang, r := range orchestrator.Results() {
		if r.Err != nil {
			logger.Warn("language not built",
				slog.String("language", lang),
				slog.String("error", r.Err.Error()),
			)
		}
	}
	if manifest != nil {
		logger.Info("dictionary build finished",
			slog.String("run_id", manifest.RunID),
			slog.Int("dictionaries", len(manifest.Dictionaries)),
		)
	}
	return nil
}
