package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docsiftio/docsift/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		specsDir    string
		inputDir    string
		outputDir   string
		maxSections int
		workers     int
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		cacheStrict bool
		enablePDF   bool
		configPath  string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&specsDir, "specs", "input_specs", "Directory scanned for input_spec_*.json files")
	flag.StringVar(&inputDir, "input", "input", "Base directory for documents referenced by input specs")
	flag.StringVar(&outputDir, "output", "output", "Base output directory; additional specs write to numbered siblings")
	flag.IntVar(&maxSections, "max.sections", 0, "Cap on ranked sections per output (0 keeps all)")
	flag.IntVar(&workers, "workers", 0, "Concurrent documents per spec (0 picks a default)")
	flag.StringVar(&cacheDir, "cache.dir", ".docsift-cache", "Analysis cache directory path (empty disables caching)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheStrict, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render each run report as PDF")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("docsift %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		SpecsDir:         specsDir,
		InputDir:         inputDir,
		OutputDir:        outputDir,
		MaxSections:      maxSections,
		Workers:          workers,
		CacheDir:         cacheDir,
		CacheMaxAge:      cacheMaxAge,
		CacheClear:       cacheClear,
		CacheStrictPerms: cacheStrict,
		EnablePDF:        enablePDF,
		Verbose:          verbose,
	}
	// Positional arguments are explicit input spec files and disable the
	// directory scan.
	cfg.SpecPaths = flag.Args()

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("invalid config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when there was nothing to process, 1 when
		// some input specs failed.
		if errors.Is(err, app.ErrNoInputSpecs) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
