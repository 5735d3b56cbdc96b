package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/services/branding"
	"github.com/ternarybob/brandex/internal/services/classifier"
	"github.com/ternarybob/brandex/internal/services/collector"
	"github.com/ternarybob/brandex/internal/storage/badger"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	targetURL    = flag.String("url", "", "Page URL to extract a branding profile from (required)")
	debugMode    = flag.Bool("debug", false, "Retain diagnostic payloads in the emitted profile")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Brandex version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	if *targetURL == "" {
		fmt.Fprintln(os.Stderr, "Usage: brandex -url <page-url> [-config brandex.toml] [-debug]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("brandex.toml"); err == nil {
			configFiles = append(configFiles, "brandex.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if *debugMode {
		config.Debug = true
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Str("url", *targetURL).
		Str("provider", string(config.LLM.DefaultProvider)).
		Bool("debug", config.IsDebugEnabled()).
		Msg("Application configuration loaded")

	// Storage is optional: an empty path runs without persistence.
	var storage interfaces.StorageManager
	if config.Storage.Badger.Path != "" {
		storage, err = badger.NewManager(logger, &config.Storage.Badger)
		if err != nil {
			logger.Warn().Err(err).Msg("Storage unavailable, continuing without persistence")
		} else {
			defer storage.Close()
		}
	}

	pool := collector.NewBrowserPool(config.Browser, logger)
	if err := pool.Init(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize browser pool")
		os.Exit(1)
	}
	defer pool.Shutdown()

	// A classifier that cannot start (missing API key, bad config) degrades
	// the run to heuristic-only rather than aborting it.
	var kv interfaces.KeyValueStorage
	if storage != nil {
		kv = storage.KeyValueStorage()
	}
	clf, err := classifier.NewClassifier(config, kv, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Classifier unavailable, running heuristic-only")
		clf = nil
	}
	if clf != nil {
		defer clf.Close()
	}

	service := branding.NewService(config, pool, clf, storage, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	profile, err := service.Extract(ctx, *targetURL)
	if err != nil {
		logger.Fatal().Err(err).Str("url", *targetURL).Msg("Branding extraction failed")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode branding profile")
		os.Exit(1)
	}
	fmt.Println(string(out))
}
