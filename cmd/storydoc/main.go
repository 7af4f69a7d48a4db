package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"storydoc/internal/cache"
	"storydoc/internal/config"
	"storydoc/internal/exporter"
	"storydoc/internal/extract"
	"storydoc/internal/manifest"
	"storydoc/internal/summarize"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storydoc <storybook-url> [output]",
		Short: "Export a running Storybook into one linear Markdown document",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runExport,
	}
	cfgPath   string
	cachePath string
	headless  bool
	timeoutMs int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.Flags().StringVar(&cachePath, "cache", "", "Path to a SQLite extraction cache (disabled when empty)")
	rootCmd.Flags().BoolVar(&headless, "headless", true, "Run the browser headless")
	rootCmd.Flags().IntVar(&timeoutMs, "timeout", 0, "Per-story navigation timeout in milliseconds")

	rootCmd.AddCommand(storiesCmd)
}

func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = headless
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Browser.NavigationTimeoutMs = timeoutMs
	}
	return cfg
}

func runExport(cmd *cobra.Command, args []string) {
	source := args[0]
	cfg := loadConfig(cmd)

	output := cfg.Output.Path
	if len(args) > 1 {
		output = args[1]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// 1. Manifest client and browser extractor
	client := manifest.NewClient(source, time.Duration(cfg.Manifest.TimeoutMs)*time.Millisecond, logger)
	ext := extract.NewRodExtractor(source, cfg.Browser, logger)
	defer ext.Close()

	e := &exporter.Exporter{
		Source:    source,
		Manifest:  client,
		Extractor: ext,
		Logger:    logger,
		Progress: func(format string, a ...any) {
			fmt.Printf(format+"\n", a...)
		},
	}

	// 2. Optional extraction cache
	if cachePath == "" {
		cachePath = cfg.Cache.Path
	}
	if cachePath != "" {
		store, err := cache.Open(cachePath)
		if err != nil {
			log.Fatalf("Failed to open cache: %v", err)
		}
		defer store.Close()
		e.Cache = store
	}

	// 3. Optional Gemini overview
	if cfg.AI.APIKey != "" {
		summarizer, err := summarize.NewGeminiSummarizer(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			logger.Warn("summarizer unavailable, continuing without overview", zap.Error(err))
		} else {
			e.Summarizer = summarizer
		}
	}

	// 4. Run the export
	fmt.Printf("🚀 Exporting %s...\n", source)
	start := time.Now()
	if err := e.Export(ctx, output); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	fmt.Printf("🎉 Export complete in %v! Document: %s\n", time.Since(start).Round(time.Millisecond), output)
}

var storiesCmd = &cobra.Command{
	Use:   "stories <storybook-url>",
	Short: "List the manifest's stories in export order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		client := manifest.NewClient(args[0], time.Duration(cfg.Manifest.TimeoutMs)*time.Millisecond, nil)
		stories, err := client.FetchStories(context.Background())
		if err != nil {
			log.Fatalf("Failed to fetch manifest: %v", err)
		}
		if len(stories) == 0 {
			log.Fatal("Manifest contains no stories")
		}

		for _, s := range stories {
			if s.Title != "" {
				fmt.Printf("%s — %s/%s\n", s.ID, s.Title, s.DisplayName())
				continue
			}
			fmt.Printf("%s — %s\n", s.ID, s.DisplayName())
		}
	},
}
