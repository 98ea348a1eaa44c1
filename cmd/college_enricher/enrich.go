package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/college-enricher/internal/batch"
	"github.com/jonathan/college-enricher/internal/config"
	"github.com/jonathan/college-enricher/internal/enrichment"
	"github.com/jonathan/college-enricher/internal/input"
	"github.com/jonathan/college-enricher/internal/llm"
	"github.com/jonathan/college-enricher/internal/observability"
	"github.com/jonathan/college-enricher/internal/output"
	"github.com/jonathan/college-enricher/internal/progress"
	"github.com/jonathan/college-enricher/internal/ratelimit"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a college list with structured attributes",
	Long:  "Enrich reads a name,url college list, queries the LLM once per college not already present in the output, and appends one durable CSV row per success. Interrupted runs resume where they left off.",
	RunE:  runEnrich,
}

var (
	enrichConfigFile string
	enrichInputFile  string
	enrichOutputFile string
	enrichKeyFile    string
	enrichAPIKey     string
	enrichModel      string
	enrichRPM        int
	enrichVerbose    bool
)

func init() {
	enrichCmd.Flags().StringVar(&enrichConfigFile, "config", "", "Path to JSON config file")
	enrichCmd.Flags().StringVarP(&enrichInputFile, "in", "i", "", "Path to the college list CSV (columns: name,url)")
	enrichCmd.Flags().StringVarP(&enrichOutputFile, "out", "o", "", "Path to the enriched output CSV")
	enrichCmd.Flags().StringVar(&enrichKeyFile, "key-file", "", "Path to a file holding the API key")
	enrichCmd.Flags().StringVar(&enrichAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	enrichCmd.Flags().StringVar(&enrichModel, "model", "", "Model name override")
	enrichCmd.Flags().IntVar(&enrichRPM, "rpm", 0, "Maximum enrichment requests per minute")
	enrichCmd.Flags().BoolVarP(&enrichVerbose, "verbose", "v", false, "Print model and pacing details")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// A missing credential aborts before any entity is processed.
	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	entities, err := input.LoadEntities(cfg.Input)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	processed, diag := progress.Load(cfg.Output)
	if diag != nil {
		// Best-effort recovery: corrupt prior output never blocks the run.
		printer.Warnf("could not fully read existing progress: %v", diag)
	}

	printer.Banner(cfg.Input, cfg.Output, len(processed), len(entities))

	ctx := context.Background()

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	writer, err := output.NewWriter(cfg.Output)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	limiter, err := ratelimit.NewFixedInterval(cfg.RequestsPerMinute)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Model: %s, request interval: %s\n", client.Model(), limiter.Interval())
	}

	enricher := enrichment.NewEnricher(client, printer)
	runner := batch.NewRunner(enricher, writer, limiter, processed, printer)

	counters, err := runner.Run(ctx, entities)
	if err != nil {
		return err
	}

	printer.Summary(counters.Success, counters.Error, counters.Skipped, cfg.Output)
	return nil
}

// buildConfig layers flags over the config file over built-in defaults.
func buildConfig() (config.Config, error) {
	flags := config.Config{
		Input:             enrichInputFile,
		Output:            enrichOutputFile,
		KeyFile:           enrichKeyFile,
		APIKey:            enrichAPIKey,
		Model:             enrichModel,
		RequestsPerMinute: enrichRPM,
	}

	base := config.DefaultConfig()
	if enrichConfigFile != "" {
		fileCfg, err := config.LoadConfig(enrichConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		base = fileCfg.MergeWithDefaults(base)
	}

	cfg := flags.MergeWithDefaults(base)
	if enrichVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
