package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rankbuddy/internal/config"
	"github.com/jonathan/rankbuddy/internal/difficulty"
	"github.com/jonathan/rankbuddy/internal/export"
	"github.com/jonathan/rankbuddy/internal/observability"
	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <seed phrase>",
	Short: "Run keyword research for a seed phrase",
	Long: `Aggregates keyword suggestions from the completion, related-search, semantic,
and encyclopedic sources, scores difficulty, derives a content outline, and
prints the research report.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeWords      int
	analyzeDensity    float64
	analyzeDifficulty string
	analyzeMaxPool    int
	analyzeFormat     string
	analyzeOutput     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().IntVarP(&analyzeWords, "words", "w", 0, "Target word count for planned content (default 2000)")
	analyzeCmd.Flags().Float64VarP(&analyzeDensity, "density", "d", 0, "Target keyword density percent (default 1.5)")
	analyzeCmd.Flags().StringVar(&analyzeDifficulty, "difficulty", "", "Difficulty policy: lexical or frequency (default lexical)")
	analyzeCmd.Flags().IntVar(&analyzeMaxPool, "max-pool", 0, "Maximum keyword pool size (default 50)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "markdown", "Report format: markdown, text, or json")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print progress and intermediate results")

	rootCmd.AddCommand(analyzeCmd)
}

// loadMergedConfig loads the optional config file and applies flag overrides.
func loadMergedConfig(configPath string, overrides config.Config) (config.Config, error) {
	cfg := overrides
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = overrides.MergeWithDefaults(*loaded)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	seed := args[0]

	cfg, err := loadMergedConfig(analyzeConfigPath, config.Config{
		TargetWords: analyzeWords,
		Density:     analyzeDensity,
		Difficulty:  analyzeDifficulty,
		MaxPoolSize: analyzeMaxPool,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)

	opts := pipeline.RunOptions{
		Seed:        seed,
		PolicyName:  cfg.Difficulty,
		MaxPoolSize: cfg.MaxPoolSize,
		Plan:        &types.PlanConfig{TargetWords: cfg.TargetWords, Density: cfg.Density},
	}
	if cfg.SearchAPIKey != "" {
		grounded, err := difficulty.NewSearchGrounded(ctx, cfg.SearchAPIKey, cfg.SearchCx,
			difficulty.PolicyByName(cfg.Difficulty))
		if err != nil {
			return err
		}
		opts.Policy = grounded
	}
	if analyzeVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if analyzeVerbose {
		printer.PrintBuckets(result.Buckets, result.Scores)
		printer.PrintStructure(result.Structure)
		printer.PrintWarnings(result.Warnings)
	}

	var report []byte
	switch analyzeFormat {
	case "markdown":
		report = []byte(export.Markdown(result))
	case "text":
		report = []byte(export.Text(result))
	case "json":
		report, err = export.JSON(result)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q: expected markdown, text, or json", analyzeFormat)
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, report, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", analyzeOutput)
		return nil
	}

	fmt.Print(string(report))
	return nil
}
