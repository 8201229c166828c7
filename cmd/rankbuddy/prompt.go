package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rankbuddy/internal/config"
	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/types"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <seed phrase>",
	Short: "Generate an AI writing prompt for a seed phrase",
	Long: `Runs keyword research for the seed phrase and assembles a long-form writing
prompt that embeds the suggested title, headings, secondary keywords, and
keyword targets. Paste the output into any AI writing tool.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

var (
	promptConfigPath string
	promptWords      int
	promptTone       string
	promptAudience   string
	promptFAQ        bool
	promptExamples   bool
	promptOutput     string
)

func init() {
	promptCmd.Flags().StringVar(&promptConfigPath, "config", "", "Path to config.json file")
	promptCmd.Flags().IntVarP(&promptWords, "words", "w", 0, "Target word count (default 2000)")
	promptCmd.Flags().StringVar(&promptTone, "tone", "", "Writing tone: expert-accessible, casual, formal, conversational, or technical")
	promptCmd.Flags().StringVar(&promptAudience, "audience", "", "Target audience, e.g. \"small business owners\"")
	promptCmd.Flags().BoolVar(&promptFAQ, "faq", false, "Include a FAQ section")
	promptCmd.Flags().BoolVar(&promptExamples, "examples", false, "Emphasize real-world examples")
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "", "Write the prompt to a file instead of stdout")

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	seed := args[0]

	cfg, err := loadMergedConfig(promptConfigPath, config.Config{
		TargetWords:     promptWords,
		Tone:            promptTone,
		Audience:        promptAudience,
		IncludeFAQ:      promptFAQ,
		IncludeExamples: promptExamples,
	})
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Seed:        seed,
		PolicyName:  cfg.Difficulty,
		MaxPoolSize: cfg.MaxPoolSize,
		Plan:        &types.PlanConfig{TargetWords: cfg.TargetWords, Density: cfg.Density},
		Prompt: &types.PromptOptions{
			TargetWords:     cfg.TargetWords,
			Tone:            types.Tone(cfg.Tone),
			Audience:        cfg.Audience,
			IncludeFAQ:      promptFAQ || cfg.IncludeFAQ,
			IncludeExamples: promptExamples || cfg.IncludeExamples,
		},
	})
	if err != nil {
		return err
	}

	if promptOutput != "" {
		if err := os.WriteFile(promptOutput, []byte(result.Prompt), 0o644); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		fmt.Printf("Prompt written to %s\n", promptOutput)
		return nil
	}

	fmt.Println(result.Prompt)
	return nil
}
