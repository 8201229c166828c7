package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rankbuddy/internal/config"
	"github.com/jonathan/rankbuddy/internal/drafting"
	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft <seed phrase>",
	Short: "Generate a blog post draft for a seed phrase",
	Long: `Runs keyword research, assembles the writing prompt, and submits it to the
configured generative model to produce a full draft.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

var (
	draftConfigPath string
	draftWords      int
	draftTone       string
	draftAudience   string
	draftModel      string
	draftAPIKey     string
	draftOutput     string
)

func init() {
	draftCmd.Flags().StringVar(&draftConfigPath, "config", "", "Path to config.json file")
	draftCmd.Flags().IntVarP(&draftWords, "words", "w", 0, "Target word count (default 2000)")
	draftCmd.Flags().StringVar(&draftTone, "tone", "", "Writing tone")
	draftCmd.Flags().StringVar(&draftAudience, "audience", "", "Target audience")
	draftCmd.Flags().StringVar(&draftModel, "model", "", "Generation model (default "+drafting.DefaultModel+")")
	draftCmd.Flags().StringVar(&draftAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	draftCmd.Flags().StringVarP(&draftOutput, "output", "o", "", "Write the draft to a file instead of stdout")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	seed := args[0]

	cfg, err := loadMergedConfig(draftConfigPath, config.Config{
		TargetWords:  draftWords,
		Tone:         draftTone,
		Audience:     draftAudience,
		GeminiAPIKey: draftAPIKey,
	})
	if err != nil {
		return err
	}

	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("a Gemini API key is required: pass --api-key or set GEMINI_API_KEY")
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
			IncludeFAQ:      cfg.IncludeFAQ,
			IncludeExamples: cfg.IncludeExamples,
		},
	})
	if err != nil {
		return err
	}

	client, err := drafting.NewGeminiClient(ctx, apiKey, draftModel)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fmt.Fprintln(os.Stderr, "Generating draft...")
	draft, err := client.GenerateDraft(ctx, result.Prompt)
	if err != nil {
		return err
	}

	if draftOutput != "" {
		if err := os.WriteFile(draftOutput, []byte(draft), 0o644); err != nil {
			return fmt.Errorf("failed to write draft: %w", err)
		}
		fmt.Printf("Draft written to %s\n", draftOutput)
		return nil
	}

	fmt.Println(draft)
	return nil
}
