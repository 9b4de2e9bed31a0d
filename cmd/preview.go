package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocadrill/internal/engine"
	"vocadrill/internal/llm"
	"vocadrill/internal/wordgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an LLM-generated word batch (no database)",
	Long: `Generate a batch of vocabulary words and print them.

This is a stateless developer tool — no database, no progress tracking, no
events. Useful for evaluating word quality and tuning the prompt.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntP("count", "n", engine.DailyBatchSize, "Number of words to generate")
	previewCmd.Flags().StringSlice("exclude", nil, "Words to exclude from the batch")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	// No EventRepo — logging skipped.
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := wordgen.New(provider, wordgen.DefaultConfig())

	fmt.Printf("Generating %d words...\n\n", count)
	words, err := gen.GenerateWords(ctx, wordgen.GenerateInput{Exclude: exclude, Count: count})
	if err != nil {
		return fmt.Errorf("generate words: %w", err)
	}

	for i, w := range words {
		fmt.Printf("── Word %d/%d ──\n", i+1, len(words))
		fmt.Printf("%s  %s\n", w.Word, w.Phonetic)
		fmt.Printf("Definition: %s\n", w.Definition)
		fmt.Printf("Example:    %q\n", w.Example)
		fmt.Printf("Quiz:       %s\n", w.QuizSentence)
		for j, opt := range w.Options {
			marker := " "
			if w.IsCorrectOption(opt) {
				marker = "*"
			}
			fmt.Printf("  %s %d) %s\n", marker, j+1, opt)
		}
		fmt.Println()
	}
	return nil
}
