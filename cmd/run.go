package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vocadrill/internal/app"
	"vocadrill/internal/engine"
	"vocadrill/internal/llm"
	"vocadrill/internal/speech"
	"vocadrill/internal/store"
	"vocadrill/internal/vocab"
	"vocadrill/internal/wordgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	var source wordgen.Generator
	var synth speech.Synthesizer
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "New word batches will be unavailable.")
		source = unavailableSource{err: err}
	} else {
		source = wordgen.New(provider, wordgen.DefaultConfig())
		if client := llm.GeminiClient(provider); client != nil {
			synth = speech.NewGeminiSynthesizer(client, eventRepo)
		}
	}

	eng := engine.New(engine.Deps{
		Source:  source,
		Ledger:  st.LedgerRepo(),
		Events:  eventRepo,
		TestDay: engine.DefaultTestDay,
	})

	return app.Run(eng, synth, speech.NewPlayer())
}

// unavailableSource stands in for the word generator when no LLM
// provider is configured, surfacing the configuration error on use.
type unavailableSource struct {
	err error
}

func (s unavailableSource) GenerateWords(context.Context, wordgen.GenerateInput) ([]vocab.Word, error) {
	return nil, fmt.Errorf("LLM provider not configured: %w", s.err)
}
