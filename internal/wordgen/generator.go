// Package wordgen produces daily vocabulary word batches through an
// LLM provider and validates them before they reach the drill engine.
package wordgen

import (
	"context"

	"vocadrill/internal/vocab"
)

// GenerateInput holds all context needed to generate a word batch.
type GenerateInput struct {
	// Exclude contains word texts the learner has already seen or that
	// are in the active session list. The prompt includes the most
	// recent slice of these as a "do not repeat" hint.
	Exclude []string

	// Count is the exact number of words to generate.
	Count int
}

// Generator produces vocabulary words using an LLM provider.
type Generator interface {
	// GenerateWords produces exactly input.Count validated words.
	// All configured validators are run before returning.
	GenerateWords(ctx context.Context, input GenerateInput) ([]vocab.Word, error)
}
