package wordgen

import (
	"context"
	"encoding/json"
	"fmt"

	"vocadrill/internal/llm"
	"vocadrill/internal/vocab"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// wordOutput is one raw LLM word before validation.
type wordOutput struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Phonetic     string   `json:"phonetic"`
	QuizSentence string   `json:"quiz_sentence"`
	Options      []string `json:"options"`
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Words []wordOutput `json:"words"`
}

// GenerateWords produces exactly input.Count validated words.
func (g *LLMGenerator) GenerateWords(ctx context.Context, input GenerateInput) ([]vocab.Word, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("word count must be positive, got %d", input.Count)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeWordGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      WordBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if len(raw.Words) != input.Count {
		return nil, &ValidationError{
			Validator: "batch",
			Message:   fmt.Sprintf("expected %d words, got %d", input.Count, len(raw.Words)),
			Retryable: true,
		}
	}

	words := make([]vocab.Word, len(raw.Words))
	for i, rw := range raw.Words {
		words[i] = vocab.Word{
			Word:         rw.Word,
			Definition:   rw.Definition,
			Example:      rw.Example,
			Phonetic:     rw.Phonetic,
			QuizSentence: rw.QuizSentence,
			Options:      rw.Options,
		}
	}

	// Reject duplicates within the batch before per-word validation.
	for i, w := range words {
		if vocab.ContainsWord(words[:i], w.Word) {
			return nil, &ValidationError{
				Validator: "batch",
				Message:   "duplicate word in batch: " + w.Word,
				Retryable: true,
			}
		}
	}

	// Run validators in order on every word.
	for _, w := range words {
		for _, v := range g.config.Validators {
			if verr := v.Validate(w, input); verr != nil {
				return nil, verr
			}
		}
	}

	return words, nil
}
