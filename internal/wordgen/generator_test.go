package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vocadrill/internal/llm"
)

func batchJSON(words ...string) json.RawMessage {
	type w struct {
		Word         string   `json:"word"`
		Definition   string   `json:"definition"`
		Example      string   `json:"example"`
		Phonetic     string   `json:"phonetic"`
		QuizSentence string   `json:"quiz_sentence"`
		Options      []string `json:"options"`
	}
	out := struct {
		Words []w `json:"words"`
	}{}
	for _, text := range words {
		out.Words = append(out.Words, w{
			Word:         text,
			Definition:   "definition of " + text,
			Example:      "An example sentence with " + text + ".",
			Phonetic:     "/x/",
			QuizSentence: "Fill in _______ please.",
			Options:      []string{text, "foo", "bar", "baz"},
		})
	}
	b, _ := json.Marshal(out)
	return b
}

func TestGenerateWords_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("alleviate", "pragmatic")},
	)
	g := New(mock, DefaultConfig())

	words, err := g.GenerateWords(context.Background(), GenerateInput{Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Word != "alleviate" || words[1].Word != "pragmatic" {
		t.Errorf("word order not preserved: %v", words)
	}

	// The structured output schema must ride along on the request.
	if mock.Calls[0].Schema != WordBatchSchema {
		t.Error("request missing word batch schema")
	}
	if mock.Calls[0].System == "" {
		t.Error("request missing system prompt")
	}
}

func TestGenerateWords_ExclusionInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("ubiquitous")},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{
		Exclude: []string{"alleviate", "pragmatic"},
		Count:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "alleviate, pragmatic") {
		t.Errorf("exclusion hint missing from prompt:\n%s", userMsg)
	}
}

func TestGenerateWords_ExclusionHintCapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("ubiquitous")},
	)
	g := New(mock, DefaultConfig())

	var seen []string
	for i := 0; i < 80; i++ {
		seen = append(seen, fmt.Sprintf("seen%02d", i))
	}

	_, err := g.GenerateWords(context.Background(), GenerateInput{Exclude: seen, Count: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if strings.Contains(userMsg, "seen00") {
		t.Error("oldest seen words should not appear in the prompt")
	}
	if !strings.Contains(userMsg, "seen79") {
		t.Error("newest seen words should appear in the prompt")
	}
}

func TestGenerateWords_CountMismatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("alleviate")},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{Count: 3})
	if err == nil {
		t.Fatal("expected error for count mismatch")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "batch" {
		t.Fatalf("expected batch validation error, got: %v", err)
	}
}

func TestGenerateWords_DuplicateInBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("alleviate", "Alleviate")},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{Count: 2})
	if err == nil {
		t.Fatal("expected error for duplicate word")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "batch" {
		t.Fatalf("expected batch validation error, got: %v", err)
	}
}

func TestGenerateWords_SeenWordRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON("alleviate")},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{
		Exclude: []string{"alleviate"},
		Count:   1,
	})
	if err == nil {
		t.Fatal("expected error for already-seen word")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "exclusion" {
		t.Fatalf("expected exclusion validation error, got: %v", err)
	}
}

func TestGenerateWords_StructuralFailure(t *testing.T) {
	bad := json.RawMessage(`{"words":[{"word":"alleviate","definition":"d","example":"e","phonetic":"p","quiz_sentence":"no blank","options":["alleviate","a","b","c"]}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{Count: 1})
	if err == nil {
		t.Fatal("expected structural validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "structural" {
		t.Fatalf("expected structural validation error, got: %v", err)
	}
}

func TestGenerateWords_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{Count: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("provider error should be wrapped, got: %v", err)
	}
}

func TestGenerateWords_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), GenerateInput{Count: 1})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerateWords_NonPositiveCount(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	if _, err := g.GenerateWords(context.Background(), GenerateInput{Count: 0}); err == nil {
		t.Fatal("expected error for zero count")
	}
}
