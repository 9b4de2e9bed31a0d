package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-word",
		Description: "A test vocabulary word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":       map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "integer", "minimum": 1},
				"kind":       map[string]any{"type": "string", "enum": []any{"verb", "adjective", "noun"}},
			},
			"required": []any{"word", "difficulty"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"word":"alleviate","difficulty":3,"kind":"verb"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"word":"pragmatic","difficulty":2}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"word":"resilient"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"word":"ubiquitous","difficulty":"three"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"word":"ephemeral","difficulty":4,"kind":"adverb"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArrayOfObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-word-batch",
		Description: "Batch of words",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"word":    map[string]any{"type": "string"},
							"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"word", "options"},
					},
				},
			},
			"required": []any{"words"},
		},
	}

	valid := json.RawMessage(`{"words":[{"word":"alleviate","options":["a","b","c","d"]}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"words":[{"word":"alleviate","options":[1,2]}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
