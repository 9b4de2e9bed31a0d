package wordgen

import "vocadrill/internal/llm"

// WordBatchSchema defines the JSON schema for LLM word generation
// responses.
var WordBatchSchema = &llm.Schema{
	Name:        "word-batch",
	Description: "A batch of advanced English vocabulary words with quiz material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type":        "array",
				"description": "The generated vocabulary words",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The vocabulary word",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "A concise, clear definition",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "A sentence using the word in an academic context",
						},
						"phonetic": map[string]any{
							"type":        "string",
							"description": "Phonetic pronunciation e.g. /wɜːrd/",
						},
						"quiz_sentence": map[string]any{
							"type":        "string",
							"description": "A new sentence with the word replaced by _______",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options: the correct word and 3 plausible distractors",
						},
					},
					"required":             []any{"word", "definition", "example", "phonetic", "quiz_sentence", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
