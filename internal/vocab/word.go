// Package vocab defines the vocabulary word value type and the
// normalization rules shared by the drill engine and the generator.
package vocab

import "strings"

// BlankMarker is the placeholder that stands in for the target word
// inside a quiz sentence.
const BlankMarker = "_______"

// Word is a single vocabulary item. A Word is immutable once generated;
// nothing downstream modifies its fields.
type Word struct {
	// Word is the vocabulary word itself, e.g. "Ubiquitous".
	Word string `json:"word"`

	// Definition is a concise dictionary-style definition.
	Definition string `json:"definition"`

	// Example is a sentence using the word in an academic context.
	Example string `json:"example"`

	// Phonetic is the pronunciation guide, e.g. "/juːˈbɪkwɪtəs/".
	Phonetic string `json:"phonetic"`

	// QuizSentence is a sentence with the word replaced by BlankMarker.
	QuizSentence string `json:"quiz_sentence"`

	// Options holds exactly four quiz choices, one of which matches
	// Word under the normalized comparison.
	Options []string `json:"options"`
}

// Normalize lowercases s and strips leading/trailing whitespace. All
// learner-input and option comparisons go through this.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match reports whether two word strings are equal after normalization.
func Match(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsCorrectOption reports whether the given quiz option refers to this
// word.
func (w Word) IsCorrectOption(option string) bool {
	return Match(w.Word, option)
}

// Texts returns the word strings of a slice of Words, in order.
func Texts(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}

// ContainsWord reports whether any word in the slice matches text under
// the normalized comparison.
func ContainsWord(words []Word, text string) bool {
	for _, w := range words {
		if Match(w.Word, text) {
			return true
		}
	}
	return false
}
