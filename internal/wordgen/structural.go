package wordgen

import (
	"strings"

	"vocadrill/internal/vocab"
)

// StructuralValidator checks that every word field is present and that
// the quiz parts are internally consistent: exactly four options, one
// blank marker in the sentence, and exactly one option matching the
// word itself.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(w vocab.Word, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(w.Word) == "" {
		return v.fail("word is empty")
	}
	if strings.TrimSpace(w.Definition) == "" {
		return v.fail("definition is empty")
	}
	if strings.TrimSpace(w.Example) == "" {
		return v.fail("example is empty")
	}
	if strings.TrimSpace(w.Phonetic) == "" {
		return v.fail("phonetic is empty")
	}
	if strings.TrimSpace(w.QuizSentence) == "" {
		return v.fail("quiz_sentence is empty")
	}
	if n := strings.Count(w.QuizSentence, vocab.BlankMarker); n != 1 {
		return v.fail("quiz_sentence must contain exactly one blank marker")
	}
	if len(w.Options) != 4 {
		return v.fail("options must contain exactly 4 entries")
	}

	correct := 0
	for _, opt := range w.Options {
		if strings.TrimSpace(opt) == "" {
			return v.fail("options must not contain empty entries")
		}
		if w.IsCorrectOption(opt) {
			correct++
		}
	}
	if correct != 1 {
		return v.fail("exactly one option must match the word")
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
