package wordgen

import (
	"testing"

	"vocadrill/internal/vocab"
)

func validWord() vocab.Word {
	return vocab.Word{
		Word:         "Alleviate",
		Definition:   "To make a problem less severe.",
		Example:      "The government implemented new policies to alleviate poverty.",
		Phonetic:     "/əˈliːvieɪt/",
		QuizSentence: "He took aspirin to " + vocab.BlankMarker + " his headache.",
		Options:      []string{"alleviate", "aggravate", "allocate", "alienate"},
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(*vocab.Word)
		wantOK bool
	}{
		{"valid word", func(w *vocab.Word) {}, true},
		{"empty word", func(w *vocab.Word) { w.Word = " " }, false},
		{"empty definition", func(w *vocab.Word) { w.Definition = "" }, false},
		{"empty example", func(w *vocab.Word) { w.Example = "" }, false},
		{"empty phonetic", func(w *vocab.Word) { w.Phonetic = "" }, false},
		{"empty quiz sentence", func(w *vocab.Word) { w.QuizSentence = "" }, false},
		{"no blank marker", func(w *vocab.Word) { w.QuizSentence = "No blank here." }, false},
		{"two blank markers", func(w *vocab.Word) {
			w.QuizSentence = vocab.BlankMarker + " and " + vocab.BlankMarker
		}, false},
		{"three options", func(w *vocab.Word) { w.Options = w.Options[:3] }, false},
		{"five options", func(w *vocab.Word) { w.Options = append(w.Options, "extra") }, false},
		{"empty option", func(w *vocab.Word) { w.Options[2] = "  " }, false},
		{"no correct option", func(w *vocab.Word) { w.Options[0] = "mitigate" }, false},
		{"two correct options", func(w *vocab.Word) { w.Options[1] = "ALLEVIATE " }, false},
		{"case-insensitive correct option", func(w *vocab.Word) { w.Options[0] = "Alleviate" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWord()
			tt.mutate(&w)
			err := v.Validate(w, GenerateInput{})
			if tt.wantOK && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error, got nil")
			}
			if err != nil && !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestExclusionValidator(t *testing.T) {
	v := &ExclusionValidator{}
	w := validWord()

	if err := v.Validate(w, GenerateInput{Exclude: []string{"pragmatic", "resilient"}}); err != nil {
		t.Errorf("unexpected error for unseen word: %v", err)
	}
	if err := v.Validate(w, GenerateInput{Exclude: []string{"ALLEVIATE"}}); err == nil {
		t.Error("expected error for seen word (case-insensitive)")
	}
}
