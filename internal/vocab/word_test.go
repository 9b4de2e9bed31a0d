package vocab

import (
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact", "resilient", "resilient", true},
		{"case insensitive", "Resilient", "rESILIENT", true},
		{"surrounding whitespace", "  resilient\t", "resilient", true},
		{"different words", "resilient", "reticent", false},
		{"interior whitespace significant", "ad hoc", "adhoc", false},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.a, tt.b); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsCorrectOption(t *testing.T) {
	w := Word{Word: "Ephemeral", Options: []string{"ephemeral", "ethereal", "eternal", "external"}}
	if !w.IsCorrectOption("  EPHEMERAL ") {
		t.Error("expected normalized option to match")
	}
	if w.IsCorrectOption("ethereal") {
		t.Error("distractor should not match")
	}
}

func TestContainsWord(t *testing.T) {
	words := []Word{{Word: "Alleviate"}, {Word: "Pragmatic"}}
	if !ContainsWord(words, "pragmatic") {
		t.Error("expected case-insensitive membership")
	}
	if ContainsWord(words, "resilient") {
		t.Error("unexpected membership")
	}
}

func TestTexts(t *testing.T) {
	words := []Word{{Word: "A"}, {Word: "B"}, {Word: "C"}}
	got := Texts(words)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %d texts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Texts()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFallbackWordShape(t *testing.T) {
	w := FallbackWord()
	if len(w.Options) != 4 {
		t.Fatalf("fallback has %d options, want 4", len(w.Options))
	}
	var correct int
	for _, opt := range w.Options {
		if w.IsCorrectOption(opt) {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("fallback has %d correct options, want exactly 1", correct)
	}
	if !strings.Contains(w.QuizSentence, BlankMarker) {
		t.Error("fallback quiz sentence missing blank marker")
	}
}

func TestFallbackWordIsolated(t *testing.T) {
	a := FallbackWord()
	a.Options[0] = "mutated"
	b := FallbackWord()
	if b.Options[0] != "resilient" {
		t.Error("mutating one copy leaked into the next")
	}
}
