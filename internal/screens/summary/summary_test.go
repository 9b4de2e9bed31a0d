package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/vocab"
)

func testWords() []vocab.Word {
	return []vocab.Word{
		{Word: "Ephemeral", Definition: "Lasting for a very short time."},
		{Word: "Ubiquitous", Definition: "Present, appearing, or found everywhere."},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	eng := engine.New(engine.Deps{})

	if got := New(eng, false, testWords()).Title(); got != "Daily Summary" {
		t.Errorf("Title = %q, want %q", got, "Daily Summary")
	}
	if got := New(eng, true, testWords()).Title(); got != "Test Summary" {
		t.Errorf("Title = %q, want %q", got, "Test Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	eng := engine.New(engine.Deps{})
	s := New(eng, false, testWords())

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, w := range testWords() {
		if !strings.Contains(view, w.Word) {
			t.Errorf("view missing word %q", w.Word)
		}
	}
}

func TestSummaryScreen_WordsCopied(t *testing.T) {
	eng := engine.New(engine.Deps{})
	words := testWords()
	s := New(eng, false, words)

	words[0].Word = "Mutated"
	if strings.Contains(s.View(80, 24), "Mutated") {
		t.Error("summary should hold its own copy of the word list")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	eng := engine.New(engine.Deps{})
	s := New(eng, false, testWords())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	eng := engine.New(engine.Deps{})
	s := New(eng, false, testWords())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	eng := engine.New(engine.Deps{})
	hints := New(eng, false, testWords()).KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
