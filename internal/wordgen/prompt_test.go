package wordgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Exclude: []string{"alleviate", "pragmatic"},
		Count:   10,
	}, DefaultConfig())

	if !strings.Contains(msg, "Generate 10 advanced English vocabulary word(s)") {
		t.Errorf("count missing from prompt:\n%s", msg)
	}
	if !strings.Contains(msg, "alleviate, pragmatic") {
		t.Errorf("exclusion list missing from prompt:\n%s", msg)
	}
	if !strings.Contains(msg, "'_______'") {
		t.Errorf("blank marker instruction missing from prompt:\n%s", msg)
	}
	if !strings.Contains(msg, "4 entries") {
		t.Errorf("options instruction missing from prompt:\n%s", msg)
	}
}

func TestBuildExclusions_Empty(t *testing.T) {
	if got := buildExclusions(nil, 50); got != "None" {
		t.Errorf("expected 'None', got %q", got)
	}
}

func TestBuildExclusions_CapsAtMostRecent(t *testing.T) {
	var seen []string
	for i := 0; i < 60; i++ {
		seen = append(seen, fmt.Sprintf("word%02d", i))
	}

	got := buildExclusions(seen, 50)
	if strings.Contains(got, "word09") {
		t.Error("oldest words should be dropped from the hint")
	}
	if !strings.Contains(got, "word10") || !strings.Contains(got, "word59") {
		t.Error("most recent 50 words should be kept")
	}
	if len(strings.Split(got, ", ")) != 50 {
		t.Errorf("expected 50 entries, got %d", len(strings.Split(got, ", ")))
	}
}

func TestBuildExclusions_NoCapWhenZero(t *testing.T) {
	seen := []string{"a", "b", "c"}
	if got := buildExclusions(seen, 0); got != "a, b, c" {
		t.Errorf("expected full list, got %q", got)
	}
}
