package drill

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestScramble(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	got := scramble("resilient", rng)
	if len(got) != len("resilient") {
		t.Fatalf("scramble changed length: %q", got)
	}
	if strings.EqualFold(got, "resilient") {
		t.Errorf("scramble left the word intact: %q", got)
	}

	counts := map[rune]int{}
	for _, r := range "resilient" {
		counts[r]++
	}
	for _, r := range got {
		counts[r]--
	}
	for r, c := range counts {
		if c != 0 {
			t.Errorf("letter %q count off by %d", r, c)
		}
	}

	if got := scramble("a", rng); got != "a" {
		t.Errorf("single letter should be untouched, got %q", got)
	}
}

func TestMaskWord(t *testing.T) {
	cases := []struct {
		word     string
		revealed int
		want     string
	}{
		{"cat", 0, "_ _ _"},
		{"cat", 1, "c _ _"},
		{"cat", 2, "c a _"},
		{"cat", 5, "c a t"},
	}
	for _, tc := range cases {
		if got := maskWord(tc.word, tc.revealed); got != tc.want {
			t.Errorf("maskWord(%q, %d) = %q, want %q", tc.word, tc.revealed, got, tc.want)
		}
	}
}

func TestPickSpellMode_ShortWordsType(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 20; i++ {
		if pickSpellMode("ace", rng) != modeType {
			t.Fatal("short words must always use typing mode")
		}
	}
}
