package drill

import (
	"math/rand/v2"
	"strings"
)

// spellMode selects how the spelling challenge is presented.
type spellMode int

const (
	// modeType asks the learner to type the word from its definition,
	// with letters revealed progressively after wrong attempts.
	modeType spellMode = iota

	// modeScramble shows the word's letters shuffled.
	modeScramble
)

// pickSpellMode chooses a mode for the given word. Short words always
// use typing; longer ones scramble half the time.
func pickSpellMode(word string, rng *rand.Rand) spellMode {
	if len([]rune(word)) < 4 {
		return modeType
	}
	if rng.IntN(2) == 0 {
		return modeScramble
	}
	return modeType
}

// scramble shuffles the letters of word, retrying a few times so the
// result is not the word itself.
func scramble(word string, rng *rand.Rand) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	for attempt := 0; attempt < 5; attempt++ {
		rng.Shuffle(len(runes), func(i, j int) {
			runes[i], runes[j] = runes[j], runes[i]
		})
		if !strings.EqualFold(string(runes), word) {
			break
		}
	}
	return strings.ToLower(string(runes))
}

// maskWord shows the first revealed letters of word and blanks the
// rest, e.g. "re_ _ _ _ _ t" with revealed=2.
func maskWord(word string, revealed int) string {
	runes := []rune(word)
	if revealed > len(runes) {
		revealed = len(runes)
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < revealed {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
