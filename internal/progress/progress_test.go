package progress

import (
	"encoding/json"
	"strings"
	"testing"

	"vocadrill/internal/vocab"
)

func sampleWords(texts ...string) []vocab.Word {
	out := make([]vocab.Word, len(texts))
	for i, s := range texts {
		out[i] = vocab.Word{
			Word:         s,
			Definition:   "def of " + s,
			Example:      "example with " + s,
			Phonetic:     "/x/",
			QuizSentence: "fill " + vocab.BlankMarker + " here",
			Options:      []string{s, "a", "b", "c"},
		}
	}
	return out
}

func TestWithRecordDoesNotMutateOriginal(t *testing.T) {
	base := Initial()
	next := base.WithRecord(DailyRecord{Date: "2026-09-01", Words: sampleWords("alpha")})

	if len(base.History) != 0 {
		t.Fatal("original ledger gained a record")
	}
	if len(next.History) != 1 {
		t.Fatalf("new ledger has %d records, want 1", len(next.History))
	}
}

func TestWithCompletedDay(t *testing.T) {
	p := Initial().WithRecord(DailyRecord{Date: "2026-09-01", Words: sampleWords("alpha", "beta")})
	p.Streak = 3
	p.LastLoginDate = "2026-08-31"
	p.TotalWordsLearned = 30

	final := sampleWords("alpha", "gamma") // beta was skipped out
	next := p.WithCompletedDay("2026-09-01", final)

	rec, ok := next.RecordFor("2026-09-01")
	if !ok {
		t.Fatal("record missing after completion")
	}
	if !rec.Completed {
		t.Error("record not marked completed")
	}
	if len(rec.Words) != 2 || rec.Words[1].Word != "gamma" {
		t.Errorf("final word list not written back: %v", vocab.Texts(rec.Words))
	}
	if next.Streak != 4 {
		t.Errorf("streak = %d, want 4", next.Streak)
	}
	if next.LastLoginDate != "2026-09-01" {
		t.Errorf("lastLoginDate = %q", next.LastLoginDate)
	}
	if next.TotalWordsLearned != 32 {
		t.Errorf("totalWordsLearned = %d, want 32", next.TotalWordsLearned)
	}

	// Copy-on-write: source ledger untouched.
	if orig, _ := p.RecordFor("2026-09-01"); orig.Completed {
		t.Error("source ledger record was mutated")
	}
	if p.Streak != 3 || p.LastLoginDate != "2026-08-31" {
		t.Error("source ledger scalar fields were mutated")
	}
}

func TestCompletedOn(t *testing.T) {
	p := Initial().WithRecord(DailyRecord{Date: "2026-09-01", Words: sampleWords("alpha")})
	if p.CompletedOn("2026-09-01") {
		t.Error("incomplete record reported as completed")
	}
	p = p.WithCompletedDay("2026-09-01", sampleWords("alpha"))
	if !p.CompletedOn("2026-09-01") {
		t.Error("completed record not reported")
	}
	if p.CompletedOn("2026-09-02") {
		t.Error("missing record reported as completed")
	}
}

func TestSeenWordsAndAllWordsOrder(t *testing.T) {
	p := Initial().
		WithRecord(DailyRecord{Date: "2026-08-30", Words: sampleWords("a1", "a2")}).
		WithRecord(DailyRecord{Date: "2026-08-31", Words: sampleWords("b1")})

	seen := p.SeenWords()
	want := []string{"a1", "a2", "b1"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
	if got := len(p.AllWords()); got != 3 {
		t.Errorf("AllWords returned %d words, want 3", got)
	}
}

func TestLedgerJSONRoundTrip(t *testing.T) {
	p := Initial().WithRecord(DailyRecord{Date: "2026-09-01", Words: sampleWords("alpha")})
	p = p.WithCompletedDay("2026-09-01", sampleWords("alpha"))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got UserProgress
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Streak != p.Streak || got.LastLoginDate != p.LastLoginDate ||
		got.TotalWordsLearned != p.TotalWordsLearned || len(got.History) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	w := got.History[0].Words[0]
	if w.QuizSentence == "" || len(w.Options) != 4 {
		t.Errorf("word fields lost in round trip: %+v", w)
	}
}

func TestLedgerFieldNames(t *testing.T) {
	data, err := json.Marshal(Initial())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"streak"`, `"lastLoginDate"`, `"history"`, `"totalWordsLearned"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized ledger missing %s: %s", key, data)
		}
	}
}
