package store

import (
	"context"
	"testing"

	"vocadrill/internal/progress"
	"vocadrill/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testLedger() progress.UserProgress {
	words := []vocab.Word{{
		Word:         "Alleviate",
		Definition:   "To make a problem less severe.",
		Example:      "Policies to alleviate poverty.",
		Phonetic:     "/əˈliːvieɪt/",
		QuizSentence: "He took aspirin to " + vocab.BlankMarker + " his headache.",
		Options:      []string{"alleviate", "aggravate", "allocate", "alienate"},
	}}
	p := progress.Initial().WithRecord(progress.DailyRecord{Date: "2026-09-01", Words: words})
	return p.WithCompletedDay("2026-09-01", words)
}

func TestLedgerLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()

	p, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p.Streak != 0 || len(p.History) != 0 {
		t.Errorf("expected initial ledger, got %+v", p)
	}
}

func TestLedgerSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	want := testLedger()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Streak != want.Streak {
		t.Errorf("streak = %d, want %d", got.Streak, want.Streak)
	}
	if got.LastLoginDate != want.LastLoginDate {
		t.Errorf("lastLoginDate = %q, want %q", got.LastLoginDate, want.LastLoginDate)
	}
	if got.TotalWordsLearned != want.TotalWordsLearned {
		t.Errorf("totalWordsLearned = %d, want %d", got.TotalWordsLearned, want.TotalWordsLearned)
	}
	if len(got.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(got.History))
	}
	rec := got.History[0]
	if rec.Date != "2026-09-01" || !rec.Completed || len(rec.Words) != 1 {
		t.Errorf("record mismatch: %+v", rec)
	}
	if len(rec.Words[0].Options) != 4 {
		t.Errorf("word options lost in round trip: %+v", rec.Words[0])
	}
}

func TestLedgerLatestWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	first := testLedger()
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := first
	second.Streak = 9
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Streak != 9 {
		t.Errorf("streak = %d, want 9 (newest save)", got.Streak)
	}
}

func TestLedgerPruneKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo().(*ledgerRepo)
	ctx := context.Background()

	p := testLedger()
	for i := 0; i < keepSnapshots+5; i++ {
		p.Streak = i + 1
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().LedgerSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > keepSnapshots {
		t.Errorf("remaining snapshots = %d, want <= %d", count, keepSnapshots)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Streak != keepSnapshots+5 {
		t.Errorf("streak = %d, want %d (newest survives prune)", got.Streak, keepSnapshots+5)
	}
}

func TestLedgerCorruptRowYieldsInitial(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A snapshot whose data doesn't decode into a ledger.
	_, err := s.Client().LedgerSnapshot.Create().
		SetSequence(1).
		SetData(map[string]any{"streak": "not-a-number"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	p, err := s.LedgerRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Streak != 0 || len(p.History) != 0 {
		t.Errorf("expected initial ledger for corrupt row, got %+v", p)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventAppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "word-gen",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(500 + i),
			Success:      true,
			RequestBody:  "req",
			ResponseBody: "resp",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events not ordered newest first")
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req" || got.ResponseBody != "resp" {
		t.Errorf("event body mismatch: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestSessionEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "11111111-1111-1111-1111-111111111111",
		Action:    "complete",
		Mode:      "daily",
		WordCount: 10,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("session events = %d, want 1", count)
	}
}
