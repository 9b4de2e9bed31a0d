package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"vocadrill/internal/progress"
	"vocadrill/internal/store"
	"vocadrill/internal/vocab"
	"vocadrill/internal/wordgen"
)

var (
	monday = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	friday = time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)
)

type fakeSource struct {
	batches [][]vocab.Word
	err     error
	calls   []wordgen.GenerateInput
}

func (s *fakeSource) GenerateWords(_ context.Context, input wordgen.GenerateInput) ([]vocab.Word, error) {
	s.calls = append(s.calls, input)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.batches) == 0 {
		return nil, errors.New("no canned batch")
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

type fakeLedger struct {
	current progress.UserProgress
	saves   int
	loadErr error
	saveErr error
}

func (l *fakeLedger) Load(context.Context) (progress.UserProgress, error) {
	if l.loadErr != nil {
		return progress.UserProgress{}, l.loadErr
	}
	return l.current, nil
}

func (l *fakeLedger) Save(_ context.Context, p progress.UserProgress) error {
	if l.saveErr != nil {
		return l.saveErr
	}
	l.current = p
	l.saves++
	return nil
}

type fakeEvents struct {
	sessions []store.SessionEventData
}

func (e *fakeEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	e.sessions = append(e.sessions, data)
	return nil
}

func (e *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (e *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (e *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func makeWords(prefix string, n int) []vocab.Word {
	words := make([]vocab.Word, n)
	for i := range words {
		text := fmt.Sprintf("%s%02d", prefix, i)
		words[i] = vocab.Word{
			Word:         text,
			Definition:   "definition of " + text,
			Example:      "Example with " + text + ".",
			Phonetic:     "/x/",
			QuizSentence: "Fill in " + vocab.BlankMarker + " here.",
			Options:      []string{text, "foo", "bar", "baz"},
		}
	}
	return words
}

func newEngine(source wordgen.Generator, ledger Ledger, now time.Time) *Engine {
	return New(Deps{
		Source:  source,
		Ledger:  ledger,
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Now:     func() time.Time { return now },
		TestDay: time.Friday,
	})
}

func bootstrap(t *testing.T, e *Engine) {
	t.Helper()
	e.ApplyBootstrap(e.Bootstrap(context.Background()))
}

func TestBootstrap_FirstRun(t *testing.T) {
	source := &fakeSource{batches: [][]vocab.Word{makeWords("word", DailyBatchSize)}}
	ledger := &fakeLedger{current: progress.Initial()}
	e := newEngine(source, ledger, monday)

	bootstrap(t, e)

	if e.Phase() != PhaseHome {
		t.Fatalf("expected Home, got %v", e.Phase())
	}
	if len(source.calls) != 1 || source.calls[0].Count != DailyBatchSize {
		t.Errorf("expected one fetch of %d words, got %+v", DailyBatchSize, source.calls)
	}
	if len(source.calls[0].Exclude) != 0 {
		t.Errorf("first run should exclude nothing, got %v", source.calls[0].Exclude)
	}
	if ledger.saves != 1 {
		t.Errorf("new day should be persisted once, saved %d times", ledger.saves)
	}

	rec, ok := e.Progress().RecordFor(progress.DayString(monday))
	if !ok {
		t.Fatal("today's record missing after bootstrap")
	}
	if rec.Completed {
		t.Error("fresh record should not be completed")
	}
	if len(rec.Words) != DailyBatchSize {
		t.Errorf("expected %d words in record, got %d", DailyBatchSize, len(rec.Words))
	}
}

func TestBootstrap_ExcludesSeenWords(t *testing.T) {
	seen := makeWords("old", 3)
	ledger := &fakeLedger{current: progress.Initial().WithRecord(progress.DailyRecord{
		Date:      "2026-01-04",
		Words:     seen,
		Completed: true,
	})}
	source := &fakeSource{batches: [][]vocab.Word{makeWords("new", DailyBatchSize)}}
	e := newEngine(source, ledger, monday)

	bootstrap(t, e)

	if e.Phase() != PhaseHome {
		t.Fatalf("expected Home, got %v", e.Phase())
	}
	if got := source.calls[0].Exclude; len(got) != 3 || got[0] != "old00" {
		t.Errorf("exclusion list should carry all seen words, got %v", got)
	}
}

func TestBootstrap_ExistingDay(t *testing.T) {
	cases := []struct {
		name      string
		completed bool
		now       time.Time
		want      Phase
	}{
		{"uncompleted record resumes at Home", false, monday, PhaseHome},
		{"completed record off test day", true, monday, PhaseCompleted},
		{"completed record on test day still offers Home", true, friday, PhaseHome},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date := progress.DayString(tc.now)
			ledger := &fakeLedger{current: progress.Initial().WithRecord(progress.DailyRecord{
				Date:      date,
				Words:     makeWords("word", DailyBatchSize),
				Completed: tc.completed,
			})}
			source := &fakeSource{}
			e := newEngine(source, ledger, tc.now)

			bootstrap(t, e)

			if e.Phase() != tc.want {
				t.Errorf("expected %v, got %v", tc.want, e.Phase())
			}
			if len(source.calls) != 0 {
				t.Error("existing day must not trigger a fetch")
			}
			if ledger.saves != 0 {
				t.Error("existing day must not be re-persisted")
			}
		})
	}
}

func TestBootstrap_Failures(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		e := newEngine(&fakeSource{}, &fakeLedger{loadErr: errors.New("disk gone")}, monday)
		bootstrap(t, e)
		if e.Phase() != PhaseError || e.Err() == "" {
			t.Errorf("expected Error with message, got %v %q", e.Phase(), e.Err())
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		e := newEngine(&fakeSource{err: errors.New("provider down")}, &fakeLedger{current: progress.Initial()}, monday)
		bootstrap(t, e)
		if e.Phase() != PhaseError {
			t.Errorf("expected Error, got %v", e.Phase())
		}
	})

	t.Run("save failure", func(t *testing.T) {
		source := &fakeSource{batches: [][]vocab.Word{makeWords("word", DailyBatchSize)}}
		e := newEngine(source, &fakeLedger{current: progress.Initial(), saveErr: errors.New("disk full")}, monday)
		bootstrap(t, e)
		if e.Phase() != PhaseError {
			t.Errorf("expected Error, got %v", e.Phase())
		}
	})

	t.Run("reset returns to Loading", func(t *testing.T) {
		e := newEngine(&fakeSource{}, &fakeLedger{loadErr: errors.New("disk gone")}, monday)
		bootstrap(t, e)
		e.Reset()
		if e.Phase() != PhaseLoading || e.Err() != "" {
			t.Errorf("expected clean Loading after reset, got %v %q", e.Phase(), e.Err())
		}
	})
}

func dailyEngine(t *testing.T, n int) (*Engine, *fakeSource, *fakeLedger) {
	t.Helper()
	source := &fakeSource{batches: [][]vocab.Word{makeWords("word", n)}}
	ledger := &fakeLedger{current: progress.Initial()}
	e := newEngine(source, ledger, monday)
	bootstrap(t, e)
	if e.Phase() != PhaseHome {
		t.Fatalf("bootstrap failed: %v %q", e.Phase(), e.Err())
	}
	return e, source, ledger
}

func TestStartDaily(t *testing.T) {
	e, _, _ := dailyEngine(t, DailyBatchSize)

	if !e.StartDaily(context.Background()) {
		t.Fatal("start daily rejected")
	}
	if e.Phase() != PhaseLearning {
		t.Errorf("expected Learning, got %v", e.Phase())
	}
	if e.Index() != 0 || len(e.Words()) != DailyBatchSize {
		t.Errorf("expected fresh index over %d words, got %d/%d", DailyBatchSize, e.Index(), len(e.Words()))
	}
	if e.WeeklyTest() {
		t.Error("daily session flagged as weekly test")
	}

	// The active list is a working copy; record words stay untouched.
	e.Words()[0].Word = "mutated"
	rec, _ := e.Progress().RecordFor(e.Today())
	if rec.Words[0].Word == "mutated" {
		t.Error("active list aliases the ledger record")
	}
}

func TestStartDaily_RejectedWhenCompleted(t *testing.T) {
	ledger := &fakeLedger{current: progress.Initial().WithRecord(progress.DailyRecord{
		Date:      progress.DayString(friday),
		Words:     makeWords("word", 2),
		Completed: true,
	})}
	e := newEngine(&fakeSource{}, ledger, friday)
	bootstrap(t, e)

	if e.StartDaily(context.Background()) {
		t.Fatal("completed day should not restart")
	}
	if e.Phase() != PhaseHome || e.Notice() == "" {
		t.Errorf("expected Home with a notice, got %v %q", e.Phase(), e.Notice())
	}
}

func TestDailyRunThrough(t *testing.T) {
	const n = 3
	e, _, ledger := dailyEngine(t, n)
	ctx := context.Background()
	e.StartDaily(ctx)

	for i := 0; i < n; i++ {
		if e.Index() != i {
			t.Fatalf("word %d: index is %d", i, e.Index())
		}
		if e.Phase() != PhaseLearning {
			t.Fatalf("word %d: expected Learning, got %v", i, e.Phase())
		}
		e.ConfirmRecognition()
		if e.Phase() != PhaseSpelling {
			t.Fatalf("word %d: expected Spelling, got %v", i, e.Phase())
		}
		e.SpellingSolved()
		if e.Phase() != PhaseQuiz {
			t.Fatalf("word %d: expected Quiz, got %v", i, e.Phase())
		}
		e.QuizSolved(ctx)
	}

	if e.Phase() != PhaseCompleted {
		t.Fatalf("expected Completed, got %v", e.Phase())
	}

	got := e.Progress()
	if !got.CompletedOn(e.Today()) {
		t.Error("today should be marked completed")
	}
	if got.TotalWordsLearned != n {
		t.Errorf("expected total %d, got %d", n, got.TotalWordsLearned)
	}
	if got.Streak != 1 {
		t.Errorf("first completion should set streak 1, got %d", got.Streak)
	}
	if got.LastLoginDate != e.Today() {
		t.Errorf("lastLogin should move to today, got %q", got.LastLoginDate)
	}
	if ledger.saves != 2 { // bootstrap + completion
		t.Errorf("expected 2 saves, got %d", ledger.saves)
	}

	e.DismissCompleted()
	if e.Phase() != PhaseHome {
		t.Errorf("dismiss should return Home, got %v", e.Phase())
	}
}

func TestDailyCompletion_StreakIncrement(t *testing.T) {
	yesterday := progress.DailyRecord{
		Date:      "2026-01-04",
		Words:     makeWords("old", 2),
		Completed: true,
	}
	today := progress.DailyRecord{
		Date:  progress.DayString(monday),
		Words: makeWords("word", 1),
	}
	led := progress.Initial().WithRecord(yesterday).WithRecord(today)
	led.Streak = 3
	led.LastLoginDate = "2026-01-04"
	led.TotalWordsLearned = 2

	ledger := &fakeLedger{current: led}
	e := newEngine(&fakeSource{}, ledger, monday)
	ctx := context.Background()
	bootstrap(t, e)
	e.StartDaily(ctx)
	e.ConfirmRecognition()
	e.SpellingSolved()
	e.QuizSolved(ctx)

	got := e.Progress()
	if got.Streak != 4 {
		t.Errorf("next-day completion should increment streak to 4, got %d", got.Streak)
	}
	if got.TotalWordsLearned != 3 {
		t.Errorf("expected total 3, got %d", got.TotalWordsLearned)
	}
}

func TestDailyCompletion_SaveFailure(t *testing.T) {
	e, _, ledger := dailyEngine(t, 1)
	ctx := context.Background()
	e.StartDaily(ctx)
	e.ConfirmRecognition()
	e.SpellingSolved()

	ledger.saveErr = errors.New("disk full")
	e.QuizSolved(ctx)

	if e.Phase() != PhaseError {
		t.Fatalf("failed completion save should route to Error, got %v", e.Phase())
	}
	if e.Progress().CompletedOn(e.Today()) {
		t.Error("in-memory ledger must stay unmodified after a failed save")
	}
}

func weeklyEngine(t *testing.T, poolDays, wordsPerDay int) (*Engine, *fakeLedger) {
	t.Helper()
	led := progress.Initial()
	for d := 0; d < poolDays; d++ {
		led = led.WithRecord(progress.DailyRecord{
			Date:      fmt.Sprintf("2026-01-%02d", d+1),
			Words:     makeWords(fmt.Sprintf("day%d-", d), wordsPerDay),
			Completed: true,
		})
	}
	led = led.WithRecord(progress.DailyRecord{
		Date:      progress.DayString(friday),
		Words:     makeWords("today", 2),
		Completed: false,
	})
	ledger := &fakeLedger{current: led}
	e := newEngine(&fakeSource{}, ledger, friday)
	bootstrap(t, e)
	return e, ledger
}

func TestStartWeeklyTest_OffTestDay(t *testing.T) {
	e, _, _ := dailyEngine(t, 2)

	if e.StartWeeklyTest(context.Background()) {
		t.Fatal("weekly test should be rejected off the test day")
	}
	if e.Phase() != PhaseHome || e.Notice() == "" {
		t.Errorf("expected Home with notice, got %v %q", e.Phase(), e.Notice())
	}
}

func TestStartWeeklyTest_EmptyPool(t *testing.T) {
	ledger := &fakeLedger{current: progress.Initial().WithRecord(progress.DailyRecord{
		Date:  progress.DayString(friday),
		Words: []vocab.Word{},
	})}
	e := newEngine(&fakeSource{}, ledger, friday)
	bootstrap(t, e)

	if e.StartWeeklyTest(context.Background()) {
		t.Fatal("empty pool should reject the weekly test")
	}
	if e.Phase() != PhaseHome || e.Notice() == "" {
		t.Errorf("expected Home with notice, got %v %q", e.Phase(), e.Notice())
	}
	if len(e.Words()) != 0 {
		t.Error("rejected test must not assign an active list")
	}
}

func TestStartWeeklyTest_SamplesFifteen(t *testing.T) {
	e, _ := weeklyEngine(t, 4, 10) // pool of 40 plus today's 2

	if !e.StartWeeklyTest(context.Background()) {
		t.Fatalf("weekly test rejected: %q", e.Notice())
	}
	if e.Phase() != PhaseSpelling {
		t.Errorf("weekly test should skip recognition, got %v", e.Phase())
	}
	if !e.WeeklyTest() {
		t.Error("session should be flagged as weekly test")
	}
	if len(e.Words()) != WeeklyTestSize {
		t.Fatalf("expected %d test words, got %d", WeeklyTestSize, len(e.Words()))
	}

	pool := e.Progress().AllWords()
	unique := map[string]bool{}
	for _, w := range e.Words() {
		if !vocab.ContainsWord(pool, w.Word) {
			t.Errorf("test word %q not drawn from the pool", w.Word)
		}
		if unique[w.Word] {
			t.Errorf("duplicate test word %q", w.Word)
		}
		unique[w.Word] = true
	}
}

func TestStartWeeklyTest_SmallPoolTakesAll(t *testing.T) {
	e, _ := weeklyEngine(t, 1, 4) // pool of 4 plus today's 2

	if !e.StartWeeklyTest(context.Background()) {
		t.Fatalf("weekly test rejected: %q", e.Notice())
	}
	if len(e.Words()) != 6 {
		t.Errorf("small pool should be taken whole, got %d words", len(e.Words()))
	}
}

func TestWeeklyTest_CompletionLeavesLedgerAlone(t *testing.T) {
	e, ledger := weeklyEngine(t, 1, 2)
	ctx := context.Background()
	before := e.Progress()
	e.StartWeeklyTest(ctx)

	for range e.Words() {
		e.SpellingSolved()
		e.QuizSolved(ctx)
	}

	if e.Phase() != PhaseCompleted {
		t.Fatalf("expected Completed, got %v", e.Phase())
	}
	if ledger.saves != 0 {
		t.Errorf("weekly test must not persist, saved %d times", ledger.saves)
	}
	after := e.Progress()
	if after.Streak != before.Streak || after.TotalWordsLearned != before.TotalWordsLearned {
		t.Error("weekly test must not touch streak or totals")
	}
}

func TestSkip_Substitution(t *testing.T) {
	const n = 4
	e, source, _ := dailyEngine(t, n)
	ctx := context.Background()
	e.StartDaily(ctx)
	e.ConfirmRecognition()
	e.QuizSolved(ctx) // ignored outside Quiz
	if e.Phase() != PhaseSpelling {
		t.Fatalf("guard regression: %v", e.Phase())
	}
	e.QuitHome(ctx)
	e.StartDaily(ctx)

	skipped := e.Words()[0].Word
	source.batches = [][]vocab.Word{makeWords("fresh", 1)}

	req, ok := e.BeginSkip()
	if !ok {
		t.Fatal("skip rejected")
	}
	if !e.Skipping() {
		t.Error("busy flag not set")
	}
	if _, again := e.BeginSkip(); again {
		t.Error("re-entrant skip must be gated")
	}

	// Exclusion covers history plus the whole active list.
	found := false
	for _, text := range req.Exclude {
		if text == skipped {
			found = true
		}
	}
	if !found {
		t.Errorf("active word %q missing from skip exclusion", skipped)
	}

	e.ApplySkip(e.FetchSkip(ctx, req))

	if e.Skipping() {
		t.Error("busy flag not cleared")
	}
	if len(e.Words()) != n {
		t.Fatalf("list length changed: %d", len(e.Words()))
	}
	if e.Index() != 0 {
		t.Errorf("index advanced to %d", e.Index())
	}
	if vocab.ContainsWord(e.Words(), skipped) {
		t.Errorf("skipped word %q still present", skipped)
	}
	if last := e.Words()[n-1].Word; last != "fresh00" {
		t.Errorf("replacement should be last, got %q", last)
	}
	if e.Phase() != PhaseLearning {
		t.Errorf("skip must not change phase, got %v", e.Phase())
	}
}

func TestSkip_FallbackOnFetchFailure(t *testing.T) {
	e, source, _ := dailyEngine(t, 2)
	ctx := context.Background()
	e.StartDaily(ctx)

	source.err = errors.New("provider down")
	req, _ := e.BeginSkip()
	e.ApplySkip(e.FetchSkip(ctx, req))

	if len(e.Words()) != 2 {
		t.Fatalf("list length changed: %d", len(e.Words()))
	}
	fallback := vocab.FallbackWord()
	if last := e.Words()[1].Word; last != fallback.Word {
		t.Errorf("expected fallback word %q, got %q", fallback.Word, last)
	}
}

func TestSkip_FallbackAlreadyKnown(t *testing.T) {
	fallback := vocab.FallbackWord()
	words := makeWords("word", 2)
	words[1] = fallback

	ledger := &fakeLedger{current: progress.Initial().WithRecord(progress.DailyRecord{
		Date:  progress.DayString(monday),
		Words: words,
	})}
	source := &fakeSource{}
	e := newEngine(source, ledger, monday)
	ctx := context.Background()
	bootstrap(t, e)
	e.StartDaily(ctx)

	source.err = errors.New("provider down")
	req, _ := e.BeginSkip()
	e.ApplySkip(e.FetchSkip(ctx, req))

	if e.Notice() == "" {
		t.Error("expected a notice when no replacement is available")
	}
	if e.Words()[0].Word != "word00" || e.Words()[1].Word != fallback.Word {
		t.Errorf("list must stay unchanged, got %v", vocab.Texts(e.Words()))
	}
	if e.Skipping() {
		t.Error("busy flag not cleared")
	}
}

func TestSkip_StaleResultAfterQuit(t *testing.T) {
	e, source, _ := dailyEngine(t, 3)
	ctx := context.Background()
	e.StartDaily(ctx)

	source.batches = [][]vocab.Word{makeWords("fresh", 1)}
	req, _ := e.BeginSkip()
	res := e.FetchSkip(ctx, req)

	e.QuitHome(ctx)
	e.ApplySkip(res)

	if e.Phase() != PhaseHome {
		t.Errorf("stale skip must not change phase, got %v", e.Phase())
	}
	if len(e.Words()) != 0 {
		t.Errorf("stale skip applied to a dead session: %v", vocab.Texts(e.Words()))
	}

	// The next session accepts skips again.
	e.StartDaily(ctx)
	if e.Skipping() {
		t.Error("busy flag leaked into the next session")
	}
	if _, ok := e.BeginSkip(); !ok {
		t.Error("skip should be available in the new session")
	}
}

func TestSkip_RejectedDuringWeeklyTest(t *testing.T) {
	e, _ := weeklyEngine(t, 1, 3)
	e.StartWeeklyTest(context.Background())

	if _, ok := e.BeginSkip(); ok {
		t.Error("weekly test has no skip")
	}
}

func TestQuitHome(t *testing.T) {
	e, _, ledger := dailyEngine(t, 2)
	ctx := context.Background()

	phases := []func(){
		func() {},                                          // Learning
		func() { e.ConfirmRecognition() },                  // Spelling
		func() { e.ConfirmRecognition(); e.SpellingSolved() }, // Quiz
	}
	for i, setup := range phases {
		e.StartDaily(ctx)
		setup()
		savesBefore := ledger.saves
		e.QuitHome(ctx)
		if e.Phase() != PhaseHome {
			t.Errorf("case %d: expected Home, got %v", i, e.Phase())
		}
		if ledger.saves != savesBefore {
			t.Errorf("case %d: quit must not persist", i)
		}
		if len(e.Words()) != 0 {
			t.Errorf("case %d: active list survived quit", i)
		}
	}
}

func TestSessionEvents(t *testing.T) {
	source := &fakeSource{batches: [][]vocab.Word{makeWords("word", 2)}}
	ledger := &fakeLedger{current: progress.Initial()}
	events := &fakeEvents{}
	e := New(Deps{
		Source:  source,
		Ledger:  ledger,
		Events:  events,
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Now:     func() time.Time { return monday },
		TestDay: time.Friday,
	})
	ctx := context.Background()
	bootstrap(t, e)

	e.StartDaily(ctx)
	e.QuitHome(ctx)
	e.StartDaily(ctx)
	for range 2 {
		e.ConfirmRecognition()
		e.SpellingSolved()
		e.QuizSolved(ctx)
	}

	if len(events.sessions) != 4 {
		t.Fatalf("expected start/quit/start/complete, got %d events", len(events.sessions))
	}
	actions := []string{"start", "quit", "start", "complete"}
	for i, want := range actions {
		if events.sessions[i].Action != want {
			t.Errorf("event %d: expected %q, got %q", i, want, events.sessions[i].Action)
		}
		if events.sessions[i].Mode != "daily" {
			t.Errorf("event %d: expected daily mode, got %q", i, events.sessions[i].Mode)
		}
		if events.sessions[i].SessionID == "" {
			t.Errorf("event %d: missing session id", i)
		}
	}
	if events.sessions[0].SessionID == events.sessions[2].SessionID {
		t.Error("each session needs a distinct id")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseQuiz.String() != "quiz" || Phase(99).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
