// Package engine owns the drill session state machine: phase
// transitions, daily and weekly-test word lists, skip substitution, and
// the completion write-through to the progress ledger. All dependencies
// come in as ports so tests can run the machine against in-memory
// fakes.
//
// The engine is single-writer: every mutation happens in an Apply or
// transition method called from the UI update loop. Blocking work
// (ledger load, word generation) lives in Bootstrap and FetchSkip,
// which only read the injected ports and are safe to run off the loop;
// their results are handed back through ApplyBootstrap and ApplySkip.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"vocadrill/internal/progress"
	"vocadrill/internal/store"
	"vocadrill/internal/vocab"
	"vocadrill/internal/wordgen"
)

// DailyBatchSize is the number of words generated for a new day.
const DailyBatchSize = 10

// WeeklyTestSize is the number of words sampled for the weekly test,
// capped by the size of the historical pool.
const WeeklyTestSize = 15

// DefaultTestDay is the weekday the weekly test is offered.
const DefaultTestDay = time.Friday

// Ledger persists the progress ledger. Satisfied by store.LedgerRepo.
type Ledger interface {
	Save(ctx context.Context, p progress.UserProgress) error
	Load(ctx context.Context) (progress.UserProgress, error)
}

// Deps are the engine's injected ports.
type Deps struct {
	// Source generates new words.
	Source wordgen.Generator

	// Ledger loads and saves the progress ledger.
	Ledger Ledger

	// Events receives session lifecycle events. May be nil.
	Events store.EventRepo

	// Rand drives weekly-test sampling. Defaults to a time-seeded
	// source.
	Rand *rand.Rand

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time

	// TestDay is the weekday the weekly test is offered. Callers
	// normally pass DefaultTestDay; note the zero value is Sunday.
	TestDay time.Weekday
}

// Engine is the session state machine.
type Engine struct {
	source  wordgen.Generator
	ledger  Ledger
	events  store.EventRepo
	rng     *rand.Rand
	now     func() time.Time
	testDay time.Weekday

	phase      Phase
	ledgerVal  progress.UserProgress
	active     []vocab.Word
	index      int
	weeklyTest bool
	skipping   bool

	// generation tags in-flight skip fetches; quitting a session bumps
	// it so results that arrive afterwards are discarded.
	generation uint64

	sessionID    string
	sessionStart time.Time
	skipsUsed    int

	notice string
	errMsg string
}

// New builds an engine in the Loading phase.
func New(d Deps) *Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Engine{
		source:    d.Source,
		ledger:    d.Ledger,
		events:    d.Events,
		rng:       d.Rand,
		now:       d.Now,
		testDay:   d.TestDay,
		phase:     PhaseLoading,
		ledgerVal: progress.Initial(),
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Progress returns the current ledger value.
func (e *Engine) Progress() progress.UserProgress { return e.ledgerVal }

// Today returns today's ledger date key.
func (e *Engine) Today() string { return progress.DayString(e.now()) }

// IsTestDay reports whether the weekly test is offered today.
func (e *Engine) IsTestDay() bool { return e.now().Weekday() == e.testDay }

// TestDay returns the weekday the weekly test runs on.
func (e *Engine) TestDay() time.Weekday { return e.testDay }

// Words returns the active session word list.
func (e *Engine) Words() []vocab.Word { return e.active }

// Index returns the position of the current word in the active list.
func (e *Engine) Index() int { return e.index }

// Current returns the word being drilled, if a session is active.
func (e *Engine) Current() (vocab.Word, bool) {
	if e.index < 0 || e.index >= len(e.active) {
		return vocab.Word{}, false
	}
	return e.active[e.index], true
}

// WeeklyTest reports whether the active session is the weekly test.
func (e *Engine) WeeklyTest() bool { return e.weeklyTest }

// Skipping reports whether a skip fetch is in flight.
func (e *Engine) Skipping() bool { return e.skipping }

// Notice returns the transient notification, if any.
func (e *Engine) Notice() string { return e.notice }

// ClearNotice discards the transient notification.
func (e *Engine) ClearNotice() { e.notice = "" }

// Err returns the message that routed the engine to PhaseError.
func (e *Engine) Err() string { return e.errMsg }

// BootstrapResult carries the outcome of Bootstrap into
// ApplyBootstrap.
type BootstrapResult struct {
	Ledger progress.UserProgress
	Err    error
}

// Bootstrap loads the ledger and, when today has no record yet,
// generates the daily batch, appends today's record, and persists it.
// It never mutates the engine; hand the result to ApplyBootstrap on
// the update loop.
func (e *Engine) Bootstrap(ctx context.Context) BootstrapResult {
	led, err := e.ledger.Load(ctx)
	if err != nil {
		return BootstrapResult{Err: fmt.Errorf("load progress: %w", err)}
	}

	today := progress.DayString(e.now())
	if _, ok := led.RecordFor(today); ok {
		return BootstrapResult{Ledger: led}
	}

	words, err := e.source.GenerateWords(ctx, wordgen.GenerateInput{
		Exclude: led.SeenWords(),
		Count:   DailyBatchSize,
	})
	if err != nil {
		return BootstrapResult{Err: fmt.Errorf("generate today's words: %w", err)}
	}

	next := led.WithRecord(progress.DailyRecord{Date: today, Words: words})
	if err := e.ledger.Save(ctx, next); err != nil {
		return BootstrapResult{Err: fmt.Errorf("save progress: %w", err)}
	}
	return BootstrapResult{Ledger: next}
}

// ApplyBootstrap moves the engine out of Loading based on the
// bootstrap outcome: Error on failure, Completed when today is already
// done and it is not the test day, Home otherwise.
func (e *Engine) ApplyBootstrap(res BootstrapResult) {
	if res.Err != nil {
		e.phase = PhaseError
		e.errMsg = res.Err.Error()
		return
	}
	e.ledgerVal = res.Ledger
	e.errMsg = ""
	if e.ledgerVal.CompletedOn(e.Today()) && !e.IsTestDay() {
		e.phase = PhaseCompleted
		return
	}
	e.phase = PhaseHome
}

// StartDaily begins today's daily session. It reports false when
// today's record is missing, empty, or already completed.
func (e *Engine) StartDaily(ctx context.Context) bool {
	if e.phase != PhaseHome {
		return false
	}
	rec, ok := e.ledgerVal.RecordFor(e.Today())
	if !ok || len(rec.Words) == 0 {
		e.notice = "No words are available for today."
		return false
	}
	if rec.Completed {
		e.notice = "Today's session is already complete."
		return false
	}

	e.active = make([]vocab.Word, len(rec.Words))
	copy(e.active, rec.Words)
	e.index = 0
	e.weeklyTest = false
	e.beginSession(ctx, "daily")
	e.phase = PhaseLearning
	return true
}

// StartWeeklyTest begins the weekly test: the full historical word
// pool is shuffled and the first WeeklyTestSize words (or all, if
// fewer) become the test list. Rejected off the test day or when
// nothing has been learned yet.
func (e *Engine) StartWeeklyTest(ctx context.Context) bool {
	if e.phase != PhaseHome {
		return false
	}
	if !e.IsTestDay() {
		e.notice = fmt.Sprintf("The weekly test runs on %ss.", e.testDay)
		return false
	}
	pool := e.ledgerVal.AllWords()
	if len(pool) == 0 {
		e.notice = "No words learned yet. Complete a daily session first."
		return false
	}

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > WeeklyTestSize {
		pool = pool[:WeeklyTestSize]
	}

	e.active = pool
	e.index = 0
	e.weeklyTest = true
	e.beginSession(ctx, "weekly-test")
	e.phase = PhaseSpelling
	return true
}

// ConfirmRecognition moves the daily flow from recognition to the
// spelling drill.
func (e *Engine) ConfirmRecognition() {
	if e.phase != PhaseLearning {
		return
	}
	e.phase = PhaseSpelling
}

// SpellingSolved moves from the spelling drill to the quiz.
func (e *Engine) SpellingSolved() {
	if e.phase != PhaseSpelling {
		return
	}
	e.phase = PhaseQuiz
}

// QuizSolved advances past the current word: to the next word's first
// drill phase, or to session completion on the last word. Daily
// completion writes the finished day through to the ledger; a failed
// save routes to PhaseError with the ledger untouched.
func (e *Engine) QuizSolved(ctx context.Context) {
	if e.phase != PhaseQuiz {
		return
	}
	if e.index < len(e.active)-1 {
		e.index++
		if e.weeklyTest {
			e.phase = PhaseSpelling
		} else {
			e.phase = PhaseLearning
		}
		return
	}
	e.complete(ctx)
}

func (e *Engine) complete(ctx context.Context) {
	if e.weeklyTest {
		// Test results never touch the ledger.
		e.logSession(ctx, "complete")
		e.phase = PhaseCompleted
		return
	}

	next := e.ledgerVal.WithCompletedDay(e.Today(), e.active)
	if err := e.ledger.Save(ctx, next); err != nil {
		e.phase = PhaseError
		e.errMsg = fmt.Sprintf("save progress: %v", err)
		return
	}
	e.ledgerVal = next
	e.logSession(ctx, "complete")
	e.phase = PhaseCompleted
}

// SkipRequest identifies one skip fetch.
type SkipRequest struct {
	Generation uint64
	Exclude    []string
}

// SkipResult carries the outcome of FetchSkip into ApplySkip.
type SkipResult struct {
	Generation uint64
	Word       vocab.Word
	Err        error
}

// BeginSkip gates and prepares a skip of the current word. It reports
// false while another skip is in flight or outside the daily
// recognition phase. The returned request excludes every word already
// seen plus the active list.
func (e *Engine) BeginSkip() (SkipRequest, bool) {
	if e.phase != PhaseLearning || e.weeklyTest || e.skipping {
		return SkipRequest{}, false
	}
	if len(e.active) == 0 {
		return SkipRequest{}, false
	}
	e.skipping = true
	exclude := e.ledgerVal.SeenWords()
	exclude = append(exclude, vocab.Texts(e.active)...)
	return SkipRequest{Generation: e.generation, Exclude: exclude}, true
}

// FetchSkip generates the replacement word for a skip. It never
// mutates the engine and is safe to run off the update loop.
func (e *Engine) FetchSkip(ctx context.Context, req SkipRequest) SkipResult {
	words, err := e.source.GenerateWords(ctx, wordgen.GenerateInput{
		Exclude: req.Exclude,
		Count:   1,
	})
	if err != nil {
		return SkipResult{Generation: req.Generation, Err: err}
	}
	return SkipResult{Generation: req.Generation, Word: words[0]}
}

// ApplySkip substitutes the skipped word: the word at the current
// index is removed and the replacement appended to the end, keeping
// the list length and the index unchanged. A result from a quit
// session is discarded. On fetch failure the built-in fallback word
// stands in; when even that is already known, the list stays as it
// was and a notice is surfaced.
func (e *Engine) ApplySkip(res SkipResult) {
	if res.Generation != e.generation {
		return
	}
	e.skipping = false
	if e.phase != PhaseLearning || e.index >= len(e.active) {
		return
	}

	word := res.Word
	if res.Err != nil {
		word = vocab.FallbackWord()
		if vocab.ContainsWord(e.active, word.Word) ||
			vocab.ContainsWord(e.ledgerVal.AllWords(), word.Word) {
			e.notice = "Couldn't fetch a replacement word. Keeping this one."
			return
		}
	}

	next := make([]vocab.Word, 0, len(e.active))
	next = append(next, e.active[:e.index]...)
	next = append(next, e.active[e.index+1:]...)
	next = append(next, word)
	e.active = next
	e.skipsUsed++
}

// QuitHome abandons the active session and returns to Home without
// persisting anything. The generation bump invalidates any skip fetch
// still in flight.
func (e *Engine) QuitHome(ctx context.Context) {
	switch e.phase {
	case PhaseLearning, PhaseSpelling, PhaseQuiz:
	default:
		return
	}
	e.generation++
	e.skipping = false
	e.logSession(ctx, "quit")
	e.endSession()
	e.phase = PhaseHome
}

// DismissCompleted leaves the summary screen.
func (e *Engine) DismissCompleted() {
	if e.phase != PhaseCompleted {
		return
	}
	e.endSession()
	e.phase = PhaseHome
}

// Reset returns the engine to Loading so a failed startup can be
// retried with a fresh Bootstrap.
func (e *Engine) Reset() {
	e.generation++
	e.skipping = false
	e.endSession()
	e.errMsg = ""
	e.notice = ""
	e.phase = PhaseLoading
}

func (e *Engine) beginSession(ctx context.Context, mode string) {
	e.sessionID = uuid.NewString()
	e.sessionStart = e.now()
	e.skipsUsed = 0
	if e.events == nil {
		return
	}
	_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: e.sessionID,
		Action:    "start",
		Mode:      mode,
		WordCount: len(e.active),
	})
}

func (e *Engine) logSession(ctx context.Context, action string) {
	if e.events == nil || e.sessionID == "" {
		return
	}
	mode := "daily"
	if e.weeklyTest {
		mode = "weekly-test"
	}
	_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    e.sessionID,
		Action:       action,
		Mode:         mode,
		WordCount:    len(e.active),
		WordsSkipped: e.skipsUsed,
		DurationSecs: int(e.now().Sub(e.sessionStart).Seconds()),
	})
}

func (e *Engine) endSession() {
	e.active = nil
	e.index = 0
	e.weeklyTest = false
	e.sessionID = ""
	e.skipsUsed = 0
}
