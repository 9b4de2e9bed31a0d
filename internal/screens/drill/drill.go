// Package drill runs the three-step word drill: recognition, spelling,
// and the contextual quiz. It drives the session engine and renders
// its current phase; all session rules live in the engine.
package drill

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/router"
	"vocadrill/internal/screen"
	"vocadrill/internal/screens/summary"
	"vocadrill/internal/speech"
	"vocadrill/internal/ui/components"
	"vocadrill/internal/ui/layout"
	"vocadrill/internal/vocab"
)

// celebrateDelay is how long the correct-answer flash stays on screen
// before the drill advances.
const celebrateDelay = 500 * time.Millisecond

// pendingAdvance marks which transition fires when the celebratory
// delay ends.
type pendingAdvance int

const (
	pendingNone pendingAdvance = iota
	pendingSpelling
	pendingQuiz
)

// DrillScreen implements screen.Screen for an active session.
type DrillScreen struct {
	eng    *engine.Engine
	synth  speech.Synthesizer
	player speech.Player
	rng    *rand.Rand

	input     components.TextInput
	mode      spellMode
	scrambled string
	attempts  int
	revealed  int
	wrong     bool

	mc        components.MultiChoice
	quizWrong bool

	pending         pendingAdvance
	showQuitConfirm bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen over an engine with an active session.
func New(eng *engine.Engine, synth speech.Synthesizer, player speech.Player) *DrillScreen {
	d := &DrillScreen{
		eng:    eng,
		synth:  synth,
		player: player,
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1)),
	}
	d.prepare()
	return d
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.input.Init()
}

func (d *DrillScreen) Title() string {
	if d.eng.WeeklyTest() {
		return "Weekly Test"
	}
	return "Daily Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch d.eng.Phase() {
	case engine.PhaseLearning:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "I know this word"},
			{Key: "S", Description: "Skip"},
		}
		if d.synth != nil {
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Pronounce"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	case engine.PhaseSpelling:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit"},
		}
	case engine.PhaseQuiz:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

// prepare rebuilds the per-word UI state for the engine's current
// phase and word.
func (d *DrillScreen) prepare() {
	word, ok := d.eng.Current()
	if !ok {
		return
	}

	switch d.eng.Phase() {
	case engine.PhaseSpelling:
		d.input = components.NewTextInput("type the word...", 40)
		d.mode = pickSpellMode(word.Word, d.rng)
		d.scrambled = ""
		if d.mode == modeScramble {
			d.scrambled = scramble(word.Word, d.rng)
		}
		d.attempts = 0
		d.revealed = 0
		d.wrong = false

	case engine.PhaseQuiz:
		d.prepareQuiz(word)
	}
}

// prepareQuiz builds the multichoice with the options in a fresh
// shuffled order.
func (d *DrillScreen) prepareQuiz(word vocab.Word) {
	options := make([]string, len(word.Options))
	copy(options, word.Options)
	d.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := 0
	for i, opt := range options {
		if word.IsCorrectOption(opt) {
			correct = i
			break
		}
	}

	d.mc = components.NewMultiChoice(word.QuizSentence, options, correct)
	d.quizWrong = false
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case skipResultMsg:
		d.eng.ApplySkip(msg.res)
		d.prepare()
		return d, nil

	case audioReadyMsg:
		if msg.err == nil && d.player != nil {
			_ = d.player.Play(context.Background(), msg.wav)
		}
		return d, nil

	case advanceMsg:
		return d.handleAdvance()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.eng.Phase() == engine.PhaseSpelling && d.pending == pendingNone && !d.showQuitConfirm {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *DrillScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	pending := d.pending
	d.pending = pendingNone

	switch pending {
	case pendingSpelling:
		d.eng.SpellingSolved()
		d.prepare()
		return d, nil

	case pendingQuiz:
		d.eng.QuizSolved(context.Background())
		switch d.eng.Phase() {
		case engine.PhaseCompleted:
			weekly := d.eng.WeeklyTest()
			words := d.eng.Words()
			return d, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: summary.New(d.eng, weekly, words),
				}
			}
		case engine.PhaseError:
			return d, nil
		default:
			d.prepare()
			return d, d.input.Init()
		}
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.eng.Phase() == engine.PhaseError {
		// Any key returns home; the home screen offers the retry.
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if d.showQuitConfirm {
		switch key {
		case "y", "Y":
			d.showQuitConfirm = false
			d.eng.QuitHome(context.Background())
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			d.showQuitConfirm = false
		}
		return d, nil
	}

	if key == "esc" {
		if d.player != nil {
			d.player.Stop()
		}
		d.showQuitConfirm = true
		return d, nil
	}

	// Ignore input while a correct-answer flash is on screen.
	if d.pending != pendingNone {
		return d, nil
	}

	switch d.eng.Phase() {
	case engine.PhaseLearning:
		return d.handleLearningKey(key)
	case engine.PhaseSpelling:
		return d.handleSpellingKey(msg)
	case engine.PhaseQuiz:
		return d.handleQuizKey(msg)
	}
	return d, nil
}

func (d *DrillScreen) handleLearningKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		if d.eng.Skipping() {
			return d, nil
		}
		if d.player != nil {
			d.player.Stop()
		}
		d.eng.ConfirmRecognition()
		d.prepare()
		return d, d.input.Init()

	case "p", "P":
		word, ok := d.eng.Current()
		if !ok || d.synth == nil {
			return d, nil
		}
		return d, d.pronounceCmd(word.Word)

	case "s", "S":
		req, ok := d.eng.BeginSkip()
		if !ok {
			return d, nil
		}
		eng := d.eng
		return d, func() tea.Msg {
			return skipResultMsg{res: eng.FetchSkip(context.Background(), req)}
		}
	}
	return d, nil
}

func (d *DrillScreen) handleSpellingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	word, ok := d.eng.Current()
	if !ok {
		return d, nil
	}

	if msg.String() == "enter" {
		attempt := d.input.Value()
		if attempt == "" {
			return d, nil
		}
		if vocab.Match(attempt, word.Word) {
			d.input.Submit(true)
			d.pending = pendingSpelling
			return d, advanceCmd()
		}
		d.attempts++
		if d.revealed < len([]rune(word.Word))-1 {
			d.revealed++
		}
		d.input.Submit(false)
		d.wrong = true
		return d, nil
	}

	if d.wrong {
		d.input.Reset()
		d.wrong = false
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if d.quizWrong {
		// Any key resets the quiz for another attempt.
		word, ok := d.eng.Current()
		if ok {
			d.prepareQuiz(word)
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.mc, cmd = d.mc.Update(msg)
	if d.mc.Submitted {
		if d.mc.IsCorrect() {
			d.pending = pendingQuiz
			return d, advanceCmd()
		}
		d.quizWrong = true
	}
	return d, cmd
}

func (d *DrillScreen) pronounceCmd(text string) tea.Cmd {
	synth := d.synth
	return func() tea.Msg {
		pcm, err := synth.Pronounce(context.Background(), text)
		if err != nil {
			return audioReadyMsg{err: err}
		}
		return audioReadyMsg{wav: speech.WrapWAV(pcm, speech.SampleRate)}
	}
}

// advanceCmd fires the phase advance after the celebratory delay.
func advanceCmd() tea.Cmd {
	return tea.Tick(celebrateDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}
