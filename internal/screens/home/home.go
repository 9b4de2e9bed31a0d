// Package home is the menu between sessions. It owns engine bootstrap:
// the ledger load and, on a new day, the daily batch generation both
// run behind its loading view.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/router"
	"vocadrill/internal/screen"
	"vocadrill/internal/screens/drill"
	"vocadrill/internal/screens/summary"
	"vocadrill/internal/speech"
	"vocadrill/internal/ui/components"
	"vocadrill/internal/ui/layout"
	"vocadrill/internal/ui/theme"
)

// bootstrapDoneMsg carries the bootstrap outcome back to the update
// loop.
type bootstrapDoneMsg struct {
	res engine.BootstrapResult
}

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	eng    *engine.Engine
	synth  speech.Synthesizer
	player speech.Player
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. The synthesizer may be nil when no
// audio-capable provider is configured.
func New(eng *engine.Engine, synth speech.Synthesizer, player speech.Player) *HomeScreen {
	h := &HomeScreen{
		eng:    eng,
		synth:  synth,
		player: player,
	}
	h.rebuildMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.eng.Phase() != engine.PhaseLoading {
		return nil
	}
	return h.bootstrapCmd()
}

func (h *HomeScreen) bootstrapCmd() tea.Cmd {
	eng := h.eng
	return func() tea.Msg {
		return bootstrapDoneMsg{res: eng.Bootstrap(context.Background())}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.eng.Phase() {
	case engine.PhaseLoading:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	case engine.PhaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bootstrapDoneMsg:
		h.eng.ApplyBootstrap(msg.res)
		h.rebuildMenu()
		if h.eng.Phase() == engine.PhaseCompleted {
			// Today is already done; show the summary straight away.
			rec, _ := h.eng.Progress().RecordFor(h.eng.Today())
			return h, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: summary.New(h.eng, false, rec.Words),
				}
			}
		}
		return h, nil

	case tea.KeyMsg:
		if h.eng.Phase() == engine.PhaseError {
			if msg.String() == "r" || msg.String() == "R" {
				h.eng.Reset()
				return h, h.bootstrapCmd()
			}
			return h, nil
		}
		if h.eng.Notice() != "" {
			h.eng.ClearNotice()
		}
	}

	if h.eng.Phase() != engine.PhaseHome {
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// rebuildMenu derives the menu from the current ledger state.
func (h *HomeScreen) rebuildMenu() {
	dailyLabel := "START DAILY DRILL"
	dailyDone := h.eng.Progress().CompletedOn(h.eng.Today())
	if dailyDone {
		dailyLabel = "DAILY DRILL (done for today)"
	}

	testLabel := "WEEKLY TEST"
	if !h.eng.IsTestDay() {
		testLabel = fmt.Sprintf("WEEKLY TEST (%ss)", h.eng.TestDay())
	}

	items := []components.MenuItem{
		{
			Label:    dailyLabel,
			Disabled: dailyDone,
			Action: func() tea.Cmd {
				if !h.eng.StartDaily(context.Background()) {
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.New(h.eng, h.synth, h.player),
					}
				}
			},
		},
		{
			Label:    testLabel,
			Disabled: !h.eng.IsTestDay(),
			Action: func() tea.Cmd {
				if !h.eng.StartWeeklyTest(context.Background()) {
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.New(h.eng, h.synth, h.player),
					}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
}

func (h *HomeScreen) View(width, height int) string {
	switch h.eng.Phase() {
	case engine.PhaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing today's words...")

	case engine.PhaseError:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press R to retry.", h.eng.Err()))
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("VocaDrill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("ten words a day, every day"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderStats()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if notice := h.eng.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(notice))
	}

	return b.String()
}

func (h *HomeScreen) renderStats() string {
	p := h.eng.Progress()
	todayCount := 0
	if rec, ok := p.RecordFor(h.eng.Today()); ok {
		todayCount = len(rec.Words)
	}

	stats := fmt.Sprintf("Streak: %d day(s)    Words learned: %d    Today's batch: %d",
		p.Streak, p.TotalWordsLearned, todayCount)

	return theme.Card.Render(stats)
}
