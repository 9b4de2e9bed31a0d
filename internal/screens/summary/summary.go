// Package summary shows the end-of-session screen for both the daily
// drill and the weekly test.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/router"
	"vocadrill/internal/screen"
	"vocadrill/internal/ui/layout"
	"vocadrill/internal/ui/theme"
	"vocadrill/internal/vocab"
)

// SummaryScreen displays the completed-session summary.
type SummaryScreen struct {
	eng    *engine.Engine
	weekly bool
	words  []vocab.Word
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary over the finished session's word list. The
// words are captured at completion time since dismissing the summary
// clears the engine's session state.
func New(eng *engine.Engine, weekly bool, words []vocab.Word) *SummaryScreen {
	captured := make([]vocab.Word, len(words))
	copy(captured, words)
	return &SummaryScreen{eng: eng, weekly: weekly, words: captured}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.weekly {
		return "Test Summary"
	}
	return "Daily Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			s.eng.DismissCompleted()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	title := "Daily session complete!"
	if s.weekly {
		title = "Weekly test complete!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	p := s.eng.Progress()
	if s.weekly {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("You reviewed %d word(s) from your history.", len(s.words))))
	} else {
		stats := fmt.Sprintf("Streak: %d day(s)        Words learned: %d",
			p.Streak, p.TotalWordsLearned)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(stats))
	}
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	label := "Today's words"
	if s.weekly {
		label = "Words reviewed"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, w := range s.words {
		line := fmt.Sprintf("  %-18s %s", w.Word, truncate(w.Definition, min(width-30, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to continue."))

	return b.String()
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
