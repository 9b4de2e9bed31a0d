package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/ui/components"
	"vocadrill/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.eng.Phase() == engine.PhaseError {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", d.eng.Err()))
	}

	if d.showQuitConfirm {
		return d.renderQuitConfirm(width)
	}

	word, ok := d.eng.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(d.renderProgress(width))
	b.WriteString("\n\n")

	switch d.eng.Phase() {
	case engine.PhaseLearning:
		b.WriteString(d.renderLearning(width))
	case engine.PhaseSpelling:
		b.WriteString(d.renderSpelling(width, word.Word))
	case engine.PhaseQuiz:
		b.WriteString(d.renderQuiz(width))
	}

	if notice := d.eng.Notice(); notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(notice))
	}

	return b.String()
}

// renderProgress draws the word counter and progress bar.
func (d *DrillScreen) renderProgress(width int) string {
	total := len(d.eng.Words())
	if total == 0 {
		return ""
	}
	current := d.eng.Index() + 1

	label := fmt.Sprintf("Word %d/%d", current, total)
	bar := components.NewProgressBar(label, float64(d.eng.Index())/float64(total), false, min(width-8, 50))
	return "  " + bar.View()
}

func (d *DrillScreen) renderLearning(width int) string {
	word, _ := d.eng.Current()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(word.Word))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Phonetic.Render(word.Phonetic)))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(
		theme.Body.Render(word.Definition) +
			"\n\n" +
			theme.Hint.Render("\""+word.Example+"\""))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if d.eng.Skipping() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Finding a replacement word..."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter when you know this word."))
	}

	return b.String()
}

func (d *DrillScreen) renderSpelling(width int, answer string) string {
	word, _ := d.eng.Current()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Spell the word"))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(
		theme.Body.Render(word.Definition) +
			"\n\n" +
			theme.Phonetic.Render(word.Phonetic))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if d.mode == modeScramble {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Letters: " + d.scrambled))
		b.WriteString("\n")
	} else if d.revealed > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Hint: " + maskWord(answer, d.revealed)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(d.input.View()))

	if d.attempts > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Attempts: %d", d.attempts)))
	}

	return b.String()
}

func (d *DrillScreen) renderQuiz(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Fill in the blank"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.mc.View()))

	if d.quizWrong {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not quite. Press any key to try again."))
	}

	return b.String()
}

func (d *DrillScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Progress for this session will be lost."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
