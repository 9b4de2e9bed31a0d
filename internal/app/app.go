package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vocadrill/internal/engine"
	"vocadrill/internal/router"
	"vocadrill/internal/screen"
	"vocadrill/internal/screens/home"
	"vocadrill/internal/speech"
	"vocadrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng    *engine.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the home screen on the
// stack.
func newAppModel(eng *engine.Engine, synth speech.Synthesizer, player speech.Player) AppModel {
	homeScreen := home.New(eng, synth, player)
	return AppModel{
		eng:    eng,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the drill uses it for its quit
		// confirmation, the summary for dismissal.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.eng.Progress()
	header := layout.RenderHeader(title, p.Streak, p.TotalWordsLearned, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, synth speech.Synthesizer, player speech.Player) error {
	p := tea.NewProgram(newAppModel(eng, synth, player))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
