// Package app owns the root Bubble Tea model: window sizing, the
// screen router, the header/footer chrome and global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/aigen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/home"
	quizscreen "github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI. Generator may
// be nil, which disables the AI mock entry on the dashboard.
type Options struct {
	Tracker   *tracker.Tracker
	Generator aigen.Generator
	Commit    quizscreen.CommitFunc
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *tracker.Tracker
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Tracker, opts.Generator, opts.Commit)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen mid-attempt intercepts Esc itself.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	progressPct := 0
	testsTaken := 0
	if m.tracker != nil {
		progressPct = m.tracker.Progress(syllabus.Scope{})
		testsTaken = len(m.tracker.State().QuizHistory)
	}
	header := layout.RenderHeader(title, progressPct, testsTaken, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
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
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
