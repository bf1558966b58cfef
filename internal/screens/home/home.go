// Package home implements the dashboard: syllabus progress at a
// glance, recent mock results, and the main navigation menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/aigen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	historyscreen "github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/history"
	quizscreen "github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/trackerview"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/components"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// CommitFunc persists a submitted test result. Injected so the quiz
// screen stays storage-agnostic.
type CommitFunc = quizscreen.CommitFunc

// HomeScreen is the application dashboard.
type HomeScreen struct {
	menu    components.Menu
	tracker *tracker.Tracker
	commit  CommitFunc
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard. A nil generator disables the AI mock
// menu entry rather than hiding it.
func New(tr *tracker.Tracker, generator aigen.Generator, commit CommitFunc) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SYLLABUS TRACKER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trackerview.New(tr)}
			}
		}},
		{Label: "FULL MOCK TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(tr, nil, commit, quiz.TestStandard)}
			}
		}},
		{Label: "AI MOCK TEST", Disabled: generator == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(tr, generator, commit, quiz.TestAI)}
			}
		}},
		{Label: "TEST HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(tr)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tr,
		commit:  commit,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	barWidth := width/2 - 8
	if barWidth < 20 {
		barWidth = 20
	}

	var progress strings.Builder
	progress.WriteString(theme.Title.Render("Syllabus Progress") + "\n\n")
	overall := h.tracker.Progress(syllabus.Scope{})
	progress.WriteString(components.NewProgressBar("Overall   ", float64(overall)/100, true, barWidth).View() + "\n")
	for _, s := range syllabus.AllSubjects() {
		pct := h.tracker.Progress(syllabus.Scope{Subject: s})
		label := fmt.Sprintf("%-10s", s)
		progress.WriteString(components.NewProgressBar(label, float64(pct)/100, true, barWidth).View() + "\n")
	}

	var recent strings.Builder
	recent.WriteString(theme.Title.Render("Recent Tests") + "\n\n")
	hist := h.tracker.State().QuizHistory
	if len(hist) == 0 {
		recent.WriteString(theme.Hint.Render("No tests taken yet.") + "\n")
	} else {
		shown := hist
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, entry := range shown {
			line := fmt.Sprintf("%s  %s  %d/%d",
				entry.Date.Format("02 Jan"), entry.Type, entry.Score, entry.Total)
			recent.WriteString(theme.Body.Render(line) + "\n")
		}
	}

	left := theme.Card.Width(width/2 - 2).Render(progress.String())
	right := theme.Card.Width(width - width/2 - 2).Render(recent.String())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	menu := h.menu.View()

	return lipgloss.JoinVertical(lipgloss.Left, top, "", menu)
}
