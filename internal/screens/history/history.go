// Package history lists the most recent mock-test results.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/layout"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// HistoryScreen shows the capped quiz history, most recent first.
type HistoryScreen struct {
	tracker *tracker.Tracker
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history view.
func New(tr *tracker.Tracker) *HistoryScreen {
	return &HistoryScreen{tracker: tr}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Test History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	hist := h.tracker.State().QuizHistory

	var b strings.Builder
	b.WriteString("\n")

	if len(hist) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No tests taken yet. Finish a mock test to see it here."))
		return b.String()
	}

	var table strings.Builder
	table.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%-14s %-12s %10s %7s", "Date", "Type", "Score", "%")) + "\n")
	for _, entry := range hist {
		pct := 0
		if entry.Total > 0 {
			pct = entry.Score * 100 / entry.Total
		}

		style := theme.Body
		if entry.Score == bestScore(hist) && entry.Score > 0 {
			style = theme.Correct
		}
		table.WriteString(style.Render(fmt.Sprintf("%-14s %-12s %6d/%-3d %6d%%",
			entry.Date.Format("02 Jan 2006"),
			entry.Type,
			entry.Score,
			entry.Total,
			pct)) + "\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(strings.TrimRight(table.String(), "\n"))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Showing the last %d of at most %d results.", len(hist), tracker.HistoryLimit)))

	return b.String()
}

func bestScore(hist []tracker.QuizSummary) int {
	best := hist[0].Score
	for _, e := range hist[1:] {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}
