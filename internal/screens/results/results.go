// Package results shows the score breakdown of a submitted mock test.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/components"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/layout"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// ResultsScreen is the read-only breakdown of one submitted test.
type ResultsScreen struct {
	testType quiz.TestType
	result   quiz.Result
	back     components.Button
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the breakdown view for a scored result.
func New(testType quiz.TestType, result quiz.Result) *ResultsScreen {
	return &ResultsScreen{
		testType: testType,
		result:   result,
		back: components.NewButton("Back to dashboard", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Dashboard"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	var cmd tea.Cmd
	r.back, cmd = r.back.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.result

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s complete", r.testType)))
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if res.Score < 0 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("%d / %d", res.Score, quiz.MaxScore(res.TotalQuestions))) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   (%d%%)", res.Percentage))))
	b.WriteString("\n\n")

	counts := fmt.Sprintf("%s   %s   %s",
		theme.Correct.Render(fmt.Sprintf("✓ %d correct", res.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("✗ %d incorrect", res.Incorrect)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("– %d unattempted", res.Unattempted)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counts))
	b.WriteString("\n\n")

	// Per-subject table in syllabus display order.
	var table strings.Builder
	table.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%-12s %9s %9s", "Subject", "Correct", "Total")) + "\n")
	for _, subj := range syllabus.AllSubjects() {
		sb, ok := res.SubjectBreakdown[subj]
		if !ok {
			continue
		}
		table.WriteString(theme.Body.Render(
			fmt.Sprintf("%-12s %9d %9d", subj, sb.Correct, sb.Total)) + "\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(strings.TrimRight(table.String(), "\n"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.back.View()))

	return b.String()
}
