package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizengine "github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/components"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}

	if s.session.Phase() == quizengine.PhaseNotStarted {
		return s.renderLoading(width)
	}

	if s.showQuitConfirm {
		return renderConfirm(width,
			"Quit this test?",
			"Your attempt is discarded; a resume snapshot is saved.")
	}

	if s.showSubmitConfirm {
		unattempted := len(s.session.Questions) - s.session.AnsweredCount()
		return renderConfirm(width,
			"Submit the test?",
			fmt.Sprintf("%d questions are still unattempted.", unattempted))
	}

	return s.renderQuestionView(width, height)
}

func (s *QuizScreen) renderLoading(width int) string {
	label := "Assembling your paper..."
	if s.testType == quizengine.TestAI {
		label = "Generating fresh questions with AI..."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + label)
}

func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Status line: position and subject on the left, timer and counts
	// on the right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d  %s", s.session.Current()+1, len(s.session.Questions), q.Subject))

	timer := formatClock(s.session.TimeLeft())
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.session.TimeLeft() <= 300 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d answered  %d marked  ", s.session.AnsweredCount(), s.session.MarkedCount())) +
		timerStyle.Render(timer)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)) + "\n")

	if s.alert != "" {
		b.WriteString(theme.Marked.Render("  ⚠ "+s.alert) + "\n")
	}
	b.WriteString("\n")

	paletteWidth := 4 * 10
	mainWidth := width - paletteWidth - 8
	if mainWidth < 40 {
		mainWidth = width - 4
		paletteWidth = 0
	}

	var main strings.Builder
	if s.session.IsMarked(q.ID) {
		main.WriteString(theme.Marked.Render("◆ Marked for review") + "\n\n")
	}
	main.WriteString(lipgloss.NewStyle().
		Width(mainWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	main.WriteString("\n\n")
	main.WriteString(s.options.View())

	if s.jumping {
		main.WriteString("\n" + theme.Body.Render("Go to question: ") + s.jumpInput.View())
	}

	if paletteWidth == 0 {
		b.WriteString(main.String())
		return b.String()
	}

	palette := s.buildPalette()
	side := palette.View() + "\n\n" + palette.Legend()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(mainWidth+4).Render(main.String()),
		side,
	))

	return b.String()
}

func (s *QuizScreen) buildPalette() components.Palette {
	cells := make([]components.PaletteCell, len(s.session.Questions))
	for i, q := range s.session.Questions {
		_, answered := s.session.AnswerFor(q.ID)
		cells[i] = components.PaletteCell{
			Answered: answered,
			Marked:   s.session.IsMarked(q.ID),
			Current:  i == s.session.Current(),
		}
	}
	return components.NewPalette(cells, 10)
}

func renderConfirm(width int, title, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No"))
	return b.String()
}

// formatClock renders seconds as H:MM:SS, dropping the hour when zero.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := secs % 3600 / 60
	sec := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
