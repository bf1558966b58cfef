package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// OptionList presents the four answer options of a question. Unlike a
// reveal-style choice widget, the saved answer stays editable until
// the whole test is submitted.
type OptionList struct {
	Options []string
	Cursor  int
	// Chosen is the saved answer index, -1 when unanswered.
	Chosen int
}

// NewOptionList creates an option list with no saved answer.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
}

// Update handles cursor movement. Selection is the caller's business
// because it has test-session side effects.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// View renders the options with the saved answer highlighted.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range o.Options {
		marker := "( )"
		if i == o.Chosen {
			marker = "(●)"
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, labels[i], opt)

		switch {
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
