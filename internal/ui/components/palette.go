package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// PaletteCell describes one question slot in the palette grid.
type PaletteCell struct {
	Answered bool
	Marked   bool
	Current  bool
}

// Palette renders the question palette: a numbered grid showing which
// questions are answered, marked for review, and current.
type Palette struct {
	Cells   []PaletteCell
	Columns int
}

// NewPalette creates a palette with the given cells per row.
func NewPalette(cells []PaletteCell, columns int) Palette {
	if columns < 1 {
		columns = 10
	}
	return Palette{Cells: cells, Columns: columns}
}

// View renders the grid.
func (p Palette) View() string {
	var b strings.Builder

	for i, c := range p.Cells {
		label := fmt.Sprintf("%3d", i+1)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case c.Marked:
			style = theme.Marked
		case c.Answered:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if c.Current {
			style = style.Reverse(true)
		}

		b.WriteString(style.Render(label))
		if (i+1)%p.Columns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// Legend renders the palette legend line.
func (p Palette) Legend() string {
	return lipgloss.NewStyle().Foreground(theme.Success).Render("● answered") + "   " +
		theme.Marked.Render("● marked") + "   " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("● blank")
}
