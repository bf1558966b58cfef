// Package trackerview implements the syllabus checklist screen:
// chapters and topics per subject, with completion toggles that
// persist immediately.
package trackerview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/layout"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/theme"
)

// row is one visible line: a chapter header or a topic beneath an
// expanded chapter.
type row struct {
	chapter *syllabus.Chapter
	topic   *syllabus.Topic
}

// TrackerScreen is the syllabus checklist.
type TrackerScreen struct {
	tracker  *tracker.Tracker
	subject  int // index into syllabus.AllSubjects()
	cursor   int
	scroll   int
	expanded map[string]bool // chapter ID → expanded
	rows     []row
	errMsg   string
}

var _ screen.Screen = (*TrackerScreen)(nil)
var _ screen.KeyHintProvider = (*TrackerScreen)(nil)

// New creates the checklist positioned on the first subject.
func New(tr *tracker.Tracker) *TrackerScreen {
	s := &TrackerScreen{
		tracker:  tr,
		expanded: make(map[string]bool),
	}
	s.rebuildRows()
	return s
}

func (s *TrackerScreen) Init() tea.Cmd {
	return nil
}

func (s *TrackerScreen) Title() string {
	return "Syllabus Tracker"
}

func (s *TrackerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Subject"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Expand"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrackerScreen) currentSubject() syllabus.Subject {
	return syllabus.AllSubjects()[s.subject]
}

// rebuildRows flattens the chapter/topic tree for the active subject.
func (s *TrackerScreen) rebuildRows() {
	s.rows = s.rows[:0]
	for _, ch := range syllabus.Chapters(s.currentSubject()) {
		ch := ch
		s.rows = append(s.rows, row{chapter: &ch})
		if s.expanded[ch.ID] {
			for i := range ch.Topics {
				s.rows = append(s.rows, row{chapter: &ch, topic: &ch.Topics[i]})
			}
		}
	}
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *TrackerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	s.errMsg = ""

	switch kmsg.String() {
	case "left", "h":
		s.subject = (s.subject + len(syllabus.AllSubjects()) - 1) % len(syllabus.AllSubjects())
		s.cursor, s.scroll = 0, 0
		s.rebuildRows()
	case "right", "l", "tab":
		s.subject = (s.subject + 1) % len(syllabus.AllSubjects())
		s.cursor, s.scroll = 0, 0
		s.rebuildRows()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "enter":
		if r := s.cursorRow(); r != nil && r.topic == nil {
			s.expanded[r.chapter.ID] = !s.expanded[r.chapter.ID]
			s.rebuildRows()
		}
	case "space", " ":
		if r := s.cursorRow(); r != nil && r.topic != nil {
			if err := s.tracker.ToggleTopic(context.Background(), r.topic.ID); err != nil {
				s.errMsg = "Could not save progress: " + err.Error()
			}
		}
	}

	return s, nil
}

func (s *TrackerScreen) cursorRow() *row {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return &s.rows[s.cursor]
}

func (s *TrackerScreen) View(width, height int) string {
	var b strings.Builder

	// Subject tab bar.
	var tabs []string
	for i, subj := range syllabus.AllSubjects() {
		label := fmt.Sprintf(" %s %d%% ", subj,
			s.tracker.Progress(syllabus.Scope{Subject: subj}))
		if i == s.subject {
			tabs = append(tabs, theme.ButtonActive.Render(label))
		} else {
			tabs = append(tabs, theme.ButtonInactive.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	visible := height - lipgloss.Height(b.String()) - 1
	if visible < 3 {
		visible = 3
	}
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	if s.cursor >= s.scroll+visible {
		s.scroll = s.cursor - visible + 1
	}

	end := s.scroll + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}

	for i := s.scroll; i < end; i++ {
		b.WriteString(s.renderRow(i) + "\n")
	}

	return b.String()
}

func (s *TrackerScreen) renderRow(i int) string {
	r := s.rows[i]
	selected := i == s.cursor

	if r.topic == nil {
		pct := s.tracker.Progress(syllabus.Scope{Subject: s.currentSubject(), ChapterID: r.chapter.ID})
		arrow := "▸"
		if s.expanded[r.chapter.ID] {
			arrow = "▾"
		}
		line := fmt.Sprintf("%s %s  %d%%", arrow, r.chapter.Name, pct)
		if selected {
			return theme.Selected.Render("  " + line)
		}
		return theme.Body.Render("  " + line)
	}

	mark := "[ ]"
	if s.tracker.IsCompleted(r.topic.ID) {
		mark = "[✓]"
	}
	line := fmt.Sprintf("    %s %s", mark, r.topic.Name)
	if selected {
		return theme.Selected.Render(line)
	}
	if s.tracker.IsCompleted(r.topic.ID) {
		return theme.Correct.Render(line)
	}
	return theme.Body.Render(line)
}
