package trackerview

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func spaceKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
}

func TestStartsCollapsedOnFirstSubject(t *testing.T) {
	s := New(tracker.New(nil))

	if got := s.currentSubject(); got != syllabus.SubjectPhysics {
		t.Errorf("subject = %q, want %q", got, syllabus.SubjectPhysics)
	}
	chapters := syllabus.Chapters(syllabus.SubjectPhysics)
	if len(s.rows) != len(chapters) {
		t.Errorf("rows = %d, want %d chapter headers", len(s.rows), len(chapters))
	}
}

func TestExpandShowsTopics(t *testing.T) {
	s := New(tracker.New(nil))
	chapters := syllabus.Chapters(syllabus.SubjectPhysics)

	s.Update(specialKey(tea.KeyEnter))
	want := len(chapters) + len(chapters[0].Topics)
	if len(s.rows) != want {
		t.Errorf("rows = %d after expand, want %d", len(s.rows), want)
	}

	s.Update(specialKey(tea.KeyEnter))
	if len(s.rows) != len(chapters) {
		t.Errorf("rows = %d after collapse, want %d", len(s.rows), len(chapters))
	}
}

func TestToggleTopicTwiceRestores(t *testing.T) {
	tr := tracker.New(nil)
	s := New(tr)
	topicID := syllabus.Chapters(syllabus.SubjectPhysics)[0].Topics[0].ID

	s.Update(specialKey(tea.KeyEnter)) // expand first chapter
	s.Update(specialKey(tea.KeyDown))  // move onto first topic

	s.Update(spaceKey())
	if !tr.IsCompleted(topicID) {
		t.Error("expected topic completed after toggle")
	}

	s.Update(spaceKey())
	if tr.IsCompleted(topicID) {
		t.Error("expected topic cleared after second toggle")
	}
}

func TestSpaceOnChapterHeaderDoesNothing(t *testing.T) {
	tr := tracker.New(nil)
	s := New(tr)

	s.Update(spaceKey())
	if len(tr.State().CompletedTopics) != 0 {
		t.Error("expected no topics completed from a chapter header")
	}
}

func TestSubjectSwitchWraps(t *testing.T) {
	s := New(tracker.New(nil))

	s.Update(specialKey(tea.KeyRight))
	if got := s.currentSubject(); got != syllabus.SubjectChemistry {
		t.Errorf("subject = %q, want %q", got, syllabus.SubjectChemistry)
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if got := s.currentSubject(); got != syllabus.SubjectBiology {
		t.Errorf("subject = %q after wrap, want %q", got, syllabus.SubjectBiology)
	}
}

func TestViewShowsSubjectTabs(t *testing.T) {
	s := New(tracker.New(nil))
	view := s.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}
