package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	historyscreen "github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/history"
	quizscreen "github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/trackerview"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

type stubGenerator struct{}

func (stubGenerator) GenerateSet(context.Context) ([]question.Question, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// selectEntry moves the cursor to a label and presses Enter.
func selectEntry(t *testing.T, h *HomeScreen, label string) tea.Msg {
	t.Helper()
	for i, item := range h.menu.Items {
		if item.Label == label {
			h.menu.Selected = i
			_, cmd := h.Update(specialKey(tea.KeyEnter))
			if cmd == nil {
				t.Fatalf("no command for %q", label)
			}
			return cmd()
		}
	}
	t.Fatalf("menu entry %q not found", label)
	return nil
}

func TestMenuNavigatesToTracker(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)

	msg := selectEntry(t, h, "SYLLABUS TRACKER")
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*trackerview.TrackerScreen); !ok {
		t.Errorf("expected tracker screen, got %T", push.Screen)
	}
}

func TestMenuNavigatesToMockTest(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)

	msg := selectEntry(t, h, "FULL MOCK TEST")
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", push.Screen)
	}
}

func TestMenuNavigatesToHistory(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)

	msg := selectEntry(t, h, "TEST HISTORY")
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*historyscreen.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}

func TestAIEntryDisabledWithoutGenerator(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)

	for _, item := range h.menu.Items {
		if item.Label == "AI MOCK TEST" {
			if !item.Disabled {
				t.Error("expected AI entry disabled without a generator")
			}
			return
		}
	}
	t.Fatal("AI MOCK TEST entry not found")
}

func TestAIEntryEnabledWithGenerator(t *testing.T) {
	h := New(tracker.New(nil), stubGenerator{}, nil)

	for _, item := range h.menu.Items {
		if item.Label == "AI MOCK TEST" {
			if item.Disabled {
				t.Error("expected AI entry enabled with a generator")
			}
			return
		}
	}
	t.Fatal("AI MOCK TEST entry not found")
}

func TestExitQuits(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)

	msg := selectEntry(t, h, "EXIT")
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestViewRendersWithoutHistory(t *testing.T) {
	h := New(tracker.New(nil), nil, nil)
	if h.View(100, 30) == "" {
		t.Error("expected non-empty dashboard view")
	}
}
