package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

func sampleResult() quiz.Result {
	return quiz.Result{
		Score:          8,
		Correct:        2,
		Incorrect:      0,
		Unattempted:    0,
		TotalQuestions: 2,
		Percentage:     100,
		SubjectBreakdown: map[syllabus.Subject]quiz.SubjectResult{
			syllabus.SubjectPhysics: {Correct: 2, Total: 2},
		},
	}
}

func TestViewShowsScoreAndCounts(t *testing.T) {
	s := New(quiz.TestStandard, sampleResult())
	view := s.View(100, 30)

	for _, want := range []string{"8 / 8", "100%", "2 correct", "Physics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewShowsNegativePercentage(t *testing.T) {
	res := quiz.Result{
		Score:          -2,
		Incorrect:      2,
		TotalQuestions: 2,
		Percentage:     -25,
	}
	view := New(quiz.TestAI, res).View(100, 30)
	if !strings.Contains(view, "-25%") {
		t.Error("view missing the unclamped negative percentage")
	}
}

func TestEnterReturnsToDashboard(t *testing.T) {
	s := New(quiz.TestStandard, sampleResult())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
