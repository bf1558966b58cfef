package quiz

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// testQuestion builds a minimal valid question with the given id,
// subject and correct answer index.
func testQuestion(id string, subject syllabus.Subject, answer int) question.Question {
	return question.Question{
		ID:      id,
		Subject: subject,
		Chapter: "Test Chapter",
		Topic:   "Test Topic",
		Text:    fmt.Sprintf("Question %s?", id),
		Options: [question.OptionCount]string{"A", "B", "C", "D"},
		Answer:  answer,
	}
}

func TestScoreAllCorrect(t *testing.T) {
	qs := []question.Question{
		testQuestion("q1", syllabus.SubjectPhysics, 0),
		testQuestion("q2", syllabus.SubjectBiology, 3),
	}
	answers := map[string]int{"q1": 0, "q2": 3}

	res := Score(qs, answers)

	if res.Score != 8 || res.Correct != 2 || res.Incorrect != 0 || res.Unattempted != 0 {
		t.Errorf("got score=%d correct=%d incorrect=%d unattempted=%d, want 8/2/0/0",
			res.Score, res.Correct, res.Incorrect, res.Unattempted)
	}
	if res.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", res.Percentage)
	}
}

func TestScoreMixed(t *testing.T) {
	qs := []question.Question{
		testQuestion("q1", syllabus.SubjectPhysics, 0),
		testQuestion("q2", syllabus.SubjectPhysics, 1),
		testQuestion("q3", syllabus.SubjectChemistry, 2),
		testQuestion("q4", syllabus.SubjectBiology, 3),
	}
	// One correct, one incorrect, two unattempted.
	answers := map[string]int{"q1": 0, "q2": 3}

	res := Score(qs, answers)

	if res.Score != 3 {
		t.Errorf("score = %d, want 3", res.Score)
	}
	if res.Correct != 1 || res.Incorrect != 1 || res.Unattempted != 2 {
		t.Errorf("counts = %d/%d/%d, want 1/1/2", res.Correct, res.Incorrect, res.Unattempted)
	}
	// round(3/16*100) = 19
	if res.Percentage != 19 {
		t.Errorf("percentage = %d, want 19", res.Percentage)
	}

	wantBreakdown := map[syllabus.Subject]SubjectResult{
		syllabus.SubjectPhysics:   {Correct: 1, Total: 2},
		syllabus.SubjectChemistry: {Correct: 0, Total: 1},
		syllabus.SubjectBiology:   {Correct: 0, Total: 1},
	}
	if !reflect.DeepEqual(res.SubjectBreakdown, wantBreakdown) {
		t.Errorf("breakdown = %v, want %v", res.SubjectBreakdown, wantBreakdown)
	}
}

func TestScoreAllUnattempted(t *testing.T) {
	qs := []question.Question{
		testQuestion("q1", syllabus.SubjectPhysics, 0),
		testQuestion("q2", syllabus.SubjectPhysics, 1),
	}
	res := Score(qs, nil)

	if res.Score != 0 || res.Unattempted != 2 || res.Percentage != 0 {
		t.Errorf("got score=%d unattempted=%d percentage=%d, want 0/2/0",
			res.Score, res.Unattempted, res.Percentage)
	}
}

func TestScorePercentageCanBeNegative(t *testing.T) {
	// All incorrect: score = -4, max = 16, percentage = round(-25) = -25.
	var qs []question.Question
	answers := make(map[string]int)
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("q%d", i)
		qs = append(qs, testQuestion(id, syllabus.SubjectBiology, 0))
		answers[id] = 1
	}

	res := Score(qs, answers)
	if res.Score != -4 {
		t.Errorf("score = %d, want -4", res.Score)
	}
	if res.Percentage != -25 {
		t.Errorf("percentage = %d, want -25 (unclamped)", res.Percentage)
	}
}

func TestScoreDeterministic(t *testing.T) {
	qs := []question.Question{
		testQuestion("q1", syllabus.SubjectPhysics, 2),
		testQuestion("q2", syllabus.SubjectChemistry, 1),
		testQuestion("q3", syllabus.SubjectBiology, 0),
	}
	answers := map[string]int{"q1": 2, "q2": 0}

	first := Score(qs, answers)
	for i := 0; i < 5; i++ {
		if got := Score(qs, answers); !reflect.DeepEqual(got, first) {
			t.Fatalf("Score not deterministic: run %d gave %+v, first gave %+v", i, got, first)
		}
	}
}

func TestScoreEmptySet(t *testing.T) {
	res := Score(nil, nil)
	if res.TotalQuestions != 0 || res.Percentage != 0 || res.Score != 0 {
		t.Errorf("empty set: got %+v, want zero result", res)
	}
}
