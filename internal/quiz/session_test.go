package quiz

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

func startedSession(n int) *Session {
	var qs []question.Question
	for i := 0; i < n; i++ {
		qs = append(qs, testQuestion(fmt.Sprintf("q%d", i), syllabus.SubjectPhysics, i%question.OptionCount))
	}
	s := NewSession()
	s.Start(TestStandard, qs, 3*time.Second)
	return s
}

func TestStartTransitionsToInProgress(t *testing.T) {
	s := startedSession(4)
	if s.Phase() != PhaseInProgress {
		t.Fatalf("phase = %v, want InProgress", s.Phase())
	}
	if s.TimeLeft() != 3 {
		t.Errorf("time left = %d, want 3", s.TimeLeft())
	}
}

func TestStartWithNoQuestionsStaysNotStarted(t *testing.T) {
	s := NewSession()
	s.Start(TestStandard, nil, time.Minute)
	if s.Phase() != PhaseNotStarted {
		t.Fatal("session with no questions must not start")
	}
	if _, err := s.Submit(nil); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("submit on unstarted session: err = %v, want ErrNotInProgress", err)
	}
}

func TestAnswerOverwrites(t *testing.T) {
	s := startedSession(2)
	s.Answer(1)
	s.Answer(3)

	got, ok := s.AnswerFor("q0")
	if !ok || got != 3 {
		t.Errorf("answer = (%d,%t), want (3,true)", got, ok)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("answered count = %d, want 1", s.AnsweredCount())
	}
}

func TestAnswerIgnoresInvalidOption(t *testing.T) {
	s := startedSession(1)
	s.Answer(-1)
	s.Answer(question.OptionCount)
	if s.AnsweredCount() != 0 {
		t.Error("out-of-range options must be ignored")
	}
}

func TestToggleMarkIndependentOfAnswer(t *testing.T) {
	s := startedSession(2)

	s.ToggleMark()
	if !s.IsMarked("q0") {
		t.Fatal("q0 should be marked")
	}

	s.Answer(2)
	if !s.IsMarked("q0") {
		t.Error("answering must not clear the review mark")
	}

	s.ToggleMark()
	if s.IsMarked("q0") {
		t.Error("second toggle should clear the mark")
	}
	if _, ok := s.AnswerFor("q0"); !ok {
		t.Error("unmarking must not clear the answer")
	}
}

func TestNavigationClamps(t *testing.T) {
	s := startedSession(3)

	s.Prev()
	if s.Current() != 0 {
		t.Errorf("Prev at first question moved to %d, want 0", s.Current())
	}

	s.JumpTo(99)
	if s.Current() != 2 {
		t.Errorf("JumpTo(99) moved to %d, want 2 (clamped)", s.Current())
	}

	s.Next()
	if s.Current() != 2 {
		t.Errorf("Next at last question moved to %d, want 2", s.Current())
	}
}

func TestTickExpiresExactlyOnce(t *testing.T) {
	s := startedSession(1)

	if s.Tick() || s.Tick() {
		t.Fatal("ticks before exhaustion must not report expiry")
	}
	if !s.Tick() {
		t.Fatal("tick reaching zero must report expiry")
	}
	if s.Tick() {
		t.Fatal("expiry must be reported exactly once")
	}
}

func TestForcedAndManualSubmitRace(t *testing.T) {
	s := startedSession(2)
	s.Answer(0)

	// Timer fires and forces submission.
	for !s.Tick() {
	}
	commits := 0
	if _, err := s.Submit(func(Result) error { commits++; return nil }); err != nil {
		t.Fatalf("forced submit failed: %v", err)
	}

	// Manual submit lands in the same tick.
	if _, err := s.Submit(func(Result) error { commits++; return nil }); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("second submit: err = %v, want ErrNotInProgress", err)
	}
	if commits != 1 {
		t.Errorf("commit ran %d times, want exactly 1", commits)
	}
	if s.Phase() != PhaseSubmitted {
		t.Errorf("phase = %v, want Submitted", s.Phase())
	}
}

func TestSubmitWithNoAnswersIsValid(t *testing.T) {
	s := startedSession(3)
	res, err := s.Submit(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Unattempted != 3 || res.Score != 0 {
		t.Errorf("all-unattempted submit: got %+v", res)
	}
}

func TestCommitFailureKeepsSessionInProgress(t *testing.T) {
	s := startedSession(2)
	s.Answer(1)

	wantErr := errors.New("history write failed")
	_, err := s.Submit(func(Result) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want commit error", err)
	}
	if s.Phase() != PhaseInProgress {
		t.Fatal("failed commit must leave the session in progress for retry")
	}

	// Retry succeeds and answers survived.
	res, err := s.Submit(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Unattempted != 1 {
		t.Errorf("answers lost across retry: %+v", res)
	}
}

func TestMutationsAfterSubmitAreNoOps(t *testing.T) {
	s := startedSession(2)
	s.Answer(0)
	if _, err := s.Submit(nil); err != nil {
		t.Fatal(err)
	}

	s.Answer(3)
	s.ToggleMark()
	s.Next()
	if got, _ := s.AnswerFor("q0"); got != 0 {
		t.Error("answer changed after submission")
	}
	if s.MarkedCount() != 0 || s.Current() != 0 {
		t.Error("marking or navigation applied after submission")
	}
}
