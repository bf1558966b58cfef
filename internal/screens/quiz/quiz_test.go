package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	quizengine "github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/results"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

// stubGenerator implements aigen.Generator for testing.
type stubGenerator struct {
	questions []question.Question
	err       error
	calls     int
}

func (g *stubGenerator) GenerateSet(context.Context) ([]question.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

// commitRecorder records commit calls and can inject a failure.
type commitRecorder struct {
	calls    int
	err      error
	typ      quizengine.TestType
	duration int
	result   quizengine.Result
}

func (c *commitRecorder) fn() CommitFunc {
	return func(_ context.Context, typ quizengine.TestType, sessionID string, durationSecs int, res quizengine.Result) error {
		if c.err != nil {
			return c.err
		}
		c.calls++
		c.typ = typ
		c.duration = durationSecs
		c.result = res
		return c.err
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions(n int) []question.Question {
	subjects := syllabus.AllSubjects()
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:      fmt.Sprintf("T%03d", i),
			Subject: subjects[i%len(subjects)],
			Text:    fmt.Sprintf("Question %d?", i),
			Options: [question.OptionCount]string{"a", "b", "c", "d"},
			Answer:  i % question.OptionCount,
		}
	}
	return qs
}

// startTest loads a small paper directly, skipping the async load.
func startTest(s *QuizScreen, n int, budget time.Duration) {
	s.Update(questionsReadyMsg{
		Token:     s.session.ID,
		Questions: testQuestions(n),
		Type:      s.testType,
		Budget:    budget,
	})
}

func TestStandardLoad(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)

	msg := s.loadQuestions()()
	ready, ok := msg.(questionsReadyMsg)
	if !ok {
		t.Fatalf("expected questionsReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("load failed: %v", ready.Err)
	}
	if len(ready.Questions) != quizengine.StandardQuestionCount {
		t.Errorf("questions = %d, want %d", len(ready.Questions), quizengine.StandardQuestionCount)
	}
	if ready.Budget != quizengine.StandardDuration {
		t.Errorf("budget = %v, want %v", ready.Budget, quizengine.StandardDuration)
	}

	s.Update(ready)
	if s.session.Phase() != quizengine.PhaseInProgress {
		t.Error("expected session in progress after load")
	}
	if s.session.TimeLeft() != int(quizengine.StandardDuration.Seconds()) {
		t.Errorf("time left = %d, want %d", s.session.TimeLeft(), int(quizengine.StandardDuration.Seconds()))
	}
}

func TestAIGenerationSuccess(t *testing.T) {
	gen := &stubGenerator{questions: testQuestions(15)}
	s := New(tracker.New(nil), gen, nil, quizengine.TestAI)

	msg := s.loadQuestions()()
	ready := msg.(questionsReadyMsg)
	if ready.Type != quizengine.TestAI {
		t.Errorf("type = %q, want %q", ready.Type, quizengine.TestAI)
	}
	if len(ready.Questions) != 15 {
		t.Errorf("questions = %d, want 15", len(ready.Questions))
	}
	if ready.Budget != quizengine.AIDuration {
		t.Errorf("budget = %v, want %v", ready.Budget, quizengine.AIDuration)
	}
	if ready.Note != "" {
		t.Errorf("unexpected fallback note: %q", ready.Note)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestAIFallbackToStandard(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	s := New(tracker.New(nil), gen, nil, quizengine.TestAI)

	msg := s.loadQuestions()()
	ready := msg.(questionsReadyMsg)
	if ready.Err != nil {
		t.Fatalf("fallback failed: %v", ready.Err)
	}
	if ready.Type != quizengine.TestStandard {
		t.Errorf("type = %q, want %q", ready.Type, quizengine.TestStandard)
	}
	if len(ready.Questions) != quizengine.StandardQuestionCount {
		t.Errorf("questions = %d, want %d", len(ready.Questions), quizengine.StandardQuestionCount)
	}
	if ready.Budget != quizengine.StandardDuration {
		t.Errorf("budget = %v, want %v", ready.Budget, quizengine.StandardDuration)
	}
	if ready.Note == "" {
		t.Error("expected a fallback note")
	}

	s.Update(ready)
	if s.alert == "" {
		t.Error("expected the fallback alert on the question view")
	}
}

func TestAnswerByNumberKey(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 4, time.Minute)

	s.Update(keyPress('2'))
	q := s.session.CurrentQuestion()
	if got, ok := s.session.AnswerFor(q.ID); !ok || got != 1 {
		t.Errorf("answer = %d (%v), want 1", got, ok)
	}

	// Overwriting is allowed until submission.
	s.Update(keyPress('4'))
	if got, _ := s.session.AnswerFor(q.ID); got != 3 {
		t.Errorf("answer = %d, want 3", got)
	}
}

func TestAnswerByCursor(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 4, time.Minute)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	q := s.session.CurrentQuestion()
	if got, _ := s.session.AnswerFor(q.ID); got != 2 {
		t.Errorf("answer = %d, want 2", got)
	}
}

func TestNavigationClampsAtEnds(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 3, time.Minute)

	s.Update(specialKey(tea.KeyLeft))
	if s.session.Current() != 0 {
		t.Errorf("current = %d, want 0 after prev at first question", s.session.Current())
	}

	for i := 0; i < 5; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	if s.session.Current() != 2 {
		t.Errorf("current = %d, want 2 after next past last question", s.session.Current())
	}
}

func TestAnswerRestoredOnRevisit(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 3, time.Minute)

	s.Update(keyPress('3'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))

	if s.options.Chosen != 2 {
		t.Errorf("restored option = %d, want 2", s.options.Chosen)
	}
}

func TestMarkForReview(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 3, time.Minute)

	q := s.session.CurrentQuestion()
	s.Update(keyPress('m'))
	if !s.session.IsMarked(q.ID) {
		t.Error("expected question marked")
	}
	s.Update(keyPress('m'))
	if s.session.IsMarked(q.ID) {
		t.Error("expected mark cleared")
	}
}

func TestJumpToQuestion(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 10, time.Minute)

	s.Update(keyPress('g'))
	if !s.jumping {
		t.Fatal("expected jump input active")
	}
	s.Update(keyPress('7'))
	s.Update(specialKey(tea.KeyEnter))

	if s.jumping {
		t.Error("expected jump input closed")
	}
	if s.session.Current() != 6 {
		t.Errorf("current = %d, want 6", s.session.Current())
	}
}

func TestSubmitCommitsAndShowsResults(t *testing.T) {
	rec := &commitRecorder{}
	s := New(tracker.New(nil), nil, rec.fn(), quizengine.TestStandard)
	startTest(s, 4, time.Minute)

	s.Update(keyPress('1')) // correct: question 0 answer is 0
	s.Update(keyPress('s'))
	if !s.showSubmitConfirm {
		t.Fatal("expected submit confirmation")
	}
	_, cmd := s.Update(keyPress('y'))

	if rec.calls != 1 {
		t.Fatalf("commit calls = %d, want 1", rec.calls)
	}
	if rec.result.Correct != 1 || rec.result.Unattempted != 3 {
		t.Errorf("result = %+v, want 1 correct, 3 unattempted", rec.result)
	}
	if s.session.Phase() != quizengine.PhaseSubmitted {
		t.Error("expected session submitted")
	}

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replace.Screen)
	}
}

func TestSubmitRecordsHistory(t *testing.T) {
	tr := tracker.New(nil)
	s := New(tr, nil, nil, quizengine.TestStandard)
	startTest(s, 4, time.Minute)

	s.Update(keyPress('s'))
	s.Update(keyPress('y'))

	hist := tr.State().QuizHistory
	if len(hist) != 1 {
		t.Fatalf("history entries = %d, want 1", len(hist))
	}
	if hist[0].Type != string(quizengine.TestStandard) {
		t.Errorf("history type = %q, want %q", hist[0].Type, quizengine.TestStandard)
	}
	if hist[0].Total != quizengine.MaxScore(4) {
		t.Errorf("history total = %d, want %d", hist[0].Total, quizengine.MaxScore(4))
	}
}

func TestCommitFailureKeepsSessionOpen(t *testing.T) {
	rec := &commitRecorder{err: errors.New("disk full")}
	s := New(tracker.New(nil), nil, rec.fn(), quizengine.TestStandard)
	startTest(s, 4, time.Minute)

	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))

	if s.session.Phase() != quizengine.PhaseInProgress {
		t.Error("expected session still in progress after commit failure")
	}
	if s.alert == "" {
		t.Error("expected an alert after commit failure")
	}
	if cmd != nil {
		t.Error("expected no navigation after commit failure")
	}

	// Retry succeeds once the failure clears.
	rec.err = nil
	s.Update(keyPress('s'))
	s.Update(keyPress('y'))
	if s.session.Phase() != quizengine.PhaseSubmitted {
		t.Error("expected session submitted on retry")
	}
	if rec.calls != 1 {
		t.Errorf("commit calls = %d, want 1", rec.calls)
	}
}

func TestTimerExpirySubmitsExactlyOnce(t *testing.T) {
	rec := &commitRecorder{}
	s := New(tracker.New(nil), nil, rec.fn(), quizengine.TestStandard)
	startTest(s, 3, 2*time.Second)

	s.Update(timerTickMsg(time.Now()))
	if rec.calls != 0 {
		t.Fatal("submitted before the budget ran out")
	}

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if rec.calls != 1 {
		t.Fatalf("commit calls = %d, want 1 at expiry", rec.calls)
	}
	if s.session.Phase() != quizengine.PhaseSubmitted {
		t.Error("expected session submitted at expiry")
	}
	if cmd == nil {
		t.Error("expected navigation to results at expiry")
	}
	if rec.duration != 2 {
		t.Errorf("duration = %d, want 2", rec.duration)
	}

	// Extra ticks change nothing.
	s.Update(timerTickMsg(time.Now()))
	s.Update(timerTickMsg(time.Now()))
	if rec.calls != 1 {
		t.Errorf("commit calls = %d after extra ticks, want 1", rec.calls)
	}
}

func TestQuitConfirmSavesSnapshot(t *testing.T) {
	tr := tracker.New(nil)
	s := New(tr, nil, nil, quizengine.TestStandard)
	startTest(s, 5, time.Minute)
	s.Update(keyPress('2'))

	if cmd := s.HandleEsc(); cmd != nil {
		t.Error("expected Esc intercepted mid-test")
	}
	if !s.showQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	// N keeps the test running.
	s.Update(keyPress('n'))
	if s.showQuitConfirm {
		t.Fatal("expected quit confirmation dismissed")
	}

	// Y saves a snapshot and leaves.
	s.HandleEsc()
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	snap := tr.State().MockProgress
	if snap == nil {
		t.Fatal("expected a saved mock snapshot")
	}
	if snap.Answered != 1 || snap.Questions != 5 {
		t.Errorf("snapshot = %+v, want 1 answered of 5", snap)
	}
}

func TestEscPopsAfterSubmission(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 3, time.Minute)
	s.Update(keyPress('s'))
	s.Update(keyPress('y'))

	cmd := s.HandleEsc()
	if cmd == nil {
		t.Fatal("expected pop after submission")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after submission")
	}
}

func TestLateLoadResponseIgnoredAfterStart(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)
	startTest(s, 3, 10*time.Second)

	// A slow AI load from an abandoned attempt carries that
	// attempt's token and must bounce off the running session.
	stale := questionsReadyMsg{
		Token:     "abandoned-attempt",
		Questions: testQuestions(15),
		Type:      quizengine.TestAI,
		Budget:    quizengine.AIDuration,
	}
	_, cmd := s.Update(stale)
	if cmd != nil {
		t.Fatal("stale response must not schedule another tick chain")
	}
	if s.budgetSecs != 10 {
		t.Errorf("budget = %d, want 10", s.budgetSecs)
	}
	if s.session.Type != quizengine.TestStandard {
		t.Errorf("type = %q, want %q", s.session.Type, quizengine.TestStandard)
	}
	if len(s.session.Questions) != 3 {
		t.Errorf("questions = %d, want 3", len(s.session.Questions))
	}

	// The countdown still moves one second per tick.
	s.Update(timerTickMsg(time.Now()))
	if left := s.session.TimeLeft(); left != 9 {
		t.Errorf("time left = %d, want 9", left)
	}
}

func TestLateLoadResponseIgnoredWhileLoading(t *testing.T) {
	s := New(tracker.New(nil), nil, nil, quizengine.TestStandard)

	stale := questionsReadyMsg{
		Token:     "abandoned-attempt",
		Questions: testQuestions(15),
		Type:      quizengine.TestAI,
		Budget:    quizengine.AIDuration,
	}
	if _, cmd := s.Update(stale); cmd != nil {
		t.Fatal("stale response must not start a session")
	}
	if s.session.Phase() != quizengine.PhaseNotStarted {
		t.Errorf("phase = %v, want NotStarted", s.session.Phase())
	}
}
