// Package quiz implements the mock-test session state machine and the
// scoring engine. A Session moves NotStarted → InProgress → Submitted
// and never resumes; all mutations happen on a single event-driven
// goroutine.
package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
)

// Phase is the session lifecycle phase.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseSubmitted
)

// TestType labels the session in quiz history.
type TestType string

const (
	TestStandard TestType = "Full Mock"
	TestAI       TestType = "AI Mock"
)

var (
	// ErrNotInProgress is returned by mutations on a session that has
	// not started or has already been submitted. Reentrant submits
	// after leaving InProgress report this and change nothing.
	ErrNotInProgress = errors.New("session is not in progress")

	// ErrNoQuestions guards submission of a session with no questions
	// loaded.
	ErrNoQuestions = errors.New("no questions loaded")
)

// Session is the ephemeral state of one mock test. Only the summary
// outlives it.
type Session struct {
	ID        string
	Type      TestType
	Questions []question.Question
	StartedAt time.Time

	answers  map[string]int
	marked   map[string]bool
	current  int
	timeLeft int // seconds
	phase    Phase
}

// NewSession creates a session in the NotStarted phase.
func NewSession() *Session {
	return &Session{
		ID:      uuid.New().String(),
		answers: make(map[string]int),
		marked:  make(map[string]bool),
	}
}

// Start loads the question set and time budget and enters InProgress.
// Starting an already-started session is a no-op.
func (s *Session) Start(typ TestType, qs []question.Question, budget time.Duration) {
	if s.phase != PhaseNotStarted || len(qs) == 0 {
		return
	}
	s.Type = typ
	s.Questions = qs
	s.timeLeft = int(budget.Seconds())
	s.phase = PhaseInProgress
	s.StartedAt = time.Now()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the index of the question being displayed.
func (s *Session) Current() int { return s.current }

// CurrentQuestion returns the question at the current index, or nil
// when no questions are loaded.
func (s *Session) CurrentQuestion() *question.Question {
	if len(s.Questions) == 0 {
		return nil
	}
	return &s.Questions[s.current]
}

// TimeLeft returns the remaining time in whole seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Answer records the chosen option for the current question,
// overwriting any prior choice. Out-of-range options and calls outside
// InProgress are ignored.
func (s *Session) Answer(option int) {
	q := s.CurrentQuestion()
	if s.phase != PhaseInProgress || q == nil || option < 0 || option >= question.OptionCount {
		return
	}
	s.answers[q.ID] = option
}

// AnswerFor returns the stored answer for a question id, with ok false
// when unattempted.
func (s *Session) AnswerFor(id string) (int, bool) {
	opt, ok := s.answers[id]
	return opt, ok
}

// Answers returns a copy of the answer map for scoring and handoff.
func (s *Session) Answers() map[string]int {
	out := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount returns how many questions have a stored answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// ToggleMark flips the review flag on the current question. Marking is
// independent of answering.
func (s *Session) ToggleMark() {
	q := s.CurrentQuestion()
	if s.phase != PhaseInProgress || q == nil {
		return
	}
	if s.marked[q.ID] {
		delete(s.marked, q.ID)
	} else {
		s.marked[q.ID] = true
	}
}

// IsMarked reports whether a question id carries the review flag.
func (s *Session) IsMarked(id string) bool { return s.marked[id] }

// MarkedCount returns the number of flagged questions.
func (s *Session) MarkedCount() int { return len(s.marked) }

// Next moves to the following question, clamped at the last index.
func (s *Session) Next() { s.JumpTo(s.current + 1) }

// Prev moves to the preceding question, clamped at index zero.
func (s *Session) Prev() { s.JumpTo(s.current - 1) }

// JumpTo moves directly to a question index, clamped to the valid
// range. Navigating past either end is a no-op, not an error.
func (s *Session) JumpTo(idx int) {
	if s.phase != PhaseInProgress {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if max := len(s.Questions) - 1; idx > max {
		idx = max
	}
	s.current = idx
}

// Tick advances the countdown by one second. It returns true exactly
// once, on the tick that exhausts the budget, which is the signal to
// force submission. Further ticks, and ticks outside InProgress, do
// nothing.
func (s *Session) Tick() (expired bool) {
	if s.phase != PhaseInProgress || s.timeLeft <= 0 {
		return false
	}
	s.timeLeft--
	return s.timeLeft == 0
}

// Submit scores the session and moves it to Submitted. The commit
// callback runs before the phase transition: when it fails the session
// stays InProgress so the caller can surface the error and retry
// without losing answers. Submit is guarded against sessions that
// never loaded questions and is a no-op once the session has left
// InProgress, which also defuses the timer/manual double-submit race.
func (s *Session) Submit(commit func(Result) error) (Result, error) {
	if s.phase != PhaseInProgress {
		return Result{}, ErrNotInProgress
	}
	if len(s.Questions) == 0 {
		return Result{}, ErrNoQuestions
	}

	res := Score(s.Questions, s.answers)
	if commit != nil {
		if err := commit(res); err != nil {
			return Result{}, err
		}
	}
	s.phase = PhaseSubmitted
	return res, nil
}
