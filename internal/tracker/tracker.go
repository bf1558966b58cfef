// Package tracker owns the persisted study-progress state: the set of
// completed syllabus topics, a capped history of past quiz results and
// the last saved mock-test snapshot. The state is a single small
// aggregate with one writer; every mutation persists the full state
// through an injected Persister.
package tracker

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// HistoryLimit caps the quiz history; the oldest entry is evicted on
// overflow.
const HistoryLimit = 10

// QuizSummary is one entry of the quiz history, most recent first.
type QuizSummary struct {
	Type  string    `json:"type"` // "Full Mock" or "AI Mock"
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
	Total int       `json:"total"` // maximum possible score
}

// MockSnapshot is a last-write-wins snapshot of a mock test, at most
// one outstanding.
type MockSnapshot struct {
	Type      string    `json:"type"`
	StartedAt time.Time `json:"started_at"`
	Answered  int       `json:"answered"`
	Questions int       `json:"questions"`
	TimeLeft  int       `json:"time_left_secs"`
}

// State is the full persisted aggregate.
type State struct {
	CompletedTopics []string      `json:"completed_topics"`
	QuizHistory     []QuizSummary `json:"quiz_history"`
	MockProgress    *MockSnapshot `json:"mock_progress,omitempty"`
	LastSync        time.Time     `json:"last_sync"`
}

// Persister stores and restores the full tracker state. The state is
// small and single-writer, so a whole-state overwrite per mutation is
// the contract; no partial writes.
type Persister interface {
	Save(ctx context.Context, state State) error

	// Load returns the stored state, or nil if none has been saved.
	Load(ctx context.Context) (*State, error)
}

// Tracker is the explicit state container handed to consumers.
// It is not safe for concurrent use; the application has a single
// event-driven writer.
type Tracker struct {
	state     State
	persister Persister
	now       func() time.Time
}

// New creates a Tracker with empty state.
func New(p Persister) *Tracker {
	return &Tracker{persister: p, now: time.Now}
}

// Load restores a Tracker from the persister, starting empty when
// nothing has been stored yet.
func Load(ctx context.Context, p Persister) (*Tracker, error) {
	t := New(p)
	stored, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracker state: %w", err)
	}
	if stored != nil {
		t.state = *stored
	}
	return t, nil
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	s := t.state
	s.CompletedTopics = append([]string(nil), t.state.CompletedTopics...)
	s.QuizHistory = append([]QuizSummary(nil), t.state.QuizHistory...)
	if t.state.MockProgress != nil {
		mp := *t.state.MockProgress
		s.MockProgress = &mp
	}
	return s
}

// IsCompleted reports whether a topic is marked complete.
func (t *Tracker) IsCompleted(topicID string) bool {
	for _, id := range t.state.CompletedTopics {
		if id == topicID {
			return true
		}
	}
	return false
}

// ToggleTopic flips the completion mark on a topic and persists.
func (t *Tracker) ToggleTopic(ctx context.Context, topicID string) error {
	if t.IsCompleted(topicID) {
		kept := t.state.CompletedTopics[:0]
		for _, id := range t.state.CompletedTopics {
			if id != topicID {
				kept = append(kept, id)
			}
		}
		t.state.CompletedTopics = kept
	} else {
		t.state.CompletedTopics = append(t.state.CompletedTopics, topicID)
	}
	return t.persist(ctx)
}

// AddQuizResult prepends a quiz summary to the history, truncates to
// HistoryLimit and persists.
func (t *Tracker) AddQuizResult(ctx context.Context, summary QuizSummary) error {
	t.state.QuizHistory = append([]QuizSummary{summary}, t.state.QuizHistory...)
	if len(t.state.QuizHistory) > HistoryLimit {
		t.state.QuizHistory = t.state.QuizHistory[:HistoryLimit]
	}
	return t.persist(ctx)
}

// SaveMockProgress replaces the mock-test snapshot wholesale and
// persists.
func (t *Tracker) SaveMockProgress(ctx context.Context, snap MockSnapshot) error {
	t.state.MockProgress = &snap
	return t.persist(ctx)
}

// Progress returns the percentage of completed topics within the
// scope, rounded to the nearest integer. An empty scope (zero topics)
// yields 0.
func (t *Tracker) Progress(scope syllabus.Scope) int {
	ids := syllabus.TopicIDs(scope)
	if len(ids) == 0 {
		return 0
	}

	completed := make(map[string]bool, len(t.state.CompletedTopics))
	for _, id := range t.state.CompletedTopics {
		completed[id] = true
	}

	done := 0
	for _, id := range ids {
		if completed[id] {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(ids)) * 100))
}

func (t *Tracker) persist(ctx context.Context) error {
	t.state.LastSync = t.now()
	if t.persister == nil {
		return nil
	}
	if err := t.persister.Save(ctx, t.State()); err != nil {
		return fmt.Errorf("persist tracker state: %w", err)
	}
	return nil
}
