package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// memPersister records saves in memory for tests.
type memPersister struct {
	saved  *State
	saves  int
	failed bool
}

func (m *memPersister) Save(_ context.Context, s State) error {
	if m.failed {
		return fmt.Errorf("disk full")
	}
	m.saved = &s
	m.saves++
	return nil
}

func (m *memPersister) Load(_ context.Context) (*State, error) {
	return m.saved, nil
}

func TestToggleTopicTwiceRestoresMembership(t *testing.T) {
	p := &memPersister{}
	tr := New(p)
	ctx := context.Background()

	if err := tr.ToggleTopic(ctx, "p11_01_01"); err != nil {
		t.Fatal(err)
	}
	if !tr.IsCompleted("p11_01_01") {
		t.Fatal("topic should be completed after first toggle")
	}
	if err := tr.ToggleTopic(ctx, "p11_01_01"); err != nil {
		t.Fatal(err)
	}
	if tr.IsCompleted("p11_01_01") {
		t.Fatal("topic should not be completed after second toggle")
	}
	if p.saves != 2 {
		t.Errorf("persisted %d times, want 2", p.saves)
	}
}

func TestQuizHistoryCapped(t *testing.T) {
	tr := New(&memPersister{})
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		err := tr.AddQuizResult(ctx, QuizSummary{
			Type:  "Full Mock",
			Date:  time.Date(2026, 1, i, 0, 0, 0, 0, time.UTC),
			Score: i,
			Total: 720,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	hist := tr.State().QuizHistory
	if len(hist) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(hist), HistoryLimit)
	}
	if hist[0].Score != 11 {
		t.Errorf("most recent entry score = %d, want 11", hist[0].Score)
	}
	for _, h := range hist {
		if h.Score == 1 {
			t.Error("oldest entry should have been evicted")
		}
	}
}

func TestProgressScopes(t *testing.T) {
	tr := New(&memPersister{})
	ctx := context.Background()

	// Complete every topic of one physics chapter.
	phys := syllabus.Chapters(syllabus.SubjectPhysics)
	ch := phys[0]
	for _, topic := range ch.Topics {
		if err := tr.ToggleTopic(ctx, topic.ID); err != nil {
			t.Fatal(err)
		}
	}

	if got := tr.Progress(syllabus.Scope{Subject: syllabus.SubjectPhysics, ChapterID: ch.ID}); got != 100 {
		t.Errorf("chapter progress = %d, want 100", got)
	}

	subjTotal := len(syllabus.TopicIDs(syllabus.Scope{Subject: syllabus.SubjectPhysics}))
	wantSubj := int(float64(len(ch.Topics))/float64(subjTotal)*100 + 0.5)
	if got := tr.Progress(syllabus.Scope{Subject: syllabus.SubjectPhysics}); got != wantSubj {
		t.Errorf("subject progress = %d, want %d", got, wantSubj)
	}

	overall := tr.Progress(syllabus.Scope{})
	if overall < 0 || overall > 100 {
		t.Errorf("overall progress %d out of [0,100]", overall)
	}

	// Unrelated subject stays at zero.
	if got := tr.Progress(syllabus.Scope{Subject: syllabus.SubjectBiology}); got != 0 {
		t.Errorf("biology progress = %d, want 0", got)
	}
}

func TestProgressEmptyScope(t *testing.T) {
	tr := New(&memPersister{})
	got := tr.Progress(syllabus.Scope{Subject: syllabus.SubjectPhysics, ChapterID: "missing"})
	if got != 0 {
		t.Errorf("empty scope progress = %d, want 0", got)
	}
}

func TestSaveMockProgressLastWriteWins(t *testing.T) {
	tr := New(&memPersister{})
	ctx := context.Background()

	first := MockSnapshot{Type: "Full Mock", Answered: 10, Questions: 180}
	second := MockSnapshot{Type: "AI Mock", Answered: 3, Questions: 15}

	if err := tr.SaveMockProgress(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := tr.SaveMockProgress(ctx, second); err != nil {
		t.Fatal(err)
	}

	got := tr.State().MockProgress
	if got == nil || got.Type != "AI Mock" || got.Answered != 3 {
		t.Errorf("mock progress = %+v, want the second snapshot", got)
	}
}

func TestLoadRestoresState(t *testing.T) {
	p := &memPersister{}
	ctx := context.Background()

	tr := New(p)
	if err := tr.ToggleTopic(ctx, "b12_01_02"); err != nil {
		t.Fatal(err)
	}

	restored, err := Load(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if !restored.IsCompleted("b12_01_02") {
		t.Error("restored tracker lost completed topic")
	}
}

func TestLoadEmptyStartsFresh(t *testing.T) {
	tr, err := Load(context.Background(), &memPersister{})
	if err != nil {
		t.Fatal(err)
	}
	s := tr.State()
	if len(s.CompletedTopics) != 0 || len(s.QuizHistory) != 0 || s.MockProgress != nil {
		t.Errorf("expected empty defaults, got %+v", s)
	}
}

func TestMutationUpdatesLastSync(t *testing.T) {
	tr := New(&memPersister{})
	fixed := time.Date(2026, 5, 3, 14, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	if err := tr.ToggleTopic(context.Background(), "c11_01_01"); err != nil {
		t.Fatal(err)
	}
	if !tr.State().LastSync.Equal(fixed) {
		t.Errorf("LastSync = %v, want %v", tr.State().LastSync, fixed)
	}
}

func TestPersistFailureSurfaces(t *testing.T) {
	tr := New(&memPersister{failed: true})
	if err := tr.ToggleTopic(context.Background(), "p11_01_01"); err == nil {
		t.Error("expected persist error to surface")
	}
}
