package question

import (
	"math/rand/v2"
	"testing"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

func TestBankComposition(t *testing.T) {
	counts := make(map[syllabus.Subject]int)
	for _, q := range Bank() {
		counts[q.Subject]++
	}

	tests := []struct {
		subject syllabus.Subject
		want    int
	}{
		{syllabus.SubjectBiology, 500},
		{syllabus.SubjectChemistry, 250},
		{syllabus.SubjectPhysics, 250},
	}
	for _, tt := range tests {
		if counts[tt.subject] != tt.want {
			t.Errorf("%s pool size = %d, want %d", tt.subject, counts[tt.subject], tt.want)
		}
	}
}

func TestBankQuestionsValid(t *testing.T) {
	ids := make(map[string]bool)
	for _, q := range Bank() {
		if err := q.Validate(); err != nil {
			t.Fatalf("invalid bank question: %v", err)
		}
		if ids[q.ID] {
			t.Fatalf("duplicate question ID %s", q.ID)
		}
		ids[q.ID] = true
	}
}

func TestBankDeterministic(t *testing.T) {
	a := generateBank()
	b := generateBank()
	if len(a) != len(b) {
		t.Fatalf("bank sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Answer != b[i].Answer || a[i].Options != b[i].Options {
			t.Fatalf("bank question %d differs between generations", i)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Question{
		ID:      "PHY_001",
		Subject: syllabus.SubjectPhysics,
		Text:    "What is inertia?",
		Options: [OptionCount]string{"a", "b", "c", "d"},
		Answer:  2,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty id", func(q *Question) { q.ID = "" }},
		{"empty text", func(q *Question) { q.Text = "" }},
		{"bad subject", func(q *Question) { q.Subject = "Maths" }},
		{"empty option", func(q *Question) { q.Options[3] = "" }},
		{"answer too low", func(q *Question) { q.Answer = -1 }},
		{"answer too high", func(q *Question) { q.Answer = 4 }},
	}
	for _, tt := range tests {
		q := valid
		tt.mutate(&q)
		if err := q.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pool := BySubject(syllabus.SubjectPhysics)

	got := Sample(r, pool, 45)
	if len(got) != 45 {
		t.Fatalf("Sample returned %d questions, want 45", len(got))
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Fatalf("question %s sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleSmallPool(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pool := Bank()[:3]
	got := Sample(r, pool, 10)
	if len(got) != 3 {
		t.Errorf("Sample from pool of 3 returned %d, want 3", len(got))
	}
}

func TestShuffleDoesNotMutate(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	orig := BySubject(syllabus.SubjectChemistry)
	first := orig[0].ID

	_ = Shuffle(r, orig)
	if orig[0].ID != first {
		t.Error("Shuffle mutated its input")
	}
}
