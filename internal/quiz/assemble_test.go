package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

func TestBuildMockTestComposition(t *testing.T) {
	// The 90/45/45 split must hold for any rand sequence.
	for seed := uint64(0); seed < 5; seed++ {
		r := rand.New(rand.NewPCG(seed, 0))
		qs, err := BuildMockTest(r)
		if err != nil {
			t.Fatal(err)
		}

		if len(qs) != StandardQuestionCount {
			t.Fatalf("seed %d: got %d questions, want %d", seed, len(qs), StandardQuestionCount)
		}

		counts := make(map[syllabus.Subject]int)
		seen := make(map[string]bool)
		for _, q := range qs {
			counts[q.Subject]++
			if seen[q.ID] {
				t.Fatalf("seed %d: question %s drawn twice", seed, q.ID)
			}
			seen[q.ID] = true
		}

		if counts[syllabus.SubjectBiology] != StandardBiologyCount ||
			counts[syllabus.SubjectPhysics] != StandardPhysicsCount ||
			counts[syllabus.SubjectChemistry] != StandardChemistryCount {
			t.Errorf("seed %d: composition %v, want 90/45/45", seed, counts)
		}
	}
}

func TestBuildMockTestSeededReproducible(t *testing.T) {
	a, err := BuildMockTest(rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildMockTest(rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different papers at index %d", i)
		}
	}
}
