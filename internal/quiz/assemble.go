package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// Standard NEET mock composition: 180 questions, half Biology.
const (
	StandardBiologyCount   = 90
	StandardPhysicsCount   = 45
	StandardChemistryCount = 45
	StandardQuestionCount  = StandardBiologyCount + StandardPhysicsCount + StandardChemistryCount

	// StandardDuration is the full-paper time budget.
	StandardDuration = 180 * time.Minute

	// AIDuration is the shorter budget for the AI-enhanced variant.
	AIDuration = 15 * time.Minute

	// AIQuestionsPerSubject is how many questions the AI generator is
	// asked for per subject.
	AIQuestionsPerSubject = 5
)

// BuildMockTest assembles a standard 180-question paper: each
// subject's share is drawn uniformly without replacement from that
// subject's pool, then the combined set is shuffled. The rand source
// is injected so tests can fix the sequence.
func BuildMockTest(r *rand.Rand) ([]question.Question, error) {
	shares := []struct {
		subject syllabus.Subject
		count   int
	}{
		{syllabus.SubjectBiology, StandardBiologyCount},
		{syllabus.SubjectPhysics, StandardPhysicsCount},
		{syllabus.SubjectChemistry, StandardChemistryCount},
	}

	var combined []question.Question
	for _, share := range shares {
		pool := question.BySubject(share.subject)
		if len(pool) < share.count {
			return nil, fmt.Errorf("%s pool has %d questions, need %d", share.subject, len(pool), share.count)
		}
		combined = append(combined, question.Sample(r, pool, share.count)...)
	}

	return question.Shuffle(r, combined), nil
}
