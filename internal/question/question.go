// Package question defines the multiple-choice question model and the
// static fallback pool mock tests are assembled from.
package question

import (
	"fmt"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// OptionCount is the fixed number of options on every question.
const OptionCount = 4

// Question is a single multiple-choice item. Immutable once created.
// Chapter and Topic are display names, not syllabus IDs; the question
// bank and the syllabus dataset are independently versioned and no
// referential integrity is assumed between them.
type Question struct {
	ID          string
	Subject     syllabus.Subject
	Chapter     string
	Topic       string
	Text        string
	Options     [OptionCount]string
	Answer      int // index of the correct option, 0-3
	Explanation string
	Year        int
}

// Validate checks the structural invariants: a non-empty ID and text,
// a known subject, four non-empty options, and an in-range answer index.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has empty ID")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: empty text", q.ID)
	}
	if _, ok := syllabus.ParseSubject(string(q.Subject)); !ok {
		return fmt.Errorf("question %s: unknown subject %q", q.ID, q.Subject)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %s: option %d is empty", q.ID, i)
		}
	}
	if q.Answer < 0 || q.Answer >= OptionCount {
		return fmt.Errorf("question %s: answer index %d out of range", q.ID, q.Answer)
	}
	return nil
}
