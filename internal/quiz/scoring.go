package quiz

import (
	"math"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// NEET marking scheme.
const (
	MarksCorrect   = 4
	MarksIncorrect = -1
)

// SubjectResult accumulates per-subject counts.
type SubjectResult struct {
	Correct int
	Total   int
}

// Result is the full score breakdown for a submitted test.
type Result struct {
	Score            int
	Correct          int
	Incorrect        int
	Unattempted      int
	SubjectBreakdown map[syllabus.Subject]SubjectResult
	TotalQuestions   int

	// Percentage is the score as a share of the maximum possible
	// score, rounded to the nearest integer. It is deliberately not
	// clamped: heavy negative marking yields a negative percentage,
	// and callers must not assume [0,100].
	Percentage int
}

// Score computes the result for a question set and answer map.
// Questions absent from answers count as unattempted. Pure and
// deterministic.
func Score(questions []question.Question, answers map[string]int) Result {
	res := Result{
		SubjectBreakdown: make(map[syllabus.Subject]SubjectResult),
		TotalQuestions:   len(questions),
	}

	for _, q := range questions {
		sb := res.SubjectBreakdown[q.Subject]
		sb.Total++

		chosen, attempted := answers[q.ID]
		switch {
		case !attempted:
			res.Unattempted++
		case chosen == q.Answer:
			res.Correct++
			res.Score += MarksCorrect
			sb.Correct++
		default:
			res.Incorrect++
			res.Score += MarksIncorrect
		}
		res.SubjectBreakdown[q.Subject] = sb
	}

	if res.TotalQuestions > 0 {
		max := float64(res.TotalQuestions * MarksCorrect)
		res.Percentage = int(math.Round(float64(res.Score) / max * 100))
	}
	return res
}

// MaxScore returns the maximum achievable score for a question count.
func MaxScore(totalQuestions int) int {
	return totalQuestions * MarksCorrect
}
