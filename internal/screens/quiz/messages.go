package quiz

import (
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	quizengine "github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
)

// questionsReadyMsg is sent when the question set has been assembled,
// either by the AI generator or from the offline pool. Token ties the
// response to the load that requested it; the router delivers every
// message to whatever screen is active, so a slow load from an
// abandoned attempt can land on a different QuizScreen.
type questionsReadyMsg struct {
	Token     string
	Questions []question.Question
	Type      quizengine.TestType
	Budget    time.Duration

	// Note carries a non-fatal alert, set when AI generation failed
	// and the offline pool was used instead.
	Note string

	Err error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time
