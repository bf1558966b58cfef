// Package quiz implements the mock-test screen: question loading,
// answering, the review palette, the countdown timer and submission.
package quiz

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/aigen"
	quizengine "github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/router"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/screens/results"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/components"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/ui/layout"
)

// CommitFunc persists a submitted result before the session leaves
// InProgress. Injected so the screen stays storage-agnostic.
type CommitFunc func(ctx context.Context, typ quizengine.TestType, sessionID string, durationSecs int, res quizengine.Result) error

// QuizScreen drives one mock-test attempt from loading to submission.
type QuizScreen struct {
	tracker   *tracker.Tracker
	generator aigen.Generator
	commit    CommitFunc
	testType  quizengine.TestType

	session    *quizengine.Session
	budgetSecs int
	options    components.OptionList
	jumpInput  components.TextInput

	showQuitConfirm   bool
	showSubmitConfirm bool
	jumping           bool
	alert             string
	errMsg            string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates the screen for one attempt. The generator is only
// consulted for the AI test type; a standard test ignores it.
func New(tr *tracker.Tracker, generator aigen.Generator, commit CommitFunc, testType quizengine.TestType) *QuizScreen {
	return &QuizScreen{
		tracker:   tr,
		generator: generator,
		commit:    commit,
		testType:  testType,
		session:   quizengine.NewSession(),
		jumpInput: components.NewTextInput("Q#", true, 3),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadQuestions()
}

func (s *QuizScreen) Title() string {
	return string(s.testType)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm || s.showSubmitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if s.jumping {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter/1-4", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "M", Description: "Mark"},
		{Key: "G", Description: "Go to"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// HandleEsc intercepts Esc during an attempt so a stray keypress
// cannot silently abandon three hours of answers.
func (s *QuizScreen) HandleEsc() tea.Cmd {
	if s.session.Phase() != quizengine.PhaseInProgress {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.jumping {
		s.jumping = false
		s.jumpInput.Reset()
		return nil
	}
	if s.showSubmitConfirm {
		s.showSubmitConfirm = false
		return nil
	}
	s.showQuitConfirm = true
	return nil
}

// loadQuestions assembles the paper asynchronously. The AI variant
// falls back to a standard offline paper when generation fails. The
// session ID doubles as the request token stamped on the response.
func (s *QuizScreen) loadQuestions() tea.Cmd {
	generator := s.generator
	testType := s.testType
	token := s.session.ID
	return func() tea.Msg {
		if testType == quizengine.TestAI && generator != nil {
			qs, err := generator.GenerateSet(context.Background())
			if err == nil && len(qs) > 0 {
				return questionsReadyMsg{
					Token:     token,
					Questions: qs,
					Type:      quizengine.TestAI,
					Budget:    quizengine.AIDuration,
				}
			}
			qs, buildErr := quizengine.BuildMockTest(newPaperRand())
			if buildErr != nil {
				return questionsReadyMsg{Token: token, Err: buildErr}
			}
			return questionsReadyMsg{
				Token:     token,
				Questions: qs,
				Type:      quizengine.TestStandard,
				Budget:    quizengine.StandardDuration,
				Note:      "AI generation failed. Starting a standard mock test instead.",
			}
		}

		qs, err := quizengine.BuildMockTest(newPaperRand())
		if err != nil {
			return questionsReadyMsg{Token: token, Err: err}
		}
		return questionsReadyMsg{
			Token:     token,
			Questions: qs,
			Type:      quizengine.TestStandard,
			Budget:    quizengine.StandardDuration,
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)
	case timerTickMsg:
		return s.handleTimerTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	// A response carrying a foreign token belongs to an abandoned
	// attempt; applying it would restart the timer and corrupt the
	// current session. Duplicate deliveries are dropped the same way.
	if msg.Token != s.session.ID || s.session.Phase() != quizengine.PhaseNotStarted {
		return s, nil
	}

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.alert = msg.Note
	s.budgetSecs = int(msg.Budget.Seconds())
	s.session.Start(msg.Type, msg.Questions, msg.Budget)
	s.syncOptions()
	return s, tickCmd()
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.session.Phase() != quizengine.PhaseInProgress {
		return s, nil
	}
	if s.session.Tick() {
		// Budget exhausted: close all overlays and force submission.
		s.showQuitConfirm = false
		s.showSubmitConfirm = false
		s.jumping = false
		return s.doSubmit()
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session.Phase() != quizengine.PhaseInProgress {
		return s, nil
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s.quitSavingProgress()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if s.showSubmitConfirm {
		switch key {
		case "y", "Y":
			s.showSubmitConfirm = false
			return s.doSubmit()
		case "n", "N", "esc":
			s.showSubmitConfirm = false
		}
		return s, nil
	}

	if s.jumping {
		switch key {
		case "enter":
			if n, err := s.jumpInput.NumericValue(); err == nil {
				s.session.JumpTo(n - 1)
				s.syncOptions()
			}
			s.jumping = false
			s.jumpInput.Reset()
			return s, nil
		case "esc":
			s.jumping = false
			s.jumpInput.Reset()
			return s, nil
		}
		var cmd tea.Cmd
		s.jumpInput, cmd = s.jumpInput.Update(msg)
		return s, cmd
	}

	switch key {
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	case "enter":
		s.session.Answer(s.options.Cursor)
		s.options.Chosen = s.options.Cursor
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		s.session.Answer(idx)
		s.options.Cursor = idx
		s.options.Chosen = idx
	case "a", "b", "c", "d":
		idx := int(key[0] - 'a')
		s.session.Answer(idx)
		s.options.Cursor = idx
		s.options.Chosen = idx
	case "left", "h", "p":
		s.session.Prev()
		s.syncOptions()
	case "right", "l", "n", " ", "space":
		s.session.Next()
		s.syncOptions()
	case "m":
		s.session.ToggleMark()
	case "g", "/":
		s.jumping = true
		s.jumpInput.Reset()
		return s, s.jumpInput.Init()
	case "s":
		s.showSubmitConfirm = true
	}

	return s, nil
}

// syncOptions rebuilds the option list for the current question,
// restoring any saved answer.
func (s *QuizScreen) syncOptions() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Options[:])
	if chosen, ok := s.session.AnswerFor(q.ID); ok {
		s.options.Chosen = chosen
		s.options.Cursor = chosen
	}
}

// quitSavingProgress stores a resume snapshot and leaves the screen.
// The attempt itself is discarded; only the snapshot survives.
func (s *QuizScreen) quitSavingProgress() (screen.Screen, tea.Cmd) {
	snap := tracker.MockSnapshot{
		Type:      string(s.session.Type),
		StartedAt: s.session.StartedAt,
		Answered:  s.session.AnsweredCount(),
		Questions: len(s.session.Questions),
		TimeLeft:  s.session.TimeLeft(),
	}
	if err := s.tracker.SaveMockProgress(context.Background(), snap); err != nil {
		s.showQuitConfirm = false
		s.alert = "Could not save progress: " + err.Error()
		return s, nil
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// doSubmit scores and persists the attempt. On commit failure the
// session stays InProgress so the learner can retry without losing
// answers; on success the screen is replaced by the results view so
// Esc cannot land back inside a submitted test.
func (s *QuizScreen) doSubmit() (screen.Screen, tea.Cmd) {
	sess := s.session
	durationSecs := s.budgetSecs - sess.TimeLeft()

	res, err := sess.Submit(func(r quizengine.Result) error {
		ctx := context.Background()
		if s.commit != nil {
			if err := s.commit(ctx, sess.Type, sess.ID, durationSecs, r); err != nil {
				return err
			}
		}
		return s.tracker.AddQuizResult(ctx, tracker.QuizSummary{
			Type:  string(sess.Type),
			Date:  time.Now(),
			Score: r.Score,
			Total: quizengine.MaxScore(r.TotalQuestions),
		})
	})
	if err != nil {
		s.alert = "Could not save result: " + err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(sess.Type, res)}
	}
}

// newPaperRand seeds a fresh source per paper so consecutive mocks
// draw different question samples.
func newPaperRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>17))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
