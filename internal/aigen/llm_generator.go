package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// aiQuestionYear tags generated questions with the exam year.
const aiQuestionYear = 2026

// questionOutput is one raw LLM question before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Chapter       string   `json:"chapter"`
	Topic         string   `json:"topic"`
	Explanation   string   `json:"explanation"`
}

// GenerateSet produces questions for every subject. A subject whose
// request fails or yields nothing usable is filled from the static
// pool instead, silently; only a fully empty result is an error.
func (g *LLMGenerator) GenerateSet(ctx context.Context) ([]question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question_generation")

	var (
		out     []question.Question
		lastErr error
	)

	for _, subject := range syllabus.AllSubjects() {
		qs, err := g.generateSubject(ctx, subject)
		if err != nil {
			lastErr = err
		}
		if len(qs) == 0 {
			qs = g.poolFallback(subject)
		}
		out = append(out, qs...)
	}

	if len(out) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoQuestions, lastErr)
		}
		return nil, ErrNoQuestions
	}

	return out, nil
}

// poolFallback samples one subject's batch from the static pool.
func (g *LLMGenerator) poolFallback(subject syllabus.Subject) []question.Question {
	seed := uint64(g.now().UnixNano())
	r := rand.New(rand.NewPCG(seed, seed>>17))
	return question.Sample(r, question.BySubject(subject), g.config.QuestionsPerSubject)
}

// generateSubject requests one batch of questions for a subject.
func (g *LLMGenerator) generateSubject(ctx context.Context, subject syllabus.Subject) ([]question.Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(subject, g.config.QuestionsPerSubject, g.config)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate %s questions: %w", subject, err)
	}

	var raw []questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse %s questions: %w", subject, err)
	}

	stamp := g.now().Unix()

	var out []question.Question
	for i, r := range raw {
		if len(r.Options) != question.OptionCount {
			continue
		}
		q := question.Question{
			ID:          aiQuestionID(subject, stamp, i),
			Subject:     subject,
			Chapter:     r.Chapter,
			Topic:       r.Topic,
			Text:        r.Question,
			Options:     [question.OptionCount]string(r.Options),
			Answer:      r.CorrectAnswer,
			Explanation: r.Explanation,
			Year:        aiQuestionYear,
		}
		if q.Validate() != nil {
			continue
		}
		out = append(out, q)
	}

	return out, nil
}

// aiQuestionID builds a unique ID like AI_PHY_1756720000_3.
func aiQuestionID(subject syllabus.Subject, stamp int64, i int) string {
	return fmt.Sprintf("AI_%s_%d_%d", strings.ToUpper(string(subject)[:3]), stamp, i)
}
