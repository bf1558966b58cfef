package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/ent"
	"github.com/Tamilselvan-ats/neet-sheet-z/ent/llmrequestevent"
	"github.com/Tamilselvan-ats/neet-sheet-z/ent/quizevent"
	entschema "github.com/Tamilselvan-ats/neet-sheet-z/ent/schema"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"
)

// QuizEventData captures one submitted mock test for the event log.
type QuizEventData struct {
	SessionID      string
	TestType       string
	Score          int
	TotalQuestions int
	Correct        int
	Incorrect      int
	Unattempted    int
	Percentage     int
	DurationSecs   int
	SubjectScores  []entschema.SubjectScore
}

// QuizRecord is a stored quiz event read back from the log.
type QuizRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// EventRepo appends and queries domain events. It also implements
// llm.RequestRecorder.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendQuizEvent records a submitted mock test.
func (r *EventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTestType(data.TestType).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrect(data.Correct).
		SetIncorrect(data.Incorrect).
		SetUnattempted(data.Unattempted).
		SetPercentage(data.Percentage).
		SetDurationSecs(data.DurationSecs)

	if len(data.SubjectScores) > 0 {
		builder = builder.SetSubjectScores(data.SubjectScores)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

// RecentQuizEvents returns up to limit quiz events, newest first.
func (r *EventRepo) RecentQuizEvents(ctx context.Context, limit int) ([]QuizRecord, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	out := make([]QuizRecord, len(events))
	for i, e := range events {
		out[i] = QuizRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			QuizEventData: QuizEventData{
				SessionID:      e.SessionID,
				TestType:       e.TestType,
				Score:          e.Score,
				TotalQuestions: e.TotalQuestions,
				Correct:        e.Correct,
				Incorrect:      e.Incorrect,
				Unattempted:    e.Unattempted,
				Percentage:     e.Percentage,
				DurationSecs:   e.DurationSecs,
				SubjectScores:  e.SubjectScores,
			},
		}
	}
	return out, nil
}

// AppendLLMRequest records an LLM API call event.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		SetRequestBody(rec.RequestBody).
		SetResponseBody(rec.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// LLMRecord is a stored LLM request event read back from the log.
type LLMRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	llm.RequestRecord
}

func llmRecordFromEnt(e *ent.LLMRequestEvent) LLMRecord {
	return LLMRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		RequestRecord: llm.RequestRecord{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
			ErrorMessage: e.ErrorMessage,
		},
	}
}

// RecentLLMRequests returns up to limit LLM request events, newest
// first.
func (r *EventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRecord, len(events))
	for i, e := range events {
		out[i] = llmRecordFromEnt(e)
	}
	return out, nil
}

// LLMRequestByID returns one LLM request event, or nil when the ID is
// unknown.
func (r *EventRepo) LLMRequestByID(ctx context.Context, id int) (*LLMRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	rec := llmRecordFromEnt(e)
	return &rec, nil
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMUsageByPurpose aggregates all LLM request events by purpose.
// The event volume of a single-user study app is small enough to
// aggregate in memory.
func (r *EventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*PurposeUsage)
	latency := make(map[string]int)
	for _, e := range events {
		u := byPurpose[e.Purpose]
		if u == nil {
			u = &PurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Purpose] += int(e.LatencyMs)
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for purpose, u := range byPurpose {
		u.AvgLatencyMs = latency[purpose] / u.Calls
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

// LLMUsageByModel aggregates all LLM request events by model.
func (r *EventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, e := range events {
		u := byModel[e.Model]
		if u == nil {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
