package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a submitted mock test with its full scoring
// breakdown. The tracker keeps only a short rolling history, so this
// event log is the durable record of every attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SubjectScore is the serialized per-subject breakdown.
type SubjectScore struct {
	Subject string `json:"subject"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the test session"),
		field.String("test_type").
			NotEmpty().
			Comment("Full Mock or AI Mock"),
		field.Int("score").
			Comment("Net score, may be negative"),
		field.Int("total_questions").
			Comment("Questions in the paper"),
		field.Int("correct").
			Default(0),
		field.Int("incorrect").
			Default(0),
		field.Int("unattempted").
			Default(0),
		field.Int("percentage").
			Comment("Rounded percentage of the maximum score"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time actually spent"),
		field.JSON("subject_scores", []SubjectScore{}).
			Optional().
			Comment("Per-subject correct/total"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("test_type"),
	}
}
