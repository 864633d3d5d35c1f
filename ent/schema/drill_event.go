package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records the start or end of a drill run, with totals on
// the end event.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links start/end events and their answers"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("difficulty").
			Comment("Difficulty level the run was played at"),
		field.Int("num_operands").
			Comment("Fixed operand count, 0 when random per question"),
		field.Int("questions_served").
			Default(0).
			Comment("Questions answered (end events only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (end events only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Run duration in seconds (end events only)"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
