package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered expression within a drill run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to DrillEvent"),
		field.String("expression_text").
			NotEmpty().
			Comment("The expression shown, e.g. \"12 + 7 * 3\""),
		field.String("expected_answer").
			NotEmpty().
			Comment("The correct result as displayed text"),
		field.String("given_answer").
			Comment("What the learner typed, possibly empty"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("difficulty").
			Comment("Difficulty level of the expression"),
		field.Int("operand_count").
			Comment("Number of operands in the expression"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
		index.Fields("difficulty"),
	}
}
