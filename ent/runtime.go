// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vishwaszadte/math-expression-generator/ent/answerevent"
	"github.com/vishwaszadte/math-expression-generator/ent/drillevent"
	"github.com/vishwaszadte/math-expression-generator/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescExpressionText is the schema descriptor for expression_text field.
	answereventDescExpressionText := answereventFields[1].Descriptor()
	// answerevent.ExpressionTextValidator is a validator for the "expression_text" field. It is called by the builders before save.
	answerevent.ExpressionTextValidator = answereventDescExpressionText.Validators[0].(func(string) error)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[2].Descriptor()
	// answerevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	answerevent.ExpectedAnswerValidator = answereventDescExpectedAnswer.Validators[0].(func(string) error)
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescSessionID is the schema descriptor for session_id field.
	drilleventDescSessionID := drilleventFields[0].Descriptor()
	// drillevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	drillevent.SessionIDValidator = drilleventDescSessionID.Validators[0].(func(string) error)
	// drilleventDescAction is the schema descriptor for action field.
	drilleventDescAction := drilleventFields[1].Descriptor()
	// drillevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	drillevent.ActionValidator = drilleventDescAction.Validators[0].(func(string) error)
	// drilleventDescQuestionsServed is the schema descriptor for questions_served field.
	drilleventDescQuestionsServed := drilleventFields[4].Descriptor()
	// drillevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	drillevent.DefaultQuestionsServed = drilleventDescQuestionsServed.Default.(int)
	// drilleventDescCorrectAnswers is the schema descriptor for correct_answers field.
	drilleventDescCorrectAnswers := drilleventFields[5].Descriptor()
	// drillevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	drillevent.DefaultCorrectAnswers = drilleventDescCorrectAnswers.Default.(int)
	// drilleventDescDurationSecs is the schema descriptor for duration_secs field.
	drilleventDescDurationSecs := drilleventFields[6].Descriptor()
	// drillevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	drillevent.DefaultDurationSecs = drilleventDescDurationSecs.Default.(int)
}
