package store

import "context"

// DrillEventData captures a drill run lifecycle event. Start events
// carry the run parameters; end events additionally carry totals.
type DrillEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	Difficulty      int
	NumOperands     int // 0 when the count is drawn per question
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// AnswerEventData captures a single answered expression.
type AnswerEventData struct {
	SessionID      string
	ExpressionText string
	ExpectedAnswer string
	GivenAnswer    string
	Correct        bool
	TimeMs         int
	Difficulty     int
	OperandCount   int
}

// AnswerStatsRow aggregates answer history for one difficulty level.
type AnswerStatsRow struct {
	Difficulty int
	Answered   int
	Correct    int
	MeanTimeMs int
}

// EventRepo provides append and aggregate access to drill history.
type EventRepo interface {
	// AppendDrillEvent records a run start or end.
	AppendDrillEvent(ctx context.Context, data DrillEventData) error

	// AppendAnswerEvent records an answered expression.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AnswerStats aggregates all answer events per difficulty level,
	// ordered by ascending difficulty.
	AnswerStats(ctx context.Context) ([]AnswerStatsRow, error)
}
