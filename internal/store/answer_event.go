package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/vishwaszadte/math-expression-generator/ent"
	"github.com/vishwaszadte/math-expression-generator/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetExpressionText(data.ExpressionText).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetDifficulty(data.Difficulty).
		SetOperandCount(data.OperandCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// AnswerStats folds the whole answer log in memory. The log is local
// and single-user, so row counts stay small enough that pushing the
// aggregation into SQL buys nothing.
func (r *eventRepo) AnswerStats(ctx context.Context) ([]AnswerStatsRow, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	type acc struct {
		answered    int
		correct     int
		totalTimeMs int64
	}
	byDifficulty := make(map[int]*acc)
	for _, e := range events {
		a := byDifficulty[e.Difficulty]
		if a == nil {
			a = &acc{}
			byDifficulty[e.Difficulty] = a
		}
		a.answered++
		if e.Correct {
			a.correct++
		}
		a.totalTimeMs += int64(e.TimeMs)
	}

	rows := make([]AnswerStatsRow, 0, len(byDifficulty))
	for difficulty, a := range byDifficulty {
		row := AnswerStatsRow{
			Difficulty: difficulty,
			Answered:   a.answered,
			Correct:    a.correct,
		}
		if a.answered > 0 {
			row.MeanTimeMs = int(a.totalTimeMs / int64(a.answered))
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Difficulty < rows[j].Difficulty })
	return rows, nil
}
