package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	require.NoError(t, err)
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendDrillEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendDrillEvent(ctx, DrillEventData{
		SessionID:  "run-1",
		Action:     "start",
		Difficulty: 2,
	})
	require.NoError(t, err)

	err = repo.AppendDrillEvent(ctx, DrillEventData{
		SessionID:       "run-1",
		Action:          "end",
		Difficulty:      2,
		QuestionsServed: 10,
		CorrectAnswers:  8,
		DurationSecs:    120,
	})
	require.NoError(t, err)
}

func TestAnswerStatsAggregation(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "run-1", ExpressionText: "3 + 5", ExpectedAnswer: "8", GivenAnswer: "8", Correct: true, TimeMs: 2000, Difficulty: 1, OperandCount: 2},
		{SessionID: "run-1", ExpressionText: "2 * 4", ExpectedAnswer: "8", GivenAnswer: "6", Correct: false, TimeMs: 4000, Difficulty: 1, OperandCount: 2},
		{SessionID: "run-2", ExpressionText: "12 + 34", ExpectedAnswer: "46", GivenAnswer: "46", Correct: true, TimeMs: 6000, Difficulty: 2, OperandCount: 2},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	rows, err := repo.AnswerStats(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Difficulty)
	assert.Equal(t, 2, rows[0].Answered)
	assert.Equal(t, 1, rows[0].Correct)
	assert.Equal(t, 3000, rows[0].MeanTimeMs)

	assert.Equal(t, 2, rows[1].Difficulty)
	assert.Equal(t, 1, rows[1].Answered)
	assert.Equal(t, 1, rows[1].Correct)
	assert.Equal(t, 6000, rows[1].MeanTimeMs)
}

func TestAnswerStatsEmpty(t *testing.T) {
	repo := testRepo(t)
	rows, err := repo.AnswerStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSequenceMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.AppendDrillEvent(ctx, DrillEventData{SessionID: "run-1", Action: "start", Difficulty: 1}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "run-1", ExpressionText: "3 + 5", ExpectedAnswer: "8", GivenAnswer: "8",
		Correct: true, TimeMs: 1000, Difficulty: 1, OperandCount: 2,
	}))
	require.NoError(t, repo.AppendDrillEvent(ctx, DrillEventData{SessionID: "run-1", Action: "end", Difficulty: 1}))

	var seqs []int64
	rows, err := s.DB().Query(`
		SELECT sequence FROM drill_events
		UNION ALL
		SELECT sequence FROM answer_events
		ORDER BY sequence`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var seq int64
		require.NoError(t, rows.Scan(&seq))
		seqs = append(seqs, seq)
	}
	require.NoError(t, rows.Err())

	require.Len(t, seqs, 3)
	for i := 1; i < len(seqs); i++ {
		assert.Greater(t, seqs[i], seqs[i-1], "sequence must be strictly increasing")
	}
}
