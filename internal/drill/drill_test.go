package drill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		answer string
		result float64
		places int
		want   bool
	}{
		{"8", 8, 2, true},
		{" 8 ", 8, 2, true},
		{"8.0", 8, 2, true},
		{"008", 8, 2, true},
		{"9", 8, 2, false},
		{"3.5", 3.5, 2, true},
		{"3.50", 3.5, 2, true},
		{"3.54", 3.5, 2, false},
		{"-2", -2, 2, true},
		{"", 0, 2, false},
		{"abc", 8, 2, false},
		{"3.3", 3.33, 1, true}, // within half a unit of one place
	}

	for _, tt := range tests {
		got := CheckAnswer(tt.answer, tt.result, tt.places)
		assert.Equal(t, tt.want, got, "CheckAnswer(%q, %v, %d)", tt.answer, tt.result, tt.places)
	}
}

func TestHandleAnswerScoring(t *testing.T) {
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := NewState("session-1", 1, 0, start)
	require.Equal(t, PhaseActive, s.Phase)

	expr := exprgen.Expression{Text: "3 + 5", Result: 8}
	s.SetQuestion(expr, start)

	correct, timeMs := s.HandleAnswer("8", 2, start.Add(4*time.Second))
	assert.True(t, correct)
	assert.Equal(t, 4000, timeMs)
	assert.Equal(t, PhaseFeedback, s.Phase)
	assert.Equal(t, 1, s.TotalAnswered)
	assert.Equal(t, 1, s.TotalCorrect)
	assert.Equal(t, 1, s.Streak)

	s.SetQuestion(exprgen.Expression{Text: "2 + 2", Result: 4}, start.Add(5*time.Second))
	correct, _ = s.HandleAnswer("5", 2, start.Add(7*time.Second))
	assert.False(t, correct)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, 1, s.BestStreak)
	assert.Equal(t, 2, s.TotalAnswered)
	assert.Equal(t, 1, s.TotalCorrect)
	assert.Equal(t, "5", s.LastAnswer)
	assert.False(t, s.LastCorrect)
}

func TestHandleAnswerWithoutQuestion(t *testing.T) {
	s := NewState("session-2", 1, 0, time.Now())
	correct, timeMs := s.HandleAnswer("8", 2, time.Now())
	assert.False(t, correct)
	assert.Zero(t, timeMs)
	assert.Zero(t, s.TotalAnswered)
}

func TestBuildSummary(t *testing.T) {
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	s := NewState("session-3", 2, 3, start)

	answers := []struct {
		given string
		expr  exprgen.Expression
	}{
		{"8", exprgen.Expression{Text: "3 + 5", Result: 8}},
		{"4", exprgen.Expression{Text: "2 + 2", Result: 4}},
		{"9", exprgen.Expression{Text: "2 * 5", Result: 10}},
		{"33", exprgen.Expression{Text: "12 + 7 * 3", Result: 33}},
	}

	now := start
	for _, a := range answers {
		s.SetQuestion(a.expr, now)
		now = now.Add(2 * time.Second)
		s.HandleAnswer(a.given, 2, now)
	}

	sum := BuildSummary(s, now)
	assert.Equal(t, "session-3", sum.SessionID)
	assert.Equal(t, 4, sum.Answered)
	assert.Equal(t, 3, sum.Correct)
	assert.InDelta(t, 75.0, sum.Accuracy, 0.001)
	assert.Equal(t, 2, sum.BestStreak)
	assert.Equal(t, 8*time.Second, sum.Duration)
	assert.Equal(t, 2000, sum.AvgTimeMs)
}

func TestBuildSummaryEmptyRun(t *testing.T) {
	start := time.Now()
	s := NewState("session-4", 1, 0, start)
	sum := BuildSummary(s, start.Add(time.Second))
	assert.Zero(t, sum.Answered)
	assert.Zero(t, sum.Accuracy)
	assert.Zero(t, sum.AvgTimeMs)
}
