// Package drill holds the pure state of an interactive practice run:
// which expression is on screen, the running score, and the summary
// built when the run ends. It has no UI or storage dependencies so the
// transitions stay unit-testable.
package drill

import (
	"time"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
)

// Phase tracks where the drill is in its lifecycle.
type Phase string

const (
	// PhaseActive means a question is on screen awaiting an answer.
	PhaseActive Phase = "active"

	// PhaseFeedback means the last answer's verdict is showing.
	PhaseFeedback Phase = "feedback"

	// PhaseSummary means the run has ended and totals are showing.
	PhaseSummary Phase = "summary"
)

// State is the mutable state of one drill run.
type State struct {
	SessionID   string
	Difficulty  int
	NumOperands int // 0 means a random count per question

	Phase Phase

	StartTime     time.Time
	QuestionStart time.Time

	Current *exprgen.Expression

	TotalAnswered int
	TotalCorrect  int
	Streak        int
	BestStreak    int
	TotalTimeMs   int64

	LastAnswer  string
	LastCorrect bool
}

// NewState creates the state for a fresh run.
func NewState(sessionID string, difficulty, numOperands int, now time.Time) *State {
	return &State{
		SessionID:   sessionID,
		Difficulty:  difficulty,
		NumOperands: numOperands,
		Phase:       PhaseActive,
		StartTime:   now,
	}
}

// SetQuestion installs the next expression and restarts the per-question
// clock.
func (s *State) SetQuestion(expr exprgen.Expression, now time.Time) {
	s.Current = &expr
	s.QuestionStart = now
	s.Phase = PhaseActive
}

// HandleAnswer scores the given answer against the current expression,
// updates the counters and streaks, and moves to the feedback phase.
// It returns the verdict and the time taken in milliseconds.
func (s *State) HandleAnswer(answer string, places int, now time.Time) (correct bool, timeMs int) {
	if s.Current == nil {
		return false, 0
	}

	timeMs = int(now.Sub(s.QuestionStart).Milliseconds())
	correct = CheckAnswer(answer, s.Current.Result, places)

	s.TotalAnswered++
	s.TotalTimeMs += int64(timeMs)
	if correct {
		s.TotalCorrect++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	s.LastAnswer = answer
	s.LastCorrect = correct
	s.Phase = PhaseFeedback

	return correct, timeMs
}
