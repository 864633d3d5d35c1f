package drill

import "time"

// Summary is the immutable result of a finished run.
type Summary struct {
	SessionID  string
	Answered   int
	Correct    int
	Accuracy   float64 // 0-100
	BestStreak int
	Duration   time.Duration
	AvgTimeMs  int
}

// BuildSummary derives the end-of-run summary from the state.
func BuildSummary(s *State, now time.Time) Summary {
	sum := Summary{
		SessionID:  s.SessionID,
		Answered:   s.TotalAnswered,
		Correct:    s.TotalCorrect,
		BestStreak: s.BestStreak,
		Duration:   now.Sub(s.StartTime),
	}
	if s.TotalAnswered > 0 {
		sum.Accuracy = float64(s.TotalCorrect) / float64(s.TotalAnswered) * 100
		sum.AvgTimeMs = int(s.TotalTimeMs / int64(s.TotalAnswered))
	}
	return sum
}
