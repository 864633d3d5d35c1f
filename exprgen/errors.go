package exprgen

import "fmt"

// InvalidDifficultyError reports a difficulty outside [1, MaxDifficulty].
type InvalidDifficultyError struct {
	Difficulty int
	Max        int
}

func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("difficulty must be between 1 and %d, got %d", e.Max, e.Difficulty)
}

// InvalidOperandCountError reports a requested operand count outside
// [MinOperands, MaxOperands].
type InvalidOperandCountError struct {
	Count int
	Min   int
	Max   int
}

func (e *InvalidOperandCountError) Error() string {
	return fmt.Sprintf("operand count must be between %d and %d, got %d", e.Min, e.Max, e.Count)
}

// ExhaustedAttemptsError reports that no candidate satisfying the
// configured constraints was found within the attempt bound. It usually
// signals an infeasible constraint combination rather than bad luck.
type ExhaustedAttemptsError struct {
	Attempts int
}

func (e *ExhaustedAttemptsError) Error() string {
	return fmt.Sprintf("no valid expression found after %d attempts", e.Attempts)
}
