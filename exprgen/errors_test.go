package exprgen

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want []string
	}{
		{&InvalidDifficultyError{Difficulty: 7, Max: 4}, []string{"difficulty", "1 and 4", "7"}},
		{&InvalidOperandCountError{Count: 9, Min: 2, Max: 5}, []string{"operand count", "2 and 5", "9"}},
		{&ExhaustedAttemptsError{Attempts: 100}, []string{"no valid expression", "100"}},
	}

	for _, tt := range tests {
		msg := tt.err.Error()
		for _, want := range tt.want {
			if !strings.Contains(msg, want) {
				t.Errorf("%T message %q missing %q", tt.err, msg, want)
			}
		}
	}
}
