package exprgen

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based checks over the synthesis invariants, exercised across
// random seeds, difficulties, and operand counts.
func TestSynthesisProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("integer result when decimals disallowed", prop.ForAll(
		func(seed int64, difficulty, n int) bool {
			g := New(DefaultConfig(), rand.New(rand.NewSource(seed)))
			expr, err := g.GenerateExpression(n, difficulty)
			if err != nil {
				return false
			}
			return expr.Result == math.Trunc(expr.Result)
		},
		gen.Int64(), gen.IntRange(1, 4), gen.IntRange(2, 5),
	))

	properties.Property("non-negative result when negatives disallowed", prop.ForAll(
		func(seed int64, difficulty, n int) bool {
			g := New(DefaultConfig(), rand.New(rand.NewSource(seed)))
			expr, err := g.GenerateExpression(n, difficulty)
			if err != nil {
				return false
			}
			return expr.Result >= 0
		},
		gen.Int64(), gen.IntRange(1, 4), gen.IntRange(2, 5),
	))

	properties.Property("divisor token is never zero", prop.ForAll(
		func(seed int64, difficulty, n int) bool {
			cfg := DefaultConfig()
			cfg.AllowDecimalResult = seed%2 == 0
			g := New(cfg, rand.New(rand.NewSource(seed)))
			expr, err := g.GenerateExpression(n, difficulty)
			if err != nil {
				return false
			}
			for i, op := range expr.Operators {
				if op.Kind == Division && expr.Operands[i+1] == 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 3), gen.IntRange(2, 5),
	))

	properties.Property("text tokens alternate operand and operator", prop.ForAll(
		func(seed int64, n int) bool {
			g := New(DefaultConfig(), rand.New(rand.NewSource(seed)))
			expr, err := g.GenerateExpression(n, 1)
			if err != nil {
				return false
			}
			tokens := strings.Fields(expr.Text)
			if len(tokens) != 2*n-1 {
				return false
			}
			return exprPattern.MatchString(expr.Text)
		},
		gen.Int64(), gen.IntRange(2, 5),
	))

	properties.TestingRun(t)
}
