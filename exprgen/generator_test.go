package exprgen

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func testGenerator(cfg Config, seed int64) *Generator {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// evalText independently re-evaluates an expression text under standard
// precedence, so tests do not trust the generator's own evaluator.
func evalText(t *testing.T, text string) float64 {
	t.Helper()
	tokens := strings.Fields(text)

	var values []float64
	var additive []string
	v, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		t.Fatalf("bad operand token %q in %q", tokens[0], text)
	}
	values = append(values, v)

	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i]
		b, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			t.Fatalf("bad operand token %q in %q", tokens[i+1], text)
		}
		switch op {
		case "*":
			values[len(values)-1] *= b
		case "/":
			values[len(values)-1] /= b
		case "+", "-":
			additive = append(additive, op)
			values = append(values, b)
		default:
			t.Fatalf("bad operator token %q in %q", op, text)
		}
	}

	result := values[0]
	for i, op := range additive {
		if op == "+" {
			result += values[i+1]
		} else {
			result -= values[i+1]
		}
	}
	return result
}

var exprPattern = regexp.MustCompile(`^-?\d+( [+\-*/] -?\d+)+$`)

func TestGenerateExpressionDefaults(t *testing.T) {
	g := testGenerator(DefaultConfig(), 1)

	for i := 0; i < 200; i++ {
		expr, err := g.GenerateExpression(0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exprPattern.MatchString(expr.Text) {
			t.Fatalf("text %q does not alternate operands and operators", expr.Text)
		}
		if expr.Result != math.Trunc(expr.Result) {
			t.Errorf("%q: result %v is not an integer", expr.Text, expr.Result)
		}
		if expr.Result < 0 {
			t.Errorf("%q: result %v is negative", expr.Text, expr.Result)
		}
		if got := evalText(t, expr.Text); got != expr.Result {
			t.Errorf("%q: re-evaluated %v, generator claims %v", expr.Text, got, expr.Result)
		}
	}
}

func TestGenerateExpressionOperandRange(t *testing.T) {
	g := testGenerator(DefaultConfig(), 2)

	for _, difficulty := range []int{1, 2, 3, 4} {
		min, max := pow10(difficulty-1), pow10(difficulty)-1
		if difficulty == 1 {
			min = 0
		}
		for i := 0; i < 50; i++ {
			expr, err := g.GenerateExpression(0, difficulty)
			if err != nil {
				t.Fatalf("difficulty %d: %v", difficulty, err)
			}
			for _, n := range expr.Operands {
				// Operands can only shrink below the difficulty floor via
				// division repair, which substitutes a divisor.
				if n > max {
					t.Errorf("difficulty %d: operand %d above %d in %q", difficulty, n, max, expr.Text)
				}
				if n < min && !strings.Contains(expr.Text, "/") {
					t.Errorf("difficulty %d: operand %d below %d in %q", difficulty, n, min, expr.Text)
				}
			}
		}
	}
}

func TestGenerateExpressionFixedOperandCount(t *testing.T) {
	g := testGenerator(DefaultConfig(), 3)

	expr, err := g.GenerateExpression(3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Operands) != 3 {
		t.Errorf("expected 3 operands, got %d", len(expr.Operands))
	}
	if len(expr.Operators) != 2 {
		t.Errorf("expected 2 operators, got %d", len(expr.Operators))
	}
	if n := len(strings.Fields(expr.Text)); n != 5 {
		t.Errorf("expected 5 tokens, got %d in %q", n, expr.Text)
	}
}

func TestGenerateExpressionInvalidDifficulty(t *testing.T) {
	g := testGenerator(DefaultConfig(), 4)

	for _, difficulty := range []int{0, -1, 5} {
		_, err := g.GenerateExpression(0, difficulty)
		if err == nil {
			t.Fatalf("difficulty %d: expected error", difficulty)
		}
		var diffErr *InvalidDifficultyError
		if !errors.As(err, &diffErr) {
			t.Fatalf("difficulty %d: expected *InvalidDifficultyError, got %T", difficulty, err)
		}
		if diffErr.Difficulty != difficulty || diffErr.Max != 4 {
			t.Errorf("error fields = {%d, %d}, want {%d, 4}", diffErr.Difficulty, diffErr.Max, difficulty)
		}
	}
}

func TestGenerateExpressionInvalidOperandCount(t *testing.T) {
	g := testGenerator(DefaultConfig(), 5)

	for _, count := range []int{1, -2, 6} {
		_, err := g.GenerateExpression(count, 1)
		if err == nil {
			t.Fatalf("count %d: expected error", count)
		}
		var countErr *InvalidOperandCountError
		if !errors.As(err, &countErr) {
			t.Fatalf("count %d: expected *InvalidOperandCountError, got %T", count, err)
		}
		if countErr.Min != 2 || countErr.Max != 5 {
			t.Errorf("error bounds = [%d, %d], want [2, 5]", countErr.Min, countErr.Max)
		}
	}
}

func TestGenerateExpressionNeverDividesByZero(t *testing.T) {
	g := testGenerator(DefaultConfig(), 6)

	for i := 0; i < 500; i++ {
		expr, err := g.GenerateExpression(0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j, op := range expr.Operators {
			if op.Kind == Division && expr.Operands[j+1] == 0 {
				t.Fatalf("zero divisor in %q", expr.Text)
			}
		}
	}
}

func TestGenerateExpressionDecimalAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowDecimalResult = true
	g := testGenerator(cfg, 7)

	sawDecimal := false
	for i := 0; i < 300; i++ {
		expr, err := g.GenerateExpression(0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr.Result != math.Trunc(expr.Result) {
			sawDecimal = true
		}
		// Operand tokens stay integers even when the result is decimal.
		for _, tok := range strings.Fields(expr.Text) {
			if strings.Contains(tok, ".") {
				t.Fatalf("decimal operand token %q in %q", tok, expr.Text)
			}
		}
		// Intermediate rounding inside the generator can drift slightly
		// from the unrounded re-evaluation.
		if got := evalText(t, expr.Text); math.Abs(got-expr.Result) > 0.05 {
			t.Errorf("%q: re-evaluated %v, generator claims %v", expr.Text, got, expr.Result)
		}
	}
	if !sawDecimal {
		t.Error("300 decimal-allowed expressions never produced a decimal result")
	}
}

func TestGenerateExpressionNegativeAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowNegativeResult = true
	g := testGenerator(cfg, 8)

	sawNegative := false
	for i := 0; i < 300; i++ {
		expr, err := g.GenerateExpression(0, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr.Result < 0 {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Error("300 negative-allowed expressions never produced a negative result")
	}
}

func TestGenerateExpressionSet(t *testing.T) {
	g := testGenerator(DefaultConfig(), 9)

	set, err := g.GenerateExpressionSet(5, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 5 {
		t.Fatalf("expected 5 expressions, got %d", len(set))
	}
	for _, expr := range set {
		if !exprPattern.MatchString(expr.Text) {
			t.Errorf("text %q does not alternate operands and operators", expr.Text)
		}
	}
}

func TestGenerateExpressionSetPropagatesErrors(t *testing.T) {
	g := testGenerator(DefaultConfig(), 10)

	_, err := g.GenerateExpressionSet(3, 0, 99)
	var diffErr *InvalidDifficultyError
	if !errors.As(err, &diffErr) {
		t.Fatalf("expected *InvalidDifficultyError, got %v", err)
	}
}

func TestConfigNormalization(t *testing.T) {
	g := New(Config{MaxDifficulty: 2, MinOperands: 0, MaxOperands: 1}, rand.New(rand.NewSource(11)))
	cfg := g.Config()
	if cfg.MinOperands != 2 {
		t.Errorf("MinOperands = %d, want 2", cfg.MinOperands)
	}
	if cfg.MaxOperands != 2 {
		t.Errorf("MaxOperands = %d, want 2", cfg.MaxOperands)
	}
}

func TestConfigNormalizationClampsDifficulty(t *testing.T) {
	g := New(Config{MaxDifficulty: 25, MinOperands: 2, MaxOperands: 5}, rand.New(rand.NewSource(11)))
	if got := g.Config().MaxDifficulty; got != 18 {
		t.Fatalf("MaxDifficulty = %d, want 18", got)
	}

	// A difficulty above the clamped maximum must come back as a typed
	// error, not overflow the operand range and panic in the generator.
	_, err := g.GenerateExpression(0, 20)
	var diffErr *InvalidDifficultyError
	if !errors.As(err, &diffErr) {
		t.Fatalf("expected InvalidDifficultyError, got %v", err)
	}
	if diffErr.Max != 18 {
		t.Errorf("error Max = %d, want 18", diffErr.Max)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		result float64
		want   string
	}{
		{8, "8"},
		{-3, "-3"},
		{3.5, "3.5"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		e := Expression{Result: tt.result}
		if got := e.FormatResult(); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestEvaluatePrecedence(t *testing.T) {
	add := operatorOf(Addition)
	sub := operatorOf(Subtraction)
	mul := operatorOf(Multiplication)
	div := operatorOf(Division)

	tests := []struct {
		operands []int
		ops      []Operator
		want     float64
	}{
		{[]int{12, 7, 3}, []Operator{add, mul}, 33},  // 12 + 7 * 3
		{[]int{10, 2, 3}, []Operator{sub, mul}, 4},   // 10 - 2 * 3
		{[]int{8, 4, 2}, []Operator{div, div}, 1},    // 8 / 4 / 2
		{[]int{2, 3, 4, 5}, []Operator{mul, add, mul}, 26}, // 2 * 3 + 4 * 5
		{[]int{7, 2}, []Operator{div}, 3.5},          // 7 / 2
		{[]int{1, 2, 3}, []Operator{sub, sub}, -4},   // 1 - 2 - 3
	}

	for _, tt := range tests {
		got := evaluate(tt.operands, tt.ops, 2)
		if got != tt.want {
			t.Errorf("evaluate(%v, %v) = %v, want %v", tt.operands, tt.ops, got, tt.want)
		}
	}
}
