// Package exprgen synthesizes random arithmetic expressions under
// configurable constraints: operand count, numeric difficulty, and
// whether results may be decimal or negative. Synthesis uses bounded
// retry with a localized repair pass around division, the only operator
// that can introduce zero-division or break integrality.
package exprgen

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// maxAttempts bounds the synthesis loop. It exists to guarantee
	// termination under infeasible configurations, not to tune quality.
	maxAttempts = 100

	// maxDivisorTries bounds the divisor search inside a single division
	// repair before the operator is rewritten to Multiplication.
	maxDivisorTries = 10
)

// Expression is a synthesized arithmetic expression together with its
// value under standard operator precedence.
type Expression struct {
	// Text is the expression with operands and operator symbols
	// separated by single spaces, e.g. "12 + 7 * 3". Operand tokens are
	// always integers.
	Text string

	// Result is the value of Text. It is an exact integer value unless
	// the generator allows decimal results, in which case it is rounded
	// to the configured number of decimal places.
	Result float64

	// Operands and Operators are the positional pieces of Text:
	// Operands[0] Operators[0] Operands[1] ... There is always exactly
	// one more operand than operator.
	Operands  []int
	Operators []Operator
}

// FormatResult renders the result the way it should be shown to a
// learner: no decimal point for integer values, minimal digits
// otherwise.
func (e Expression) FormatResult() string {
	if isInteger(e.Result) {
		return strconv.FormatInt(int64(e.Result), 10)
	}
	return strconv.FormatFloat(e.Result, 'f', -1, 64)
}

// Generator synthesizes expressions honoring a Config. A Generator is
// cheap to construct and safe to reuse across calls; it is not safe for
// concurrent use because of the shared random source.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	numbers *NumberSource
	ops     []Operator
}

// New creates a Generator. A nil rng falls back to a time-seeded source;
// tests inject rand.New(rand.NewSource(seed)) for determinism.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		cfg:     cfg.normalized(),
		rng:     rng,
		numbers: NewNumberSource(rng),
		ops:     Operators(),
	}
}

// Config returns the generator's effective (normalized) configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// GenerateExpression synthesizes one expression.
//
// numOperands == 0 means "draw uniformly from [MinOperands, MaxOperands]";
// any other value must lie inside that range. difficulty must lie in
// [1, MaxDifficulty].
//
// Constraint policy: divisions are repaired in place (zero divisors
// replaced, divisors substituted from the dividend's divisor set, or the
// operator rewritten to Multiplication), while integrality and
// non-negativity of the final value are checked holistically by full
// re-evaluation. A candidate failing the final check is discarded and
// the attempt repeated, up to the attempt bound.
func (g *Generator) GenerateExpression(numOperands, difficulty int) (Expression, error) {
	if difficulty < 1 || difficulty > g.cfg.MaxDifficulty {
		return Expression{}, &InvalidDifficultyError{Difficulty: difficulty, Max: g.cfg.MaxDifficulty}
	}

	switch {
	case numOperands == 0:
		numOperands = g.cfg.MinOperands + g.rng.Intn(g.cfg.MaxOperands-g.cfg.MinOperands+1)
	case numOperands < g.cfg.MinOperands || numOperands > g.cfg.MaxOperands:
		return Expression{}, &InvalidOperandCountError{
			Count: numOperands,
			Min:   g.cfg.MinOperands,
			Max:   g.cfg.MaxOperands,
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		expr, ok := g.synthesize(numOperands, difficulty)
		if ok {
			return expr, nil
		}
	}
	return Expression{}, &ExhaustedAttemptsError{Attempts: maxAttempts}
}

// GenerateExpressionSet synthesizes count independent expressions with
// the same parameters. The first failure aborts and is returned.
func (g *Generator) GenerateExpressionSet(count, numOperands, difficulty int) ([]Expression, error) {
	set := make([]Expression, 0, count)
	for i := 0; i < count; i++ {
		expr, err := g.GenerateExpression(numOperands, difficulty)
		if err != nil {
			return nil, err
		}
		set = append(set, expr)
	}
	return set, nil
}

// synthesize runs one attempt: draw operands and operators, repair
// divisions, evaluate, and check the final constraints.
func (g *Generator) synthesize(numOperands, difficulty int) (Expression, bool) {
	operands := make([]int, numOperands)
	for i := range operands {
		operands[i] = g.numbers.GenerateNumber(difficulty)
	}
	ops := make([]Operator, numOperands-1)
	for i := range ops {
		ops[i] = g.ops[g.rng.Intn(len(g.ops))]
	}

	if !g.repairDivisions(operands, ops) {
		return Expression{}, false
	}

	result := evaluate(operands, ops, g.cfg.DecimalPlaces)
	if !g.resultAllowed(result) {
		return Expression{}, false
	}

	return Expression{
		Text:      format(operands, ops),
		Result:    result,
		Operands:  operands,
		Operators: ops,
	}, true
}

// repairDivisions walks the operator list left to right and fixes each
// division in place so it cannot divide by zero and, when decimal
// results are disallowed, divides evenly.
//
// Under precedence the dividend of a division is not the running total
// but the value of the contiguous multiplication/division chain ending
// at the operand before it, so the divisor check is made against that
// chain value. When no usable divisor exists (the chain value is zero,
// negative, or fractional) the operator is rewritten to Multiplication,
// which can violate neither check. After each repaired division the
// chain value including it is re-checked against the constraint
// predicate; a violation aborts the attempt.
func (g *Generator) repairDivisions(operands []int, ops []Operator) bool {
	for i := range ops {
		if ops[i].Kind != Division {
			continue
		}

		if operands[i+1] == 0 {
			operands[i+1] = 1
		}

		if !g.cfg.AllowDecimalResult {
			dividend := chainValue(operands, ops, i)
			if math.Mod(dividend, float64(operands[i+1])) != 0 {
				if !g.substituteDivisor(operands, i, dividend) {
					ops[i] = operatorOf(Multiplication)
				}
			}
		}

		sub := chainValue(operands, ops, i+1)
		if !g.resultAllowed(sub) {
			return false
		}
	}
	return true
}

// substituteDivisor tries to replace operands[i+1] with a random element
// of the dividend's divisor set. It reports false when the dividend has
// no divisor set (non-integer or non-positive).
func (g *Generator) substituteDivisor(operands []int, i int, dividend float64) bool {
	if !isInteger(dividend) {
		return false
	}
	divisors := FindDivisors(int(dividend))
	if len(divisors) == 0 {
		return false
	}
	for try := 0; try < maxDivisorTries; try++ {
		d := divisors[g.rng.Intn(len(divisors))]
		if math.Mod(dividend, float64(d)) == 0 {
			operands[i+1] = d
			return true
		}
	}
	return false
}

// chainValue computes the precedence-respecting value of the
// multiplicative chain that ends at operand `end`: it folds * and /
// left to right from the nearest additive boundary. For an operand not
// inside a chain this is just the operand itself.
func chainValue(operands []int, ops []Operator, end int) float64 {
	start := end
	for start > 0 && ops[start-1].multiplicative() {
		start--
	}
	v := float64(operands[start])
	for j := start; j < end; j++ {
		v = ops[j].Apply(v, float64(operands[j+1]))
	}
	return v
}

// evaluate computes the value of a candidate under standard precedence:
// one pass folding multiplication/division left to right, then one pass
// folding the surviving addition/subtraction. Every step rounds to
// `places` decimals so long chains do not accumulate float drift.
func evaluate(operands []int, ops []Operator, places int) float64 {
	values := []float64{float64(operands[0])}
	var additive []Operator

	for i, op := range ops {
		b := float64(operands[i+1])
		if op.multiplicative() {
			values[len(values)-1] = roundTo(op.Apply(values[len(values)-1], b), places)
		} else {
			additive = append(additive, op)
			values = append(values, b)
		}
	}

	result := values[0]
	for i, op := range additive {
		result = roundTo(op.Apply(result, values[i+1]), places)
	}
	return result
}

// format renders the candidate as space-separated operand and operator
// tokens in left-to-right order.
func format(operands []int, ops []Operator) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(operands[0]))
	for i, op := range ops {
		b.WriteString(" ")
		b.WriteString(op.Symbol)
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(operands[i+1]))
	}
	return b.String()
}

// resultAllowed is the constraint predicate shared by the repair pass
// and the final check.
func (g *Generator) resultAllowed(v float64) bool {
	if !g.cfg.AllowDecimalResult && !isInteger(v) {
		return false
	}
	if !g.cfg.AllowNegativeResult && v < 0 {
		return false
	}
	return true
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, places int) float64 {
	p := float64(pow10(places))
	return math.Round(v*p) / p
}

// isInteger reports whether v has no fractional part.
func isInteger(v float64) bool {
	return v == math.Trunc(v)
}
