package exprgen

// maxSupportedDifficulty is the highest difficulty whose operand range
// [10^(d-1), 10^d - 1] still fits an int. 10^19 overflows int64.
const maxSupportedDifficulty = 18

// Config controls expression synthesis.
type Config struct {
	// MaxDifficulty is the highest difficulty level accepted by
	// GenerateExpression. Difficulty d produces operands in
	// [10^(d-1), 10^d - 1], except d=1 which produces [0, 9].
	// Clamped to 18, the largest level whose operand range fits an int.
	MaxDifficulty int

	// MinOperands and MaxOperands bound the number of operands per
	// expression. MinOperands is clamped to at least 2.
	MinOperands int
	MaxOperands int

	// AllowDecimalResult permits non-integer results. Operand tokens in
	// the expression text are always integers regardless of this flag.
	AllowDecimalResult bool

	// AllowNegativeResult permits negative results. When false, the
	// expression text may still contain "-" as long as the final value
	// is non-negative.
	AllowNegativeResult bool

	// DecimalPlaces is the rounding precision applied to intermediate
	// and final results when decimals are allowed.
	DecimalPlaces int
}

// DefaultConfig returns a Config with the recommended defaults:
// integer-only, non-negative results over 2-5 operands.
func DefaultConfig() Config {
	return Config{
		MaxDifficulty:       4,
		MinOperands:         2,
		MaxOperands:         5,
		AllowDecimalResult:  false,
		AllowNegativeResult: false,
		DecimalPlaces:       2,
	}
}

// normalized returns a copy with the bounds clamped to sane values: at
// least 2 operands, MaxOperands >= MinOperands, and MaxDifficulty in
// [1, 18].
func (c Config) normalized() Config {
	if c.MinOperands < 2 {
		c.MinOperands = 2
	}
	if c.MaxOperands < c.MinOperands {
		c.MaxOperands = c.MinOperands
	}
	if c.MaxDifficulty < 1 {
		c.MaxDifficulty = 1
	}
	if c.MaxDifficulty > maxSupportedDifficulty {
		c.MaxDifficulty = maxSupportedDifficulty
	}
	if c.DecimalPlaces < 0 {
		c.DecimalPlaces = 0
	}
	return c
}
