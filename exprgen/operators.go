package exprgen

// OperatorKind identifies one of the four arithmetic operators.
type OperatorKind string

const (
	Addition       OperatorKind = "+"
	Subtraction    OperatorKind = "-"
	Multiplication OperatorKind = "*"
	Division       OperatorKind = "/"
)

// Operator is an immutable record pairing an operator kind with its
// display symbol and evaluation function. Division performs true
// (non-truncating) division. Operators are stateless and safe to share
// across candidates and goroutines.
type Operator struct {
	Kind   OperatorKind
	Symbol string
	apply  func(a, b float64) float64
}

// Apply evaluates the operator on two operands.
func (o Operator) Apply(a, b float64) float64 {
	return o.apply(a, b)
}

func (o Operator) String() string {
	return o.Symbol
}

// multiplicative reports whether the operator binds at the tighter
// precedence tier.
func (o Operator) multiplicative() bool {
	return o.Kind == Multiplication || o.Kind == Division
}

var catalog = []Operator{
	{Kind: Addition, Symbol: "+", apply: func(a, b float64) float64 { return a + b }},
	{Kind: Subtraction, Symbol: "-", apply: func(a, b float64) float64 { return a - b }},
	{Kind: Multiplication, Symbol: "*", apply: func(a, b float64) float64 { return a * b }},
	{Kind: Division, Symbol: "/", apply: func(a, b float64) float64 { return a / b }},
}

// Operators returns the four arithmetic operators in fixed order:
// Addition, Subtraction, Multiplication, Division.
func Operators() []Operator {
	out := make([]Operator, len(catalog))
	copy(out, catalog)
	return out
}

// operatorOf returns the catalog entry for the given kind.
func operatorOf(kind OperatorKind) Operator {
	for _, op := range catalog {
		if op.Kind == kind {
			return op
		}
	}
	panic("exprgen: unknown operator kind " + string(kind))
}
