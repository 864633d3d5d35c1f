package exprgen

import "testing"

func TestOperatorsFixedOrder(t *testing.T) {
	ops := Operators()
	if len(ops) != 4 {
		t.Fatalf("expected 4 operators, got %d", len(ops))
	}

	wantKinds := []OperatorKind{Addition, Subtraction, Multiplication, Division}
	wantSymbols := []string{"+", "-", "*", "/"}
	for i, op := range ops {
		if op.Kind != wantKinds[i] {
			t.Errorf("operator %d: kind %q, want %q", i, op.Kind, wantKinds[i])
		}
		if op.Symbol != wantSymbols[i] {
			t.Errorf("operator %d: symbol %q, want %q", i, op.Symbol, wantSymbols[i])
		}
	}
}

func TestOperatorApply(t *testing.T) {
	tests := []struct {
		kind OperatorKind
		a, b float64
		want float64
	}{
		{Addition, 3, 5, 8},
		{Subtraction, 3, 5, -2},
		{Multiplication, 3, 5, 15},
		{Division, 7, 2, 3.5},
	}

	for _, tt := range tests {
		got := operatorOf(tt.kind).Apply(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.a, tt.kind, tt.b, got, tt.want)
		}
	}
}

func TestOperatorsReturnsCopy(t *testing.T) {
	ops := Operators()
	ops[0] = ops[3]
	if Operators()[0].Kind != Addition {
		t.Fatal("mutating the returned slice leaked into the catalog")
	}
}
