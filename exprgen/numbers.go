package exprgen

import (
	"math/rand"
	"sort"
)

// NumberSource produces difficulty-scaled random operands. The random
// source is injected so callers can seed deterministically in tests.
type NumberSource struct {
	rng *rand.Rand
}

// NewNumberSource creates a NumberSource drawing from rng.
func NewNumberSource(rng *rand.Rand) *NumberSource {
	return &NumberSource{rng: rng}
}

// GenerateNumber returns a uniformly random integer in the range for the
// given difficulty level: [0, 9] for difficulty 1, and
// [10^(d-1), 10^d - 1] for difficulty d > 1. Difficulty must be >= 1.
func (s *NumberSource) GenerateNumber(difficulty int) int {
	max := pow10(difficulty) - 1
	min := 0
	if difficulty > 1 {
		min = pow10(difficulty - 1)
	}
	return min + s.rng.Intn(max-min+1)
}

// FindDivisors returns all positive divisors of n in ascending order,
// including 1 and n itself. For n <= 0 it returns nil: zero has no
// valid divisors, and negative dividends are handled by the caller
// rewriting the operator instead.
func FindDivisors(n int) []int {
	if n <= 0 {
		return nil
	}
	// Divisors come in pairs (d, n/d) with d <= sqrt(n), so scanning up
	// to the square root finds them all. Dividends reach 10^16 at high
	// difficulty and a linear scan over those stalls for seconds.
	var divisors []int
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			divisors = append(divisors, d)
			if q := n / d; q != d {
				divisors = append(divisors, q)
			}
		}
	}
	sort.Ints(divisors)
	return divisors
}

// pow10 returns 10^n for small non-negative n.
func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
