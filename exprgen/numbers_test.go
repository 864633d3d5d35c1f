package exprgen

import (
	"math/rand"
	"testing"
)

func TestGenerateNumberRanges(t *testing.T) {
	src := NewNumberSource(rand.New(rand.NewSource(1)))

	tests := []struct {
		difficulty int
		min, max   int
	}{
		{1, 0, 9},
		{2, 10, 99},
		{3, 100, 999},
		{4, 1000, 9999},
	}

	for _, tt := range tests {
		for i := 0; i < 500; i++ {
			n := src.GenerateNumber(tt.difficulty)
			if n < tt.min || n > tt.max {
				t.Fatalf("difficulty %d: got %d, want in [%d, %d]", tt.difficulty, n, tt.min, tt.max)
			}
		}
	}
}

func TestGenerateNumberCoversBounds(t *testing.T) {
	src := NewNumberSource(rand.New(rand.NewSource(7)))

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[src.GenerateNumber(1)] = true
	}
	for n := 0; n <= 9; n++ {
		if !seen[n] {
			t.Errorf("difficulty 1 never produced %d in 2000 draws", n)
		}
	}
}

func TestFindDivisors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{-6, nil},
		{1, []int{1}},
		{7, []int{1, 7}},
		{12, []int{1, 2, 3, 4, 6, 12}},
		{36, []int{1, 2, 3, 4, 6, 9, 12, 18, 36}},
	}

	for _, tt := range tests {
		got := FindDivisors(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("FindDivisors(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("FindDivisors(%d) = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestFindDivisorsLargeDividend(t *testing.T) {
	// Dividends at this scale occur in real multiplication chains at
	// high difficulty; the scan has to stay sublinear to be usable.
	const n = 1 << 40
	got := FindDivisors(n)

	if len(got) != 41 {
		t.Fatalf("FindDivisors(2^40) returned %d divisors, want 41", len(got))
	}
	if got[0] != 1 || got[len(got)-1] != n {
		t.Errorf("divisors span [%d, %d], want [1, %d]", got[0], got[len(got)-1], n)
	}
	for i, d := range got {
		if n%d != 0 {
			t.Errorf("divisor %d does not divide %d", d, n)
		}
		if i > 0 && got[i-1] >= d {
			t.Errorf("divisors not strictly ascending at index %d: %v", i, got[i-1:i+1])
		}
	}
}
