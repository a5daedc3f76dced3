package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource always returns the same offset, clamped to n-1
type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func TestRandomIntFrom(t *testing.T) {
	tests := []struct {
		name     string
		src      IntSource
		min, max int
		expected int
	}{
		{name: "lowest draw returns min", src: fixedSource{0}, min: 5, max: 15, expected: 5},
		{name: "highest draw returns max", src: fixedSource{100}, min: 5, max: 15, expected: 15},
		{name: "middle draw", src: fixedSource{3}, min: 1, max: 10, expected: 4},
		{name: "equal bounds skip the source", src: fixedSource{7}, min: 1, max: 1, expected: 1},
		{name: "inverted bounds return min", src: fixedSource{7}, min: 4, max: 2, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RandomIntFrom(tt.src, tt.min, tt.max))
		})
	}
}

func TestRandomInt_StaysInRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		v := RandomInt(1, 10)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestNewSeededSource_Deterministic(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in       float32
		expected int
	}{
		{in: 0, expected: 0},
		{in: 1.2, expected: 1},
		{in: 2.5, expected: 3},
		{in: -1.2, expected: -1},
		{in: -1.5, expected: -1},
		{in: -2.6, expected: -3},
		{in: 13.2, expected: 13},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundHalfUp(tt.in), "input %v", tt.in)
	}
}
