package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(-2, 3, 6, 4)

	if r.Right() != 4 {
		t.Errorf("Right() = %d, expected 4", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name              string
		val, lo, hi, want float64
	}{
		{"inside", 12.5, -640, 640, 12.5},
		{"left wall", -700, -640, 640, -640},
		{"right wall", 641, -640, 640, 640},
		{"on edge", 640, -640, 640, 640},
		{"degenerate range", 3, 1, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{7, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
