package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(-1, 2)); got != Pt(2, 6) {
		t.Errorf("Add = %v, expected (2,6)", got)
	}
	if got := p.Sub(Pt(3, 4)); got != Pt(0, 0) {
		t.Errorf("Sub = %v, expected (0,0)", got)
	}
	if got := p.String(); got != "(3,4)" {
		t.Errorf("String = %q, expected %q", got, "(3,4)")
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"bottom-right corner", Pt(9, 19), true},
		{"right edge (exclusive)", Pt(10, 0), false},
		{"bottom edge (exclusive)", Pt(0, 20), false},
		{"negative column", Pt(-1, 5), false},
		{"negative row", Pt(5, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(10, 20); got != tc.expected {
				t.Errorf("%v.In(10, 20) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}
