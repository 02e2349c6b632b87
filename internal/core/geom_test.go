package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"disjoint horizontal", Box{0, 0, 10, 10}, Box{15, 0, 10, 10}, false},
		{"disjoint vertical", Box{0, 0, 10, 10}, Box{0, 15, 10, 10}, false},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 5, 5}, true},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 10, 10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(100, 50), 32, 16)
	if b.X != 84 || b.Y != 42 || b.Right() != 116 || b.Bottom() != 58 {
		t.Errorf("BoxAround() = %+v", b)
	}
	if c := b.Center(); c != V(100, 50) {
		t.Errorf("Center() = %+v, expected (100, 50)", c)
	}
}

func TestVecNormalize(t *testing.T) {
	n, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("Normalize() reported zero length")
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Normalize() = %+v, expected (0.6, 0.8)", n)
	}

	if _, ok := V(0, 0).Normalize(); ok {
		t.Error("Normalize() of zero vector should report false")
	}
}

func TestBodyIntegrate(t *testing.T) {
	b := Body{Pos: V(10, 10), Vel: V(150, -60), W: 4, H: 4}
	b.Integrate(0.5)
	if b.Pos != V(85, -20) {
		t.Errorf("Pos = %+v, expected (85, -20)", b.Pos)
	}
	b.Stop()
	b.Integrate(1)
	if b.Pos != V(85, -20) {
		t.Errorf("stopped body moved to %+v", b.Pos)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(-1.5, 0, 1) != 0 || ClampF(2, 0, 1) != 1 {
		t.Error("ClampF out of range")
	}
}
