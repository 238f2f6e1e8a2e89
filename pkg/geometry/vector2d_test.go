package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", v1.Add(v2), Vector2D{4, 6}},
		{"Sub", v1.Sub(v2), Vector2D{-2, -2}},
		{"Mul", v1.Mul(2), Vector2D{2, 4}},
		{"Neg", v1.Neg(), Vector2D{-1, -2}},
		{"Perp", Vector2D{1, 0}.Perp(), Vector2D{0, 1}},
		{"PerpTwice", v1.Perp().Perp(), v1.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want) {
				t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestVector_Dot(t *testing.T) {
	if got := (Vector2D{1, 0}).Dot(Vector2D{0, 1}); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := (Vector2D{1, 0}).Dot(Vector2D{2, 0}); got != 2 {
		t.Errorf("Dot parallel = %v; want 2", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("NormalizeOrZero", func(t *testing.T) {
		got := v.NormalizeOrZero()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("NormalizeOrZero = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("NormalizeOrZero length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeOrZeroOnZero", func(t *testing.T) {
		got := Zero.NormalizeOrZero()
		if !got.IsZero() || !got.IsFinite() {
			t.Errorf("NormalizeOrZero(0,0) = %v; want (0,0)", got)
		}
	})

	t.Run("NormalizeOrZeroTiny", func(t *testing.T) {
		got := Vector2D{1e-300, 0}.NormalizeOrZero()
		if !got.Eq(Vector2D{1, 0}) {
			t.Errorf("NormalizeOrZero(tiny) = %v; want (1,0)", got)
		}
	})

	t.Run("NormalizeOrFallback", func(t *testing.T) {
		fallback := Vector2D{1, 0}
		if got := Zero.NormalizeOr(fallback); !got.Eq(fallback) {
			t.Errorf("NormalizeOr on zero = %v; want %v", got, fallback)
		}
		if got := (Vector2D{0, -2}).NormalizeOr(fallback); !got.Eq(Vector2D{0, -1}) {
			t.Errorf("NormalizeOr = %v; want (0,-1)", got)
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"Shorter is unchanged", Vector2D{1, 1}, 3, Vector2D{1, 1}},
		{"Exactly max is unchanged", Vector2D{3, 4}, 5, Vector2D{3, 4}},
		{"Longer is scaled", Vector2D{6, 8}, 5, Vector2D{3, 4}},
		{"Zero stays zero", Zero, 1, Zero},
		{"Zero max", Vector2D{1, 0}, 0, Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.ClampLen(tt.max); !got.Eq(tt.want) {
				t.Errorf("%v.ClampLen(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
		})
	}
}

func TestVector_MaxElement(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 2}, 2},
		{Vector2D{-3, -1}, -1},
		{Vector2D{-3, 0}, 0},
		{Vector2D{5, -9}, 5},
	}
	for _, tt := range tests {
		if got := tt.v.MaxElement(); got != tt.want {
			t.Errorf("%v.MaxElement() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); !got.IsZero() {
		t.Errorf("Centroid(nil) = %v; want (0,0)", got)
	}
	got := Centroid([]Vector2D{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	if !got.Eq(Vector2D{5, 5}) {
		t.Errorf("Centroid(square) = %v; want (5,5)", got)
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("IsFinite(1,2) = false; want true")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("IsFinite(NaN,0) = true; want false")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("IsFinite(0,-Inf) = true; want false")
	}
}
