package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq when comparing float64 coordinates.
const (
	Epsilon = 1e-9
)

// Vector2D represents a 2D vector or point in world space.
// Fields are exported because positions and velocities are plain data:
// v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Zero is the null vector, returned by every normalization of a zero-length input.
var Zero = Vector2D{}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// ---------------------------------------------------------------------
// Stringer Interface
// ---------------------------------------------------------------------

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers returning new values: a Vector2D is two floats,
// copying it is cheaper than chasing a pointer.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Neg returns the opposite vector.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{-v.X, -v.Y}
}

// Perp returns the vector rotated by +90 degrees: (-y, x).
func (v Vector2D) Perp() Vector2D {
	return Vector2D{-v.Y, v.X}
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
// Use it for comparisons, it avoids the square root.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOrZero returns a unit vector in the same direction.
// A zero-length (or non finite) vector gives Zero, never NaN.
func (v Vector2D) NormalizeOrZero() Vector2D {
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Zero
	}
	return v.Mul(1 / l)
}

// NormalizeOr returns the unit vector of v, or fallback when v has no direction.
func (v Vector2D) NormalizeOr(fallback Vector2D) Vector2D {
	n := v.NormalizeOrZero()
	if n.IsZero() {
		return fallback
	}
	return n
}

// ClampLen returns v scaled down so that its length is at most max.
// Vectors already shorter than max are returned unchanged.
func (v Vector2D) ClampLen(max float64) Vector2D {
	lenSqr := v.LenSqr()
	if lenSqr > max*max {
		return v.Mul(max / math.Sqrt(lenSqr))
	}
	return v
}

// MaxElement returns the largest of the two components (not the largest magnitude).
func (v Vector2D) MaxElement() float64 {
	return math.Max(v.X, v.Y)
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle returns the heading (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Centroid returns the arithmetic mean of points, or Zero for an empty slice.
func Centroid(points []Vector2D) Vector2D {
	if len(points) == 0 {
		return Zero
	}
	var sum Vector2D
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
