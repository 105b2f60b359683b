package math

import "math"

// Tuple is a homogeneous coordinate: a point when W is 1, a vector when W is 0
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with an explicit w component
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a tuple with w fixed to 1
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// NewVector creates a tuple with w fixed to 0
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// IsPoint reports whether the tuple is a point (w = 1)
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1.0)
}

// IsVector reports whether the tuple is a vector (w = 0).
// Uses the epsilon comparator so composed transforms that drift w
// slightly still classify correctly.
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, 0.0)
}

// Component returns the component at index 0-3 (x, y, z, w).
// Panics for any other index.
func (t Tuple) Component(i int) float64 {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	case 3:
		return t.W
	}
	panic("tuple component index out of range")
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar. A zero divisor is not
// guarded; the result propagates IEEE-754 infinities or NaNs.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Negate returns the zero tuple minus this tuple
func (t Tuple) Negate() Tuple {
	return Tuple{}.Subtract(t)
}

// Magnitude returns the Euclidean norm over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize divides every component by the magnitude. A zero-magnitude
// tuple produces NaNs; callers pass non-zero vectors.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// Dot returns the sum of component-wise products over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3D cross product as a vector. The w components of
// both operands are ignored; callers pass vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Equals reports component-wise epsilon-tolerant equality
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}
