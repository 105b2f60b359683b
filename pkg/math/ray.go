package math

// Ray is a parametrized line with an origin point and direction vector.
// Construction does not validate the point/vector convention; callers
// pass a point origin and a vector direction.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray. t may be
// negative; the ray extends in both directions for intersection math.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}
