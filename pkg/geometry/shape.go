package geometry

import (
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/math"
)

// Intersection records where a ray strikes a surface: the ray parameter
// t and the material of the surface struck, copied by value at
// construction time
type Intersection struct {
	T        float64
	Material material.Material
}

// Surface is implemented by any primitive a ray can intersect. The
// returned intersections are ordered ascending by t as constructed
// (smaller root first), never sorted after the fact, and may be empty.
type Surface interface {
	Intersect(ray math.Ray) []Intersection
}
