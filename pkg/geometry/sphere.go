package geometry

import (
	"math"

	"github.com/df07/go-ray-kernel/pkg/material"
	mathpkg "github.com/df07/go-ray-kernel/pkg/math"
)

// Sphere is the unit sphere centered at the world origin, carrying one
// material value
type Sphere struct {
	origin   mathpkg.Tuple
	radius   float64
	material material.Material
}

// NewSphere creates a unit sphere at the origin with the given material
func NewSphere(mat material.Material) *Sphere {
	return &Sphere{
		origin:   mathpkg.NewPoint(0, 0, 0),
		radius:   1.0,
		material: mat,
	}
}

// Origin returns the sphere's center point
func (s *Sphere) Origin() mathpkg.Tuple {
	return s.origin
}

// Radius returns the sphere's radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

// Intersect solves the quadratic for the ray against the unit sphere.
// A negative discriminant returns an empty slice; otherwise both roots
// are returned in ascending order, each carrying a copy of the sphere's
// material. Tangent rays yield two equal t values.
func (s *Sphere) Intersect(ray mathpkg.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(mathpkg.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return []Intersection{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		{T: t1, Material: s.material},
		{T: t2, Material: s.material},
	}
}
