package geometry

import (
	"testing"

	"github.com/df07/go-ray-kernel/pkg/canvas"
	"github.com/df07/go-ray-kernel/pkg/material"
	mathpkg "github.com/df07/go-ray-kernel/pkg/math"
)

// Sphere must satisfy the Surface contract
var _ Surface = (*Sphere)(nil)

func TestNewSphere(t *testing.T) {
	s := NewSphere(material.DefaultMaterial())
	if !s.Origin().Equals(mathpkg.NewPoint(0, 0, 0)) {
		t.Errorf("Expected origin (0, 0, 0), got %v", s.Origin())
	}
	if s.Radius() != 1 {
		t.Errorf("Expected radius 1, got %v", s.Radius())
	}
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		rayOrigin mathpkg.Tuple
		expected  []float64
	}{
		{
			name:      "through the center",
			rayOrigin: mathpkg.NewPoint(0, 0, -5),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent",
			rayOrigin: mathpkg.NewPoint(0, 1, -5),
			expected:  []float64{5, 5},
		},
		{
			name:      "miss",
			rayOrigin: mathpkg.NewPoint(0, 2, -5),
			expected:  []float64{},
		},
		{
			name:      "origin inside the sphere",
			rayOrigin: mathpkg.NewPoint(0, 0, 0),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			rayOrigin: mathpkg.NewPoint(0, 0, 5),
			expected:  []float64{-6, -4},
		},
	}

	s := NewSphere(material.DefaultMaterial())
	direction := mathpkg.NewVector(0, 0, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := s.Intersect(mathpkg.NewRay(tt.rayOrigin, direction))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !mathpkg.ApproxEqual(xs[i].T, want) {
					t.Errorf("Expected t[%d] = %v, got %v", i, want, xs[i].T)
				}
			}
		})
	}
}

func TestSphere_Intersect_OrderedAscending(t *testing.T) {
	s := NewSphere(material.DefaultMaterial())
	r := mathpkg.NewRay(mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 1))

	xs := s.Intersect(r)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if xs[0].T > xs[1].T {
		t.Errorf("Expected ascending t values, got %v then %v", xs[0].T, xs[1].T)
	}
}

func TestSphere_Intersect_CarriesMaterial(t *testing.T) {
	mat := material.NewMaterial(canvas.NewColor(0.8, 0.1, 0.1))
	s := NewSphere(mat)
	r := mathpkg.NewRay(mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 1))

	xs := s.Intersect(r)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	for i, x := range xs {
		if !x.Material.Color.Equals(mat.Color) {
			t.Errorf("Expected intersection %d to carry the sphere material, got %v", i, x.Material)
		}
	}
}

func TestSphere_Intersect_NonNormalizedDirection(t *testing.T) {
	// Doubling the direction halves the reported t values
	s := NewSphere(material.DefaultMaterial())
	r := mathpkg.NewRay(mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 2))

	xs := s.Intersect(r)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if !mathpkg.ApproxEqual(xs[0].T, 2) || !mathpkg.ApproxEqual(xs[1].T, 3) {
		t.Errorf("Expected t values [2, 3], got [%v, %v]", xs[0].T, xs[1].T)
	}
}
