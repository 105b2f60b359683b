package material

import "github.com/df07/go-ray-kernel/pkg/canvas"

// Material holds the surface attributes attached to an intersection.
// The geometry kernel copies it by value and never inspects it; shading
// is a downstream concern.
type Material struct {
	Color canvas.Color
}

// NewMaterial creates a material with the given surface color
func NewMaterial(color canvas.Color) Material {
	return Material{Color: color}
}

// DefaultMaterial returns a plain white material
func DefaultMaterial() Material {
	return Material{Color: canvas.NewColor(1, 1, 1)}
}
