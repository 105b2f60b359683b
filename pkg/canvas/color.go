package canvas

import (
	"fmt"

	"github.com/df07/go-ray-kernel/pkg/math"
)

// Color is an RGB triple with float components, nominally in [0, 1]
// but unclamped until serialization
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the Hadamard product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// MultiplyScalar returns the color scaled by a scalar
func (c Color) MultiplyScalar(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Equals reports component-wise epsilon-tolerant equality
func (c Color) Equals(other Color) bool {
	return math.ApproxEqual(c.R, other.R) &&
		math.ApproxEqual(c.G, other.G) &&
		math.ApproxEqual(c.B, other.B)
}

// PPMString renders the color as a PPM pixel: three integers in [0, 255]
func (c Color) PPMString() string {
	return fmt.Sprintf("%d %d %d", math.Scale(c.R, 255), math.Scale(c.G, 255), math.Scale(c.B, 255))
}
