package math

import "math"

// Epsilon is the tolerance used by every structural equality in the kernel.
const Epsilon = 1e-5

// ApproxEqual reports whether two floats are within Epsilon of each other
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Scale converts a color component in [0, 1] to an integer in [0, max],
// clamping values outside the range
func Scale(component float64, max int) int {
	scaled := int(component * float64(max))
	if scaled < 0 {
		return 0
	}
	if scaled > max {
		return max
	}
	return scaled
}
