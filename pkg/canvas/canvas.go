package canvas

import (
	"fmt"
	"strings"
)

// Canvas is a fixed-size pixel buffer, row-major, initialized to black
type Canvas struct {
	width, height int
	pixels        []Color
}

// NewCanvas creates a black canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the pixel at x, y. Out-of-range coordinates panic.
func (c *Canvas) WritePixel(x, y int, p Color) {
	c.pixels[y*c.width+x] = p
}

// PixelAt returns the pixel at x, y. Out-of-range coordinates panic.
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[y*c.width+x]
}

// PPMString renders the canvas in plain PPM (P3) format, one pixel per line
func (c *Canvas) PPMString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.width, c.height)
	for _, pixel := range c.pixels {
		b.WriteString(pixel.PPMString())
		b.WriteString("\n")
	}
	return b.String()
}
