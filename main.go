package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-ray-kernel/pkg/canvas"
	"github.com/df07/go-ray-kernel/pkg/math"
)

func main() {
	// Parse command line flags
	demoType := flag.String("demo", "projectile", "Demo type: 'projectile' or 'clock'")
	outputDir := flag.String("output", "output", "Output directory for PPM files")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Kernel Demos")
		fmt.Println("Usage: ray-kernel [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available demos:")
		fmt.Println("  projectile - Plot a projectile arc under gravity and wind")
		fmt.Println("  clock      - Plot twelve clock-face hour marks via z-axis rotation")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<demo_type>_<timestamp>.ppm")
		return
	}

	var c *canvas.Canvas
	switch *demoType {
	case "clock":
		fmt.Println("Plotting clock face...")
		c = clockDemo(200, 200)
	case "projectile":
		fmt.Println("Plotting projectile arc...")
		c = projectileDemo(900, 550)
	default:
		fmt.Printf("Unknown demo type: %s. Using projectile demo.\n", *demoType)
		c = projectileDemo(900, 550)
		*demoType = "projectile"
	}

	err := os.MkdirAll(*outputDir, 0755)
	if err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("%s_%s.ppm", *demoType, timestamp))

	err = os.WriteFile(filename, []byte(c.PPMString()), 0644)
	if err != nil {
		fmt.Printf("Error saving PPM: %v\n", err)
		return
	}

	fmt.Printf("Demo saved as %s\n", filename)
}

// projectileDemo ticks a projectile across the canvas, plotting its
// position each tick until it falls back to the ground
func projectileDemo(width, height int) *canvas.Canvas {
	c := canvas.NewCanvas(width, height)
	red := canvas.NewColor(1, 0, 0)

	position := math.NewPoint(0, 1, 0)
	velocity := math.NewVector(1, 1.8, 0).Normalize().Multiply(11.25)
	gravity := math.NewVector(0, -0.1, 0)
	wind := math.NewVector(-0.01, 0, 0)

	for position.Y > 0 {
		plot(c, position, red)
		position = position.Add(velocity)
		velocity = velocity.Add(gravity).Add(wind)
	}
	return c
}

// clockDemo rotates the twelve-o'clock point around the z axis to mark
// each hour on the face
func clockDemo(width, height int) *canvas.Canvas {
	c := canvas.NewCanvas(width, height)
	white := canvas.NewColor(1, 1, 1)

	radius := float64(width) * 3 / 8
	center := math.NewVector(float64(width)/2, float64(height)/2, 0)
	twelve := math.NewPoint(0, radius, 0)

	for hour := 0; hour < 12; hour++ {
		rotation := math.RotationZ(float64(hour) * stdmath.Pi / 6)
		mark := rotation.MultiplyTuple(twelve).Add(center)
		plot(c, mark, white)
	}
	return c
}

// plot writes a pixel at the tuple's x/y, flipping y so world-up is
// canvas-up, and skips positions outside the canvas
func plot(c *canvas.Canvas, position math.Tuple, color canvas.Color) {
	x := int(position.X)
	y := c.Height() - 1 - int(position.Y)
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return
	}
	c.WritePixel(x, y, color)
}
