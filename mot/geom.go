package mot

import "math"

// Rectangle is an axis-aligned box in normalized image coordinates.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point is a 2-D coordinate in normalized image space.
type Point struct {
	X float64
	Y float64
}

// Center returns the rectangle's geometric center.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2.0, Y: r.Y + r.Height/2.0}
}

// finite reports whether every field of r is a finite number, ruling out
// NaN and +/-Inf from ever reaching the filter or cost functions.
func (r Rectangle) finite() bool {
	return !math.IsNaN(r.X) && !math.IsInf(r.X, 0) &&
		!math.IsNaN(r.Y) && !math.IsInf(r.Y, 0) &&
		!math.IsNaN(r.Width) && !math.IsInf(r.Width, 0) &&
		!math.IsNaN(r.Height) && !math.IsInf(r.Height, 0)
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

// IoU calculates Intersection over Union between two rectangles.
func IoU(r1, r2 Rectangle) float64 {
	xA := maxFloat64(r1.X, r2.X)
	yA := maxFloat64(r1.Y, r2.Y)
	xB := minFloat64(r1.X+r1.Width, r2.X+r2.Width)
	yB := minFloat64(r1.Y+r1.Height, r2.Y+r2.Height)

	interArea := maxFloat64(0, xB-xA) * maxFloat64(0, yB-yA)
	if interArea == 0 {
		return 0.0
	}

	r1Area := r1.Width * r1.Height
	r2Area := r2.Width * r2.Height

	return interArea / (r1Area + r2Area - interArea)
}

// centerDistance returns the Euclidean distance between two rectangles'
// centers, in the same normalized image coordinates as the rectangles
// themselves.
func centerDistance(r1, r2 Rectangle) float64 {
	return euclideanDistance(r1.Center(), r2.Center())
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
