package tween

import "github.com/lucasb-eyer/go-colorful"

// Lerp returns the linear interpolator between a and b.
func Lerp(a, b float64) func(t float64) float64 {
	return func(t float64) float64 {
		return a + (b-a)*t
	}
}

// Point is a small spatial value for transform-style animations.
type Point struct {
	X, Y, Z float64
}

// LerpPoint interpolates component-wise between a and b.
func LerpPoint(a, b Point) func(t float64) Point {
	return func(t float64) Point {
		return Point{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
		}
	}
}

// LerpColor blends between a and b channel-wise in RGB space, so the midpoint
// is the exact arithmetic midpoint of the two colours.
func LerpColor(a, b colorful.Color) func(t float64) colorful.Color {
	return func(t float64) colorful.Color {
		return colorful.Color{
			R: a.R + (b.R-a.R)*t,
			G: a.G + (b.G-a.G)*t,
			B: a.B + (b.B-a.B)*t,
		}
	}
}

// LerpColorHcl blends between a and b in HCL space, which keeps the
// intermediate colours perceptually even at the cost of exact channel
// arithmetic.
func LerpColorHcl(a, b colorful.Color) func(t float64) colorful.Color {
	return func(t float64) colorful.Color {
		return a.BlendHcl(b, t).Clamped()
	}
}
