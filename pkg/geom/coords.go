package geom

// Point is a position in a 2D coordinate space.
type Point struct {
	X, Y float64
}

// Scale multiplies both coordinates by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// InvertY flips the vertical coordinate within a space of the given height,
// mapping between bottom-left-origin and top-left-origin orientations. The
// mapping is its own inverse.
func (p Point) InvertY(height float64) Point {
	return Point{X: p.X, Y: height - p.Y}
}

// UpperLeftY converts the vertical position of a bottom-left-anchored
// rectangle into the upper-left anchor expected by top-left-origin
// rectangle primitives: frameHeight - (y + height).
//
// Both the raster and SVG render paths place rectangles through this
// function so they stay numerically consistent.
func UpperLeftY(y, height, frameHeight float64) float64 {
	return frameHeight - (y + height)
}
