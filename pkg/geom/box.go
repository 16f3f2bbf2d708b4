package geom

import (
	"fmt"
	"math"
)

// Box is an immutable axis-aligned rectangle in a bottom-left-origin space.
// (X1, Y1) is the lower-left corner and (X2, Y2) the upper-right corner.
//
// The invariant X1 <= X2 and Y1 <= Y2 is assumed but never enforced:
// degenerate or inverted boxes are accepted and every derived measurement
// stays computable (width or height may come out negative). Validity is the
// caller's responsibility.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// NewBox creates a box from two corner coordinates.
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// String returns a fixed-precision textual form of the box.
func (b Box) String() string {
	return fmt.Sprintf("Box(x1=%.3f, y1=%.3f, x2=%.3f, y2=%.3f)", b.X1, b.Y1, b.X2, b.Y2)
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Size returns the width and height of the box.
func (b Box) Size() (w, h float64) { return b.Width(), b.Height() }

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Coords returns the four corner coordinates unchanged. This is the
// canonical serialization of a box: NewBox(b.Coords()) equals b.
func (b Box) Coords() (x1, y1, x2, y2 float64) {
	return b.X1, b.Y1, b.X2, b.Y2
}

// XYWH returns the (x, y, width, height) form expected by image and SVG
// tooling. Those representations anchor at the upper-left corner, so a
// correct vertical position usually needs a further [UpperLeftY] remap.
func (b Box) XYWH() (x, y, w, h float64) {
	return b.X1, b.Y1, b.Width(), b.Height()
}

// ScaleCoords returns the four corner coordinates multiplied by factor.
// Scaling is a rendering-space transform, not a mutation of the box, so the
// result is a coordinate tuple rather than a new Box.
func (b Box) ScaleCoords(factor float64) (x1, y1, x2, y2 float64) {
	return b.X1 * factor, b.Y1 * factor, b.X2 * factor, b.Y2 * factor
}

// HDist returns the signed horizontal gap from this box's right edge to
// other's left edge. Negative when the boxes overlap horizontally; for two
// perfectly justified boxes stacked in one column it returns -width.
func (b Box) HDist(other Box) float64 { return other.X1 - b.X2 }

// VDist returns the signed vertical gap from this box's bottom edge to
// other's top edge. Negative when the boxes overlap vertically; for two
// boxes on the same line it returns -height.
func (b Box) VDist(other Box) float64 { return b.Y1 - other.Y2 }

// DistBetweenCenters returns the Euclidean distance between the two box
// centers.
func (b Box) DistBetweenCenters(other Box) float64 {
	c, oc := b.Center(), other.Center()
	return math.Hypot(c.X-oc.X, c.Y-oc.Y)
}

// PrecedesX reports whether this box lies strictly left of other: its right
// edge must clear other's left edge by more than tol. Boxes that share or
// overlap the tested boundary region are not related in either direction.
func (b Box) PrecedesX(other Box, tol float64) bool {
	return b.X2 < other.X1-tol
}

// PrecedesY reports whether this box lies strictly above other in
// bottom-left-origin space: its bottom edge must clear other's top edge by
// more than tol.
//
// The classical TBRR definition assumes a top-left origin. With a
// bottom-left origin the roles of y1 and y2 flip, the tolerance is added to
// other's top edge instead of subtracted, and the inequality reverses. This
// deviation is intentional and load-bearing for reading-order inference;
// do not "correct" it back to the textbook form.
func (b Box) PrecedesY(other Box, tol float64) bool {
	return b.Y1 > other.Y2+tol
}
