// Package geom provides the axis-aligned box model used throughout pageviz.
//
// A [Box] is an immutable rectangle defined by two corner coordinates in a
// bottom-left-origin space, matching the native geometry of document pages.
// Derived measurements (width, height, center) and pairwise ordering
// predicates (PrecedesX, PrecedesY) are pure functions of the four
// coordinates.
//
// The package also centralizes the coordinate mapping between the page's
// bottom-left-origin space and the top-left-origin spaces used by raster
// images and SVG documents. Both render paths share [Point.Scale],
// [Point.InvertY] and [UpperLeftY] so their placement arithmetic cannot
// drift apart.
//
// # Ordering Predicates
//
// PrecedesX and PrecedesY implement the "precedes" relation from the Thick
// Boundary Rectangle Relations formalism (M. Aiello et al., "Document
// understanding for a broad class of documents"). They are strict,
// tolerance-aware orderings intended for reading-order inference: two boxes
// whose tested boundaries overlap within the tolerance are not related in
// either direction.
package geom
