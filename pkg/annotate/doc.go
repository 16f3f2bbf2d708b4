// Package annotate renders labeled boxes over document page images.
//
// Given a [page.Page] and a list of [geom.Box] values, the annotator
// produces either a composed raster image ([RenderImage]) or a
// self-contained SVG document ([RenderSVG]) with the rasterized page
// embedded inline. Both outputs draw every box as a filled translucent
// rectangle and every label as centered text on a filled backdrop.
//
// # Coordinate Reconciliation
//
// Three coordinate systems are in play: the page's bottom-left-origin
// source space, the top-left-origin raster space of the rendered page, and
// the label layer, which must receive glyphs right-side-up. The raster
// path flips the page once so box coordinates apply directly, keeps text
// on a separate unflipped layer, and composites the two after flipping the
// main canvas back. The SVG path expresses the same mapping analytically
// through [geom.UpperLeftY] and [geom.Point.InvertY]. Both paths place
// every rectangle edge and label center at identical final pixel
// positions.
//
// # Styling
//
// Styling is request-scoped and resolved per call: a single box color
// broadcasts to all boxes, explicit color or label lists must match the
// box count (a LENGTH_MISMATCH error is returned otherwise), and unset
// labels default to zero-based index strings.
package annotate
