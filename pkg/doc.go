// Package pkg provides the core libraries for pageviz box annotation.
//
// # Overview
//
// Pageviz draws bounding-box annotations onto page images, producing
// either a composed raster image or a self-contained SVG. The pkg
// directory is organized by concern:
//
//  1. [geom] - Box geometry and coordinate-space mapping
//  2. [page] - Page abstraction and image loading
//  3. [annotate] - The annotator: raster and SVG render paths
//  4. [boxio] - JSON box documents and TOML style files
//  5. [fonts] - Monospace font discovery for raster labels
//  6. [server] - HTTP preview server
//  7. [cache] - Caching of rendered output entries
//  8. [errors] - Structured error codes shared by library and CLI
//
// # Architecture
//
// The typical data flow through pageviz:
//
//	Page image + box document
//	         ↓
//	    [geom] package (scale, flip, precedes predicates)
//	         ↓
//	    [annotate] package (raster canvas or SVG document)
//	         ↓
//	    PNG/JPEG/SVG output
//
// Boxes live in a bottom-left-origin page space; the annotator reconciles
// that with the top-left-origin raster space so both output paths place
// every rectangle and label at the same final pixel positions.
package pkg
