// Package boxio reads and writes annotated box lists and style
// configuration.
//
// Box lists travel as JSON documents so layout pipelines in other
// languages can hand their detections to pageviz:
//
//	{
//	  "boxes": [
//	    {"x1": 10, "y1": 10, "x2": 50, "y2": 30, "label": "title", "color": "#FF6F6140"}
//	  ]
//	}
//
// Coordinates are in the page's bottom-left-origin source space. The
// label and color fields are optional; absent values fall back to the
// annotator defaults (index labels, translucent coral fill).
//
// Style configuration is a TOML file mapping onto annotator options, used
// by the CLI and preview server:
//
//	scale = 2.0
//	font = "Menlo"
//	format = "png"
//
//	[colors]
//	box = "#FF6F6140"
//	label_background = "#F5DF4DC4"
//	label_text = "#6667AB"
package boxio
