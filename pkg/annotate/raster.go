package annotate

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/fonts"
	"github.com/matzehuels/pageviz/pkg/geom"
	"github.com/matzehuels/pageviz/pkg/page"
)

const (
	// fontPoints is the base label font size, multiplied by the render scale.
	fontPoints = 6.0

	// ellipseDivisor sizes the label ellipse's half-extents from the
	// measured text extent. Kept below 2 so the ellipse overshoots the
	// text and bounds it legibly.
	ellipseDivisor = 1.5
)

// RenderImage draws every box as a filled translucent rectangle and every
// label as upright centered text on the rasterized page, returning the
// composed image.
//
// The page is rasterized once at the requested scale and immediately
// flipped vertically so the canvas orientation matches the boxes'
// bottom-left origin; scaled box coordinates then apply directly without a
// per-draw transform. Text cannot be drawn in that flipped space without
// mirroring, so labels go onto a separate transparent layer kept in
// natural orientation, placed at vertically inverted centers. After
// drawing, the main canvas is flipped back and the text layer is
// alpha-composited on top.
func RenderImage(p page.Page, boxes []geom.Box, opts ...Option) (image.Image, error) {
	cfg := newConfig(opts...)
	st, err := cfg.resolve(len(boxes))
	if err != nil {
		return nil, err
	}
	fnt, err := fonts.Load(cfg.fontName)
	if err != nil {
		return nil, err
	}

	_, pageH := p.Size()
	raster, err := p.Render(cfg.scale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "rasterize page at scale %g", cfg.scale)
	}

	flipped := imaging.FlipV(raster)
	dc := gg.NewContextForImage(flipped)
	dc.SetFontFace(fnt.Face(fontPoints * cfg.scale))

	for i, b := range boxes {
		x1, y1, x2, y2 := b.ScaleCoords(cfg.scale)
		dc.SetColor(st.colors[i])
		dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
		dc.Fill()
	}

	// The label layer stays unflipped so glyphs render upright.
	bounds := dc.Image().Bounds()
	text := gg.NewContext(bounds.Dx(), bounds.Dy())
	text.SetFontFace(fnt.Face(fontPoints * cfg.scale))

	frameH := pageH * cfg.scale
	for i, b := range boxes {
		c := b.Center().Scale(cfg.scale)
		tw, th := dc.MeasureString(st.labels[i])

		dc.SetColor(st.labelBG)
		dc.DrawEllipse(c.X, c.Y, tw/ellipseDivisor, th/ellipseDivisor)
		dc.Fill()

		// The main canvas is pre-flipped, so the label layer needs the
		// inverted center to land on the same final pixel.
		pt := c.InvertY(frameH)
		text.SetColor(st.labelText)
		text.DrawStringAnchored(st.labels[i], pt.X, pt.Y, 0.5, 0.5)
	}

	base := imaging.FlipV(dc.Image())
	return imaging.Overlay(base, text.Image(), image.Pt(0, 0), 1.0), nil
}
