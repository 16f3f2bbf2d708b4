package annotate

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/geom"
	"github.com/matzehuels/pageviz/pkg/page"
)

// circleRadius is the label backdrop circle radius at scale 1.0.
const circleRadius = 4.0

const svgStyle = `
  <style type="text/css">
    text {
          font-family: monospace;
          font-weight: 700;
    }
  </style>`

// RenderSVG produces a self-contained SVG document: the rasterized page
// embedded as an inline base64 image, one vector rectangle per box, and
// one circle plus centered text element per label.
//
// The page raster stays in natural orientation; each rectangle's vertical
// position is remapped through [geom.UpperLeftY] into SVG's top-left-origin
// convention, and each label center through [geom.Point.InvertY] — the same
// arithmetic the raster path applies via its flipped canvas, so both paths
// agree on final pixel positions. The raster is embedded rather than
// referenced by path: a file reference was observed to invert the image,
// and embedding keeps the document free of filesystem co-location.
func RenderSVG(p page.Page, boxes []geom.Box, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	st, err := cfg.resolve(len(boxes))
	if err != nil {
		return "", err
	}

	w, h := p.Size()
	raster, err := p.Render(cfg.scale)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "rasterize page at scale %g", cfg.scale)
	}
	b64, err := encodeBase64(raster, cfg.format)
	if err != nil {
		return "", err
	}

	frameW, frameH := w*cfg.scale, h*cfg.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`+"\n", frameW, frameH)
	fmt.Fprintf(&buf, "<defs>%s\n</defs>\n", svgStyle)
	fmt.Fprintf(&buf, `<image href="data:image/%s;base64,%s" x="0.0" y="0.0" height="100%%" width="100%%" preserveAspectRatio="none" />`+"\n",
		cfg.format, b64)

	// Element groups stay contiguous: all rects, then all circles, then
	// all texts, so no label's backdrop paints over another label's text.
	for i, b := range boxes {
		renderRect(&buf, b, st.colors[i], cfg.scale, frameH)
	}
	for _, b := range boxes {
		renderCircle(&buf, b, st, cfg.scale, frameH)
	}
	for i, b := range boxes {
		renderText(&buf, b, st, i, cfg.scale, frameH)
	}

	buf.WriteString("</svg>\n")
	return buf.String(), nil
}

// renderRect writes one vector rectangle. The box's xywh form is scaled,
// then its vertical position remapped to the rectangle's upper-left corner.
func renderRect(buf *bytes.Buffer, b geom.Box, fill color.NRGBA, scale, frameH float64) {
	x, y, w, h := b.XYWH()
	x, y, w, h = x*scale, y*scale, w*scale, h*scale
	y = geom.UpperLeftY(y, h, frameH)
	fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" style="fill:%s" />`+"\n",
		x, y, w, h, rgbaAttr(fill))
}

// renderCircle writes the backdrop circle for one label.
func renderCircle(buf *bytes.Buffer, b geom.Box, st style, scale, frameH float64) {
	c := b.Center().Scale(scale).InvertY(frameH)
	fmt.Fprintf(buf, `<circle cx="%g" cy="%g" r="%g" style="fill:%s" />`+"\n",
		c.X, c.Y, circleRadius*scale, rgbaAttr(st.labelBG))
}

// renderText writes the centered text for one label. SVG text has no
// background-fill, so readability comes from four offset text-shadow
// copies in the backdrop color.
func renderText(buf *bytes.Buffer, b geom.Box, st style, i int, scale, frameH float64) {
	c := b.Center().Scale(scale).InvertY(frameH)
	bg := rgbaAttr(st.labelBG)

	fmt.Fprintf(buf, `<text font-size="%g" fill="%s" x="%g" y="%g" `+
		`dominant-baseline="middle" text-anchor="middle" `+
		`style="text-shadow: -1px 1px 0 %s,1px 1px 0 %s,1px -1px 0 %s,-1px -1px 0 %s" `+
		`font-weight="bold">%s</text>`+"\n",
		fontPoints*scale, rgbaAttr(st.labelText), c.X, c.Y,
		bg, bg, bg, bg, escapeXML(st.labels[i]))
}

func encodeBase64(img image.Image, format string) (string, error) {
	enc := imaging.PNG
	if format == FormatJPEG {
		enc = imaging.JPEG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, enc); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncode, err, "encode embedded %s image", format)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
