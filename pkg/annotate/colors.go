package annotate

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/matzehuels/pageviz/pkg/errors"
)

// Default styling colors, 0-255 per channel with straight alpha.
var (
	// DefaultBoxColor is the translucent coral fill used for boxes.
	DefaultBoxColor = color.NRGBA{R: 255, G: 111, B: 97, A: 64}

	// DefaultLabelBackground is the yellow backdrop behind label text.
	DefaultLabelBackground = color.NRGBA{R: 245, G: 223, B: 77, A: 196}

	// DefaultLabelText is the indigo label text color.
	DefaultLabelText = color.NRGBA{R: 102, G: 103, B: 171, A: 255}
)

// ParseHex parses a #RGB, #RRGGBB or #RRGGBBAA hex color. Missing alpha
// defaults to opaque.
func ParseHex(s string) (color.NRGBA, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return color.NRGBA{}, err
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse hex color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// alphaFraction converts an 8-bit alpha channel into a 0-1 opacity
// fraction rounded to three decimals, the form SVG color syntax accepts.
func alphaFraction(a uint8) float64 {
	return math.Round(float64(a)/255*1000) / 1000
}

// rgbaAttr renders a color as an SVG rgba() value. The alpha channel is
// re-expressed as an opacity fraction because SVG does not accept 8-bit
// alpha.
func rgbaAttr(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B,
		strconv.FormatFloat(alphaFraction(c.A), 'g', -1, 64))
}
