package annotate

import (
	"image/color"
	"strconv"

	"github.com/matzehuels/pageviz/pkg/errors"
)

// Supported embedded raster formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Option configures a render call.
type Option func(*config)

type config struct {
	scale     float64
	fontName  string
	boxColor  *color.NRGBA  // single color broadcast to all boxes
	boxColors []color.NRGBA // per-box colors, must match box count
	labels    []string      // per-box labels, must match box count
	labelBG   color.NRGBA
	labelText color.NRGBA
	format    string
}

// WithScale sets the render scale factor (default 1.0).
func WithScale(s float64) Option {
	return func(c *config) { c.scale = s }
}

// WithFont selects the label font by name for the raster path. The default
// probes the monospace preference list.
func WithFont(name string) Option {
	return func(c *config) { c.fontName = name }
}

// WithBoxColor broadcasts a single fill color to every box.
func WithBoxColor(col color.NRGBA) Option {
	return func(c *config) { c.boxColor = &col }
}

// WithBoxColors sets per-box fill colors. The list length must match the
// box count.
func WithBoxColors(cols []color.NRGBA) Option {
	return func(c *config) { c.boxColors = cols }
}

// WithLabels sets per-box label strings. The list length must match the
// box count. Unset labels default to zero-based index strings.
func WithLabels(labels []string) Option {
	return func(c *config) { c.labels = labels }
}

// WithLabelBackground sets the label backdrop color.
func WithLabelBackground(col color.NRGBA) Option {
	return func(c *config) { c.labelBG = col }
}

// WithLabelText sets the label text color.
func WithLabelText(col color.NRGBA) Option {
	return func(c *config) { c.labelText = col }
}

// WithImageFormat selects the embedded raster encoding for the SVG path,
// one of [FormatPNG] (default) or [FormatJPEG].
func WithImageFormat(format string) Option {
	return func(c *config) { c.format = format }
}

func newConfig(opts ...Option) config {
	cfg := config{
		scale:     1.0,
		labelBG:   DefaultLabelBackground,
		labelText: DefaultLabelText,
		format:    FormatPNG,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// style holds fully resolved per-box styling for one render call.
type style struct {
	colors    []color.NRGBA
	labels    []string
	labelBG   color.NRGBA
	labelText color.NRGBA
}

// resolve normalizes the configured styling against n boxes. Explicit
// per-box lists are validated against the box count and rejected with a
// LENGTH_MISMATCH error on disagreement.
func (c config) resolve(n int) (style, error) {
	if err := errors.ValidateScale(c.scale); err != nil {
		return style{}, err
	}
	if err := errors.ValidateImageFormat(c.format); err != nil {
		return style{}, err
	}

	st := style{labelBG: c.labelBG, labelText: c.labelText}

	switch {
	case c.boxColors != nil:
		if len(c.boxColors) != n {
			return style{}, errors.New(errors.ErrCodeLengthMismatch,
				"got %d box colors for %d boxes", len(c.boxColors), n)
		}
		st.colors = c.boxColors
	default:
		fill := DefaultBoxColor
		if c.boxColor != nil {
			fill = *c.boxColor
		}
		st.colors = make([]color.NRGBA, n)
		for i := range st.colors {
			st.colors[i] = fill
		}
	}

	if c.labels != nil {
		if len(c.labels) != n {
			return style{}, errors.New(errors.ErrCodeLengthMismatch,
				"got %d labels for %d boxes", len(c.labels), n)
		}
		st.labels = c.labels
	} else {
		st.labels = make([]string, n)
		for i := range st.labels {
			st.labels[i] = strconv.Itoa(i)
		}
	}

	return st, nil
}
