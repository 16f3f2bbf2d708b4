package boxio

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/errors"
)

// Style is the TOML style configuration accepted by the CLI and preview
// server. Zero values mean "use the annotator default".
type Style struct {
	Scale  float64     `toml:"scale"`
	Font   string      `toml:"font"`
	Format string      `toml:"format"`
	Colors StyleColors `toml:"colors"`
}

// StyleColors holds the hex color overrides.
type StyleColors struct {
	Box             string `toml:"box"`
	LabelBackground string `toml:"label_background"`
	LabelText       string `toml:"label_text"`
}

// LoadStyle reads and parses a TOML style file.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open style file %s", path)
	}
	var s Style
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse style file %s", path)
	}
	return &s, nil
}

// Options converts the style into annotator options, validating colors.
func (s *Style) Options() ([]annotate.Option, error) {
	var opts []annotate.Option

	if s.Scale != 0 {
		opts = append(opts, annotate.WithScale(s.Scale))
	}
	if s.Font != "" {
		opts = append(opts, annotate.WithFont(s.Font))
	}
	if s.Format != "" {
		opts = append(opts, annotate.WithImageFormat(s.Format))
	}

	if s.Colors.Box != "" {
		c, err := annotate.ParseHex(s.Colors.Box)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotate.WithBoxColor(c))
	}
	if s.Colors.LabelBackground != "" {
		c, err := annotate.ParseHex(s.Colors.LabelBackground)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotate.WithLabelBackground(c))
	}
	if s.Colors.LabelText != "" {
		c, err := annotate.ParseHex(s.Colors.LabelText)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotate.WithLabelText(c))
	}

	return opts, nil
}
