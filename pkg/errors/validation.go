package errors

import (
	"math"
	"regexp"
)

// hexColorRegex matches #RGB, #RRGGBB and #RRGGBBAA hex color notations.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateHexColor validates a hex color string (#RGB, #RRGGBB or #RRGGBBAA).
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q (expected #RGB, #RRGGBB or #RRGGBBAA)", s)
	}
	return nil
}

// ValidateImageFormat validates an embedded raster format name.
// Only png and jpeg are supported by the render paths.
func ValidateImageFormat(format string) error {
	switch format {
	case "png", "jpeg":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "image format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unsupported image format: %q (must be 'png' or 'jpeg')", format)
	}
}

// ValidateScale validates a render scale factor.
// Scale must be finite and strictly positive.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return New(ErrCodeInvalidScale, "invalid scale factor: %v (must be positive and finite)", scale)
	}
	return nil
}
