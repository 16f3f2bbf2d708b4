package annotate

import (
	"image/color"
	"testing"

	"github.com/matzehuels/pageviz/pkg/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "rgb opaque", input: "#FF6F61", want: color.NRGBA{R: 255, G: 111, B: 97, A: 255}},
		{name: "rgba", input: "#FF6F6140", want: color.NRGBA{R: 255, G: 111, B: 97, A: 64}},
		{name: "short form", input: "#f00", want: color.NRGBA{R: 255, A: 255}},
		{name: "lowercase", input: "#6667ab", want: color.NRGBA{R: 102, G: 103, B: 171, A: 255}},
		{name: "missing hash", input: "FF6F61", wantErr: true},
		{name: "bad digit", input: "#GG0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("ParseHex(%q) error = %v, want INVALID_COLOR", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlphaFraction(t *testing.T) {
	tests := []struct {
		alpha uint8
		want  float64
	}{
		{alpha: 255, want: 1},
		{alpha: 0, want: 0},
		{alpha: 64, want: 0.251},
		{alpha: 196, want: 0.769},
	}

	for _, tt := range tests {
		if got := alphaFraction(tt.alpha); got != tt.want {
			t.Errorf("alphaFraction(%d) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestRGBAAttr(t *testing.T) {
	tests := []struct {
		name  string
		color color.NRGBA
		want  string
	}{
		{name: "default label bg", color: DefaultLabelBackground, want: "rgba(245,223,77,0.769)"},
		{name: "opaque", color: color.NRGBA{R: 1, G: 2, B: 3, A: 255}, want: "rgba(1,2,3,1)"},
		{name: "translucent box fill", color: DefaultBoxColor, want: "rgba(255,111,97,0.251)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbaAttr(tt.color); got != tt.want {
				t.Errorf("rgbaAttr(%v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}
