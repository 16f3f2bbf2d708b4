package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid color: %s", "#zz")
	if err.Code != ErrCodeInvalidColor {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidColor)
	}
	want := "INVALID_COLOR: invalid color: #zz"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeEncode, cause, "encode png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "ENCODE_ERROR: encode png: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFontNotFound, "no usable font")
	wrapped := fmt.Errorf("render: %w", err)

	if !Is(wrapped, ErrCodeFontNotFound) {
		t.Error("Is() should find the code through wrapping")
	}
	if Is(wrapped, ErrCodeInvalidColor) {
		t.Error("Is() matched the wrong code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeFontNotFound) {
		t.Error("Is() matched a plain error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeLengthMismatch, "boom")); got != ErrCodeLengthMismatch {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeLengthMismatch)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidScale, "bad scale")); got != "bad scale" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad scale")
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "short form", input: "#fff"},
		{name: "rgb", input: "#FF6F61"},
		{name: "rgba", input: "#FF6F6140"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing hash", input: "FF6F61", wantErr: true},
		{name: "bad length", input: "#FF6F6", wantErr: true},
		{name: "non-hex digits", input: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}

func TestValidateImageFormat(t *testing.T) {
	for _, format := range []string{"png", "jpeg"} {
		if err := ValidateImageFormat(format); err != nil {
			t.Errorf("ValidateImageFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "gif", "webp", "PNG"} {
		if err := ValidateImageFormat(format); !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateImageFormat(%q) = %v, want INVALID_FORMAT", format, err)
		}
	}
}

func TestValidateScale(t *testing.T) {
	for _, scale := range []float64{0.1, 1, 4} {
		if err := ValidateScale(scale); err != nil {
			t.Errorf("ValidateScale(%v) = %v, want nil", scale, err)
		}
	}
	bad := []float64{0, -1}
	for _, scale := range bad {
		if err := ValidateScale(scale); !Is(err, ErrCodeInvalidScale) {
			t.Errorf("ValidateScale(%v) = %v, want INVALID_SCALE", scale, err)
		}
	}
}
