package boxio

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/geom"
	"github.com/matzehuels/pageviz/pkg/page"
)

func testPage() page.Page {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return page.NewImagePage(img)
}

const sampleJSON = `{
  "boxes": [
    {"x1": 10, "y1": 10, "x2": 50, "y2": 30, "label": "title", "color": "#FF6F6140"},
    {"x1": 10, "y1": 40, "x2": 90, "y2": 60}
  ]
}`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(d.Boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(d.Boxes))
	}
	if d.Boxes[0].Label != "title" || d.Boxes[0].Color != "#FF6F6140" {
		t.Errorf("entry 0 = %+v, want label and color preserved", d.Boxes[0])
	}

	boxes := d.Geometry()
	if boxes[0] != geom.NewBox(10, 10, 50, 30) {
		t.Errorf("geometry[0] = %v, want Box(10, 10, 50, 30)", boxes[0])
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"boxes": [`)); !errors.Is(err, errors.ErrCodeInvalidBoxes) {
		t.Errorf("error = %v, want INVALID_BOXES", err)
	}
}

func TestRoundTrip(t *testing.T) {
	d := FromBoxes([]geom.Box{geom.NewBox(1, 2, 3, 4), geom.NewBox(5, 6, 7, 8)})
	d.Boxes[0].Label = "header"

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(got.Boxes) != 2 || got.Boxes[0] != d.Boxes[0] || got.Boxes[1] != d.Boxes[1] {
		t.Errorf("round trip mismatch: %+v vs %+v", got.Boxes, d.Boxes)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.json")
	d := FromBoxes([]geom.Box{geom.NewBox(0, 0, 10, 10)})

	if err := WriteFile(d, path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(got.Boxes) != 1 || got.Boxes[0] != d.Boxes[0] {
		t.Errorf("file round trip mismatch: %+v", got.Boxes)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDocumentOptions(t *testing.T) {
	d, err := Read(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	opts, err := d.Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	// One labels option and one colors option: entry 0 sets both fields,
	// entry 1 falls back to defaults.
	if len(opts) != 2 {
		t.Errorf("got %d options, want 2", len(opts))
	}
}

func TestDocumentOptionsBareGeometry(t *testing.T) {
	d := FromBoxes([]geom.Box{geom.NewBox(0, 0, 1, 1)})
	opts, err := d.Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("bare geometry produced %d options, want 0", len(opts))
	}
}

func TestDocumentOptionsBadColor(t *testing.T) {
	d := &Document{Boxes: []Entry{{X1: 0, Y1: 0, X2: 1, Y2: 1, Color: "red"}}}
	if _, err := d.Options(); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	content := `
scale = 2.0
font = "Menlo"
format = "jpeg"

[colors]
box = "#FF6F6140"
label_text = "#6667AB"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle error: %v", err)
	}
	if s.Scale != 2.0 || s.Font != "Menlo" || s.Format != "jpeg" {
		t.Errorf("style = %+v, want parsed scalar fields", s)
	}
	if s.Colors.Box != "#FF6F6140" || s.Colors.LabelBackground != "" {
		t.Errorf("colors = %+v, want box set and background empty", s.Colors)
	}

	opts, err := s.Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	// scale, font, format, box color, label text color
	if len(opts) != 5 {
		t.Errorf("got %d options, want 5", len(opts))
	}
}

func TestStyleOptionsEmpty(t *testing.T) {
	opts, err := (&Style{}).Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("empty style produced %d options, want 0", len(opts))
	}
}

func TestStyleOptionsBadColor(t *testing.T) {
	s := &Style{Colors: StyleColors{Box: "coral"}}
	if _, err := s.Options(); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}
}

// Style options must be accepted by the annotator's own resolution.
func TestStyleOptionsResolve(t *testing.T) {
	s := &Style{Scale: 2, Colors: StyleColors{Box: "#00FF0080"}}
	opts, err := s.Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	svg, err := annotate.RenderSVG(testPage(), []geom.Box{geom.NewBox(1, 1, 5, 5)}, opts...)
	if err != nil {
		t.Fatalf("RenderSVG with style options error: %v", err)
	}
	if !strings.Contains(svg, "rgba(0,255,0,0.502)") {
		t.Error("configured box color did not reach the output")
	}
}
