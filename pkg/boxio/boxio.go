package boxio

import (
	"encoding/json"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/geom"
)

// Document is the JSON form of an annotated box list.
type Document struct {
	Boxes []Entry `json:"boxes"`
}

// Entry is one box with optional styling.
type Entry struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"` // hex, e.g. "#FF6F6140"
}

// Read decodes a JSON box document from r.
func Read(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoxes, err, "decode box document")
	}
	return &d, nil
}

// ReadFile reads a JSON box document from a file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes the document as indented JSON to w.
func Write(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode box document")
	}
	return nil
}

// WriteFile writes the document to a file with 0644 permissions.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(d, f)
}

// FromBoxes builds a document from bare geometry.
func FromBoxes(boxes []geom.Box) *Document {
	d := &Document{Boxes: make([]Entry, len(boxes))}
	for i, b := range boxes {
		d.Boxes[i] = Entry{X1: b.X1, Y1: b.Y1, X2: b.X2, Y2: b.Y2}
	}
	return d
}

// Geometry returns the document's boxes as geometry values.
func (d *Document) Geometry() []geom.Box {
	boxes := make([]geom.Box, len(d.Boxes))
	for i, e := range d.Boxes {
		boxes[i] = geom.NewBox(e.X1, e.Y1, e.X2, e.Y2)
	}
	return boxes
}

// Options derives annotator options from the document's per-entry styling.
// If any entry sets a label or color, a full per-box list is produced;
// entries without a value get the annotator default (index label, default
// fill).
func (d *Document) Options() ([]annotate.Option, error) {
	var opts []annotate.Option

	hasLabels, hasColors := false, false
	for _, e := range d.Boxes {
		hasLabels = hasLabels || e.Label != ""
		hasColors = hasColors || e.Color != ""
	}

	if hasLabels {
		labels := make([]string, len(d.Boxes))
		for i, e := range d.Boxes {
			if e.Label != "" {
				labels[i] = e.Label
			} else {
				labels[i] = strconv.Itoa(i)
			}
		}
		opts = append(opts, annotate.WithLabels(labels))
	}

	if hasColors {
		colors := make([]color.NRGBA, len(d.Boxes))
		for i, e := range d.Boxes {
			if e.Color == "" {
				colors[i] = annotate.DefaultBoxColor
				continue
			}
			c, err := annotate.ParseHex(e.Color)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "box %d", i)
			}
			colors[i] = c
		}
		opts = append(opts, annotate.WithBoxColors(colors))
	}

	return opts, nil
}
