// Package fonts locates monospace system fonts for label rendering.
//
// Fonts are discovered by probing a fixed preference list against the
// system font directories using [github.com/flopp/go-findfont]. Discovery
// never falls back to an unreadable default: when no candidate resolves,
// an error with code FONT_NOT_FOUND is returned and rendering fails.
package fonts

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/pageviz/pkg/errors"
)

// Preference is the ordered list of monospace fonts probed by [Default].
// The trailing entries cover stock Linux installs that ship neither Menlo
// nor Consolas.
var Preference = []string{
	"Menlo",
	"Monaco",
	"Consolas",
	"Ubuntu Mono",
	"Courier New",
	"DejaVu Sans Mono",
	"Liberation Mono",
}

// Font is a parsed TrueType font resolved from the system.
type Font struct {
	Name string // the preference-list name that matched
	Path string // resolved font file path
	ttf  *truetype.Font
}

var (
	defaultFont *Font
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the first available font from [Preference].
// The result is resolved once and cached for the process lifetime.
func Default() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = probe(Preference)
	})
	return defaultFont, defaultErr
}

// Load resolves a single font by name. An empty name falls back to
// [Default].
func Load(name string) (*Font, error) {
	if name == "" {
		return Default()
	}
	return probe([]string{name})
}

func probe(names []string) (*Font, error) {
	for _, name := range names {
		for _, candidate := range variants(name) {
			path, err := findfont.Find(candidate)
			if err != nil {
				continue
			}
			ttf, err := parse(path)
			if err != nil {
				continue
			}
			return &Font{Name: name, Path: path, ttf: ttf}, nil
		}
	}
	return nil, errors.New(errors.ErrCodeFontNotFound,
		"no usable monospace font found among %v", names)
}

// variants returns the file-name spellings probed for a family name.
// Matching is against font file names, which ship both with and without
// spaces ("Courier New.ttf" vs "CourierNew.ttf").
func variants(name string) []string {
	stripped := strings.ReplaceAll(name, " ", "")
	if stripped == name {
		return []string{name}
	}
	return []string{name, stripped}
}

func parse(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

// Face returns a font.Face of the given point size.
func (f *Font) Face(points float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{Size: points})
}
