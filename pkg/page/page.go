// Package page defines the page collaborator consumed by the annotator.
//
// A [Page] exposes its pixel size in source space and can rasterize itself
// at a scale factor. The package ships [ImagePage], an adapter backed by a
// decoded image, which is what the CLI and preview server use. Backends
// that rasterize PDF pages can satisfy the same interface.
package page

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pageviz/pkg/errors"
)

// Page is a document page that can report its size and rasterize itself.
type Page interface {
	// Size returns the page dimensions (width, height) in source space.
	Size() (w, h float64)
	// Render rasterizes the page at the given scale factor. The returned
	// image is owned by the caller.
	Render(scale float64) (image.Image, error)
}

// ImagePage adapts a decoded raster image into a Page. The image's pixel
// dimensions become the page's source-space size.
type ImagePage struct {
	img image.Image
}

// NewImagePage wraps an already decoded image.
func NewImagePage(img image.Image) *ImagePage {
	return &ImagePage{img: img}
}

// Load reads and decodes an image file into an ImagePage.
func Load(path string) (*ImagePage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open page image %s", path)
	}
	return NewImagePage(img), nil
}

// Size returns the backing image's pixel dimensions.
func (p *ImagePage) Size() (w, h float64) {
	b := p.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Render returns the page raster at the given scale. Scale 1.0 returns a
// copy in NRGBA form; other factors resample with Lanczos filtering.
func (p *ImagePage) Render(scale float64) (image.Image, error) {
	if err := errors.ValidateScale(scale); err != nil {
		return nil, err
	}
	if scale == 1.0 {
		return imaging.Clone(p.img), nil
	}
	w, h := p.Size()
	dst := imaging.Resize(p.img,
		int(math.Round(w*scale)), int(math.Round(h*scale)), imaging.Lanczos)
	return dst, nil
}
