package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/boxio"
	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/page"
)

const (
	formatSVG  = "svg"
	formatPNG  = annotate.FormatPNG
	formatJPEG = annotate.FormatJPEG
)

// renderOpts holds the command-line flags for the render command. The
// *Set fields record whether a flag was given explicitly, so a flag at
// its default value still overrides the style file.
type renderOpts struct {
	output    string  // output file path; derived from the page path if empty
	format    string  // output format: "svg", "png", "jpeg"
	formatSet bool
	scale     float64 // render scale factor
	scaleSet  bool
	font      string // font name for raster labels
	style     string // optional TOML style file
}

// renderCommand creates the render command for annotating a page image.
//
// Default settings:
//   - format: svg (self-contained, embeds the page as base64)
//   - scale: 1.0
//   - output: page path with the extension replaced
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		scale:  1.0,
	}

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render box annotations onto a page image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boxesPath, err := cmd.Flags().GetString("boxes")
			if err != nil {
				return err
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			opts.scaleSet = cmd.Flags().Changed("scale")
			opts.formatSet = cmd.Flags().Changed("format")
			return c.runRender(args[0], boxesPath, &opts)
		},
	}

	cmd.Flags().StringP("boxes", "b", "", "JSON box document (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from page path)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, jpeg")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "render scale factor")
	cmd.Flags().StringVar(&opts.font, "font", "", "font name for raster labels")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style file")
	_ = cmd.MarkFlagRequired("boxes")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatJPEG: true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'jpeg')", f)
	}
	return nil
}

// outputPath derives the output file path from the flags and page path.
func outputPath(output, pagePath, format string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(pagePath, filepath.Ext(pagePath))
	return base + "_annotated." + format
}

// buildOptions assembles annotator options from the style file, box
// document, and command-line flags. Flags win over the style file.
func buildOptions(doc *boxio.Document, opts *renderOpts) ([]annotate.Option, error) {
	var result []annotate.Option

	if opts.style != "" {
		style, err := boxio.LoadStyle(opts.style)
		if err != nil {
			return nil, err
		}
		styleOpts, err := style.Options()
		if err != nil {
			return nil, err
		}
		result = append(result, styleOpts...)
	}

	docOpts, err := doc.Options()
	if err != nil {
		return nil, err
	}
	result = append(result, docOpts...)

	if opts.scaleSet || opts.scale != 1.0 {
		result = append(result, annotate.WithScale(opts.scale))
	}
	if opts.font != "" {
		result = append(result, annotate.WithFont(opts.font))
	}
	if opts.formatSet || opts.format != formatSVG {
		// An explicit -f svg resets the embedded raster encoding to its
		// default; svg itself is not a raster encoding.
		raster := opts.format
		if raster == formatSVG {
			raster = formatPNG
		}
		result = append(result, annotate.WithImageFormat(raster))
	}

	return result, nil
}

// runRender loads the page and box document, renders the annotation in the
// requested format, and writes the output file.
func (c *CLI) runRender(pagePath, boxesPath string, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s", pagePath)

	p, err := page.Load(pagePath)
	if err != nil {
		return err
	}
	w, h := p.Size()
	c.Logger.Debugf("Loaded page: %gx%g", w, h)

	doc, err := boxio.ReadFile(boxesPath)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded %d boxes", len(doc.Boxes))

	annotateOpts, err := buildOptions(doc, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	out := outputPath(opts.output, pagePath, opts.format)
	boxes := doc.Geometry()

	switch opts.format {
	case formatSVG:
		svg, err := annotate.RenderSVG(p, boxes, annotateOpts...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return err
		}
	case formatPNG, formatJPEG:
		img, err := annotate.RenderImage(p, boxes, annotateOpts...)
		if err != nil {
			return err
		}
		if err := imaging.Save(img, out); err != nil {
			return errors.Wrap(errors.ErrCodeEncode, err, "save %s", out)
		}
	}

	prog.done("Rendered " + out)
	printSuccess("Annotated %d boxes", len(boxes))
	printFile(out)
	return nil
}
