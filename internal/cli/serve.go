package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pageviz/pkg/boxio"
	"github.com/matzehuels/pageviz/pkg/cache"
	"github.com/matzehuels/pageviz/pkg/page"
	"github.com/matzehuels/pageviz/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	style   string // optional TOML style file
	scale   float64
	font    string
	noCache bool // disable the response cache
}

// serveCommand creates the serve command for previewing annotations in a
// browser. The server re-renders on every request, so restarting is only
// needed when the page or box document changes.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:  "localhost:8080",
		scale: 1.0,
	}

	cmd := &cobra.Command{
		Use:   "serve [page]",
		Short: "Serve a live annotation preview over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boxesPath, err := cmd.Flags().GetString("boxes")
			if err != nil {
				return err
			}
			return c.runServe(cmd, args[0], boxesPath, &opts)
		},
	}

	cmd.Flags().StringP("boxes", "b", "", "JSON box document (required)")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "render scale factor")
	cmd.Flags().StringVar(&opts.font, "font", "", "font name for raster labels")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	_ = cmd.MarkFlagRequired("boxes")

	return cmd
}

// newCache builds the response cache, falling back to a null cache when
// caching is disabled or the cache directory is unavailable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pageviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// inputFingerprint identifies the serve inputs so cached renders go stale
// when any input file changes. Missing paths contribute their name only.
func inputFingerprint(paths ...string) string {
	parts := make([]any, 0, len(paths)*3)
	for _, p := range paths {
		parts = append(parts, p)
		if info, err := os.Stat(p); err == nil {
			parts = append(parts, info.Size(), fmt.Sprint(info.ModTime().UnixNano()))
		}
	}
	return cache.Key("inputs", parts...)
}

// runServe loads the page and box document and serves them until the
// command context is cancelled.
func (c *CLI) runServe(cmd *cobra.Command, pagePath, boxesPath string, opts *serveOpts) error {
	p, err := page.Load(pagePath)
	if err != nil {
		return err
	}

	doc, err := boxio.ReadFile(boxesPath)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded %d boxes", len(doc.Boxes))

	renderOpts := renderOpts{
		format:   formatSVG,
		scale:    opts.scale,
		scaleSet: cmd.Flags().Changed("scale"),
		font:     opts.font,
		style:    opts.style,
	}
	annotateOpts, err := buildOptions(doc, &renderOpts)
	if err != nil {
		return err
	}

	printInfo("Preview at http://%s/render", opts.addr)
	srv := server.New(p, doc.Geometry(), c.Logger, annotateOpts...)
	respCache := newCache(opts.noCache)
	defer respCache.Close()
	srv.SetCache(respCache, inputFingerprint(pagePath, boxesPath, opts.style), 0)
	return srv.ListenAndServe(cmd.Context(), opts.addr)
}
