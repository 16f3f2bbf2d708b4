package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/cache"
	"github.com/matzehuels/pageviz/pkg/errors"
	"github.com/matzehuels/pageviz/pkg/geom"
	"github.com/matzehuels/pageviz/pkg/page"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	defaultCacheTTL   = time.Hour
)

// Server renders a fixed page and box list on demand.
type Server struct {
	page        page.Page
	boxes       []geom.Box
	opts        []annotate.Option
	logger      *log.Logger
	cache       cache.Cache
	fingerprint string
	cacheTTL    time.Duration
}

// New creates a preview server for the given page and boxes. The options
// are applied to every render; a nil logger falls back to log.Default().
// Caching is off until [Server.SetCache] is called.
func New(p page.Page, boxes []geom.Box, logger *log.Logger, opts ...annotate.Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		page:     p,
		boxes:    boxes,
		opts:     opts,
		logger:   logger,
		cache:    cache.NewNullCache(),
		cacheTTL: defaultCacheTTL,
	}
}

// SetCache replaces the response cache. The fingerprint should identify
// the page and box inputs, so a restart with different inputs misses
// cleanly instead of serving stale renders. A ttl of 0 keeps the default
// of one hour.
func (s *Server) SetCache(c cache.Cache, fingerprint string, ttl time.Duration) {
	s.cache = c
	s.fingerprint = fingerprint
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// Handler returns the HTTP handler serving /render and /healthz.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/render", s.handleRender)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Serving preview on http://%s/render", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	"svg":               "image/svg+xml",
	annotate.FormatPNG:  "image/png",
	annotate.FormatJPEG: "image/jpeg",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	opts := s.opts
	rawScale := r.URL.Query().Get("scale")
	if rawScale != "" {
		scale, err := strconv.ParseFloat(rawScale, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidScale, "scale %q is not a number", rawScale))
			return
		}
		opts = append(append([]annotate.Option{}, opts...), annotate.WithScale(scale))
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format))
		return
	}

	key := cache.Key("render", s.fingerprint, format, rawScale)
	if e, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", e.ContentType)
		_, _ = w.Write(e.Data)
		s.logger.Debug("Rendered", "format", format, "cached", true, "took", time.Since(start).Round(time.Millisecond))
		return
	}

	data, err := s.render(format, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	e := cache.Entry{Data: data, ContentType: contentType}
	if err := s.cache.Set(r.Context(), key, e, s.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", "err", err)
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
	s.logger.Debug("Rendered", "format", format, "boxes", len(s.boxes), "took", time.Since(start).Round(time.Millisecond))
}

// render produces the annotated output bytes in the requested format.
func (s *Server) render(format string, opts []annotate.Option) ([]byte, error) {
	if format == "svg" {
		svg, err := annotate.RenderSVG(s.page, s.boxes, opts...)
		if err != nil {
			return nil, err
		}
		return []byte(svg), nil
	}

	img, err := annotate.RenderImage(s.page, s.boxes, opts...)
	if err != nil {
		return nil, err
	}
	enc := imaging.PNG
	if format == annotate.FormatJPEG {
		enc = imaging.JPEG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, enc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode %s response", format)
	}
	return buf.Bytes(), nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidScale, errors.ErrCodeInvalidBoxes, errors.ErrCodeLengthMismatch:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeFontNotFound:
		status = http.StatusNotFound
	}

	s.logger.Error("Render failed", "code", code, "err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}
