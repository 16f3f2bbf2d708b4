package server

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/pageviz/pkg/annotate"
	"github.com/matzehuels/pageviz/pkg/cache"
	"github.com/matzehuels/pageviz/pkg/fonts"
	"github.com/matzehuels/pageviz/pkg/geom"
	"github.com/matzehuels/pageviz/pkg/page"
)

func testServer(opts ...annotate.Option) *Server {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	boxes := []geom.Box{geom.NewBox(10, 10, 50, 30)}
	return New(page.NewImagePage(img), boxes, nil, opts...)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer().Handler(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestRenderDefaultsToSVG(t *testing.T) {
	rec := get(t, testServer().Handler(), "/render")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body does not start with an svg element: %.60s", rec.Body.String())
	}
}

func TestRenderPNG(t *testing.T) {
	if _, err := fonts.Default(); err != nil {
		t.Skipf("no monospace font available: %v", err)
	}

	rec := get(t, testServer().Handler(), "/render?format=png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, _, err := image.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode body as image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("image = %dx%d, want 100x100", b.Dx(), b.Dy())
	}
}

func TestRenderScaleOverride(t *testing.T) {
	rec := get(t, testServer().Handler(), "/render?scale=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `width="200"`) {
		t.Errorf("svg frame not scaled: %.120s", rec.Body.String())
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown format", target: "/render?format=gif", wantStatus: http.StatusBadRequest, wantCode: "INVALID_FORMAT"},
		{name: "non numeric scale", target: "/render?scale=abc", wantStatus: http.StatusBadRequest, wantCode: "INVALID_SCALE"},
		{name: "negative scale", target: "/render?scale=-1", wantStatus: http.StatusBadRequest, wantCode: "INVALID_SCALE"},
	}

	h := testServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("code = %q, want %q", body["code"], tt.wantCode)
			}
		})
	}
}

func TestRenderUsesCache(t *testing.T) {
	s := testServer()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	s.SetCache(c, "fingerprint", 0)
	h := s.Handler()

	first := get(t, h, "/render")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}

	// The cached entry must come back byte-identical, with its stored
	// content type.
	second := get(t, h, "/render")
	if second.Body.String() != first.Body.String() {
		t.Error("cached response differs from first render")
	}
	if ct := second.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("cached Content-Type = %q, want image/svg+xml", ct)
	}

	key := cache.Key("render", "fingerprint", "svg", "")
	e, hit, _ := c.Get(context.Background(), key)
	if !hit {
		t.Fatal("render was not stored in the cache")
	}
	if e.ContentType != "image/svg+xml" {
		t.Errorf("stored content type = %q, want image/svg+xml", e.ContentType)
	}
}

func TestRenderLengthMismatch(t *testing.T) {
	s := testServer(annotate.WithLabels([]string{"a", "b"}))
	rec := get(t, s.Handler(), "/render")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "LENGTH_MISMATCH") {
		t.Errorf("body = %s, want LENGTH_MISMATCH code", rec.Body.String())
	}
}
