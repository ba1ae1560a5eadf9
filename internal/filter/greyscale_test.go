// internal/filter/greyscale_test.go
package filter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func redSquarePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestGreyscaleConvertsPNG(t *testing.T) {
	body := redSquarePNG(t)

	req := httptest.NewRequest(http.MethodPost, "/greyscale", bytes.NewReader(body))
	req.Header.Set("Content-Type", "image/png")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	out, format, err := image.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not an image: %v", err)
	}
	if format != "png" {
		t.Fatalf("format changed to %q", format)
	}

	r, g, b, _ := out.At(1, 1).RGBA()
	if r != g || g != b {
		t.Fatalf("pixel not grey: r=%d g=%d b=%d", r, g, b)
	}
}

func TestGreyscaleRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/greyscale", bytes.NewReader([]byte("not an image")))
	req.Header.Set("Content-Type", "image/png")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHealthcheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
