// internal/filter/greyscale.go

// Package filter implements the photo-filter service: an opaque image
// transform the upload pipeline calls between ingest and storage.
package filter

import (
	"bytes"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// maxBody caps inbound image payloads.
const maxBody = 20 << 20

// NewRouter builds the photo-filter service router.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", welcome).Methods(http.MethodGet)
	r.HandleFunc("/healthcheck", healthCheck).Methods(http.MethodGet)
	r.HandleFunc("/greyscale", Greyscale).Methods(http.MethodPost)
	return r
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, "Welcome to the photo-filter API")
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, `"OK"`)
}

// Greyscale reads an image body, converts it to greyscale and writes it back
// in its original format.
func Greyscale(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		log.Error().Err(err).Msg("reading image body failed")
		http.Error(w, "can't read body", http.StatusBadRequest)
		return
	}

	reader := bytes.NewReader(body)
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		log.Error().Err(err).Msg("detecting image format failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reader.Seek(0, io.SeekStart)
	decoded, err := imaging.Decode(reader)
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("decoding image failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	grey := imaging.Grayscale(decoded)

	encoding, ok := encodings[format]
	if !ok {
		http.Error(w, "Unsupported file type", http.StatusUnsupportedMediaType)
		return
	}

	w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
	if err := imaging.Encode(w, grey, encoding); err != nil {
		log.Error().Err(err).Str("format", format).Msg("encoding image failed")
	}
}

var encodings = map[string]imaging.Format{
	"jpeg": imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
	"bmp":  imaging.BMP,
}
