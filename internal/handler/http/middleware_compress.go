package http

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	compressionLevel = 5
	encodingBrotli   = "br"
)

// withCompression compresses JSON responses with brotli or gzip, whichever
// the client prefers in Accept-Encoding. brotli wins a tie.
func withCompression() func(http.Handler) http.Handler {
	compressor := middleware.NewCompressor(compressionLevel, "application/json")
	compressor.SetEncoder(encodingBrotli, func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})

	return compressor.Handler
}
