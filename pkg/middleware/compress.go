package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress gzips responses for clients that accept it. Small bodies are
// sent as is.
func Compress() Middleware {
	return func(next http.Handler) http.Handler {
		return gzhttp.GzipHandler(next)
	}
}
