package http

import (
	"net/http"

	"github.com/charmbracelet/log"
)

// maxBodyBytes bounds snapshot and override bodies.
const maxBodyBytes = 1 << 20

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// paramsMiddleware handles common query parameters like 'verbose'. Each request
// gets its own logger in its context; 'verbose' lowers only that logger's level.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.Default().With("method", r.Method, "path", r.URL.Path)
		if r.URL.Query().Get("verbose") == "true" {
			logger.SetLevel(log.DebugLevel)
		}
		logger.Info("incoming request", "url", r.URL.String())
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context(), logger)))
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
