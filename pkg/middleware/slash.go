package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// TrimSlash redirects "/path/" to "/path", keeping the query. "/" is left alone.
// The redirect target is built from the original request URI so it stays
// correct behind http.StripPrefix.
func TrimSlash() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if len(path) <= 1 || !strings.HasSuffix(path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			original := path
			if u, err := url.ParseRequestURI(r.RequestURI); err == nil && u.Path != "" {
				original = u.Path
			}

			target := strings.TrimRight(original, "/")
			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
