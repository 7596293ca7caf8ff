package web

import "net/http"

// Router is a ServeMux that hands requests no pattern matches to a fallback.
type Router struct {
	mux      *http.ServeMux
	fallback http.Handler
}

// NewRouter creates a router that answers unmatched requests with 404
// until SetFallback is called.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers handler for pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers fn for pattern.
func (r *Router) HandleFunc(pattern string, fn http.HandlerFunc) {
	r.mux.HandleFunc(pattern, fn)
}

// SetFallback sets the handler for requests no pattern matches.
func (r *Router) SetFallback(fn http.HandlerFunc) {
	r.fallback = fn
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
