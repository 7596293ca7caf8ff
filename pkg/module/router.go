package module

import "net/http"

// Router dispatches to mounted modules by longest prefix and to native routes.
type Router struct {
	mux     *http.ServeMux
	modules []*Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a route that bypasses every module, e.g. "GET /healthz".
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers m beneath its prefix.
func (r *Router) Mount(m *Module) {
	r.modules = append(r.modules, m)
	handler := m.Handler()

	if m.prefix == "" {
		r.mux.Handle("/", handler)
		return
	}

	stripped := http.StripPrefix(m.prefix, handler)
	r.mux.Handle(m.prefix, stripped)
	r.mux.Handle(m.prefix+"/", stripped)
}

// Modules returns the mounted modules in mount order.
func (r *Router) Modules() []*Module {
	return r.modules
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
