package shell

import "fmt"

// View is a renderable page. The shell only needs its name; rendering is left
// to the transport that owns the shell.
type View interface {
	Name() string
}

// Mounter is implemented by views that need the navigator when they become active.
type Mounter interface {
	Mount(nav Navigator)
}

// Unmounter is implemented by views that release state when they stop being active.
type Unmounter interface {
	Unmount()
}

// Factory builds a fresh view instance each time its route becomes active.
type Factory func() View

// Route associates an exact path with the view responsible for it.
type Route struct {
	Pattern string
	View    Factory
}

// Table is the immutable, ordered set of routes for an application.
type Table struct {
	routes []Route
	index  map[string]int
}

// NewTable builds a table from routes in the given order.
// Patterns must be non-empty and unique.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if r.Pattern == "" {
			return nil, ErrEmptyPattern
		}
		if r.View == nil {
			return nil, fmt.Errorf("%s: %w", r.Pattern, ErrNilView)
		}
		if _, ok := t.index[r.Pattern]; ok {
			return nil, fmt.Errorf("%s: %w", r.Pattern, ErrDuplicatePattern)
		}
		t.index[r.Pattern] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// MustTable is like NewTable but panics on an invalid route set.
// Intended for tables declared as static data.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the route whose pattern equals path exactly.
func (t *Table) Match(path string) (Route, bool) {
	i, ok := t.index[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Resolve builds a view for path, or returns nil when no route matches.
func (t *Table) Resolve(path string) View {
	r, ok := t.Match(path)
	if !ok {
		return nil
	}
	return r.View()
}

// Routes returns a copy of the routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Patterns returns the registered patterns in registration order.
func (t *Table) Patterns() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Pattern
	}
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}
