// Package routes declares HTTP routes as data and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/ddbb-bakery/pos/pkg/openapi"
)

// Route is a single method + pattern binding.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group is a set of routes under a common prefix. Children inherit the prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds every route in groups to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, "", g)
	}
}

func registerGroup(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		registerGroup(mux, prefix, child)
	}
}

// Describe adds every documented route in groups to spec. Operations
// without tags inherit the tags of their group.
func Describe(spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		describeGroup(spec, "", g)
	}
}

func describeGroup(spec *openapi.Spec, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+r.Pattern, r.Method, op)
	}
	for _, child := range g.Children {
		describeGroup(spec, prefix, child)
	}
}
