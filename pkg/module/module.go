// Package module mounts independently built HTTP handlers under path prefixes,
// each with its own middleware stack.
package module

import (
	"net/http"
	"strings"

	"github.com/ddbb-bakery/pos/pkg/middleware"
)

// Module is a handler served beneath a prefix. An empty prefix mounts at the root.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module for handler at prefix.
func New(prefix string, handler http.Handler) *Module {
	return &Module{
		prefix:     strings.TrimRight(prefix, "/"),
		handler:    handler,
		middleware: middleware.New(),
	}
}

// Use adds middleware applied to this module only.
func (m *Module) Use(mw middleware.Middleware) {
	m.middleware.Use(mw)
}

// Prefix returns the mount prefix without a trailing slash.
func (m *Module) Prefix() string {
	return m.prefix
}

// Handler returns the module handler wrapped in its middleware.
// Paths it receives are relative to the prefix.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}
