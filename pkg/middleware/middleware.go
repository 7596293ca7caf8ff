// Package middleware provides composable HTTP middleware.
package middleware

import "net/http"

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// System is an ordered middleware stack.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	mws []Middleware
}

// New creates an empty stack.
func New() System {
	return &stack{}
}

// Use appends mw. The first registered middleware is the outermost.
func (s *stack) Use(mw Middleware) {
	s.mws = append(s.mws, mw)
}

// Apply wraps handler with the registered middleware.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.mws) - 1; i >= 0; i-- {
		handler = s.mws[i](handler)
	}
	return handler
}
