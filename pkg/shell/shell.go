package shell

import (
	"log/slog"
	"sync"
)

// Shell selects exactly one view from its table for the current location.
type Shell struct {
	table    *Table
	logger   *slog.Logger
	location *Location

	mu      sync.Mutex
	active  View
	pattern string
}

// New creates an unmounted shell over table.
func New(table *Table, logger *slog.Logger) *Shell {
	return &Shell{
		table:  table,
		logger: logger.With("system", "shell"),
	}
}

// Mount establishes the navigation context at initial and mounts the matching view.
func (s *Shell) Mount(initial string) error {
	s.mu.Lock()
	if s.location != nil {
		s.mu.Unlock()
		return ErrMounted
	}
	loc := NewLocation(initial)
	loc.Subscribe(s.onChange)
	s.location = loc
	s.mu.Unlock()

	loc.enter(func() { s.swap(initial) })
	return nil
}

// Navigator returns the router context, or nil before Mount.
func (s *Shell) Navigator() Navigator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		return nil
	}
	return s.location
}

// Render returns the view mounted for the current location, or nil when
// the location matches no route.
func (s *Shell) Render() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Pattern returns the pattern of the active route, or "" when nothing is mounted.
func (s *Shell) Pattern() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern
}

// Table returns the route table the shell renders from.
func (s *Shell) Table() *Table {
	return s.table
}

// Unmount closes the location and unmounts the active view.
func (s *Shell) Unmount() {
	s.mu.Lock()
	loc := s.location
	prev := s.active
	s.active = nil
	s.pattern = ""
	s.mu.Unlock()

	if loc != nil {
		loc.Close()
	}
	if u, ok := prev.(Unmounter); ok {
		u.Unmount()
	}
}

func (s *Shell) onChange(from, to string) {
	s.logger.Debug("navigate", "from", from, "to", to)
	s.swap(to)
}

func (s *Shell) swap(path string) {
	s.mu.Lock()
	prev := s.active
	loc := s.location

	route, ok := s.table.Match(path)
	var next View
	if ok {
		next = route.View()
	}
	s.active = next
	s.pattern = route.Pattern
	s.mu.Unlock()

	if u, ok := prev.(Unmounter); ok {
		u.Unmount()
	}

	if next == nil {
		s.logger.Debug("no route", "path", path)
		return
	}
	if m, ok := next.(Mounter); ok {
		m.Mount(loc)
	}
}
