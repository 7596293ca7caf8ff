package shell

import "sync"

// Navigator is the handle views receive to read and change the current location.
type Navigator interface {
	Path() string
	Navigate(path string)
}

// ChangeFunc observes a location change.
type ChangeFunc func(from, to string)

// Location owns the current path of one browsing session.
//
// Navigation requests are queued and applied one at a time, so a listener that
// navigates while handling a change sees its request applied after the current
// change completes. Navigating to the current path is not a change.
type Location struct {
	mu          sync.Mutex
	path        string
	pending     []string
	dispatching bool
	closed      bool
	listeners   []ChangeFunc
}

// NewLocation creates a location positioned at initial.
func NewLocation(initial string) *Location {
	return &Location{path: initial}
}

// Path returns the current path.
func (l *Location) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Subscribe registers fn to be called after every change.
func (l *Location) Subscribe(fn ChangeFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Navigate requests a change to path. It is a no-op once the location is closed.
func (l *Location) Navigate(path string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}

	l.pending = append(l.pending, path)
	if l.dispatching {
		l.mu.Unlock()
		return
	}

	l.dispatching = true
	l.drain()
}

// enter runs fn as the first change of the location. Navigation requested
// while fn runs is queued and applied after it returns.
func (l *Location) enter(fn func()) {
	l.mu.Lock()
	l.dispatching = true
	l.mu.Unlock()

	fn()

	l.mu.Lock()
	l.drain()
}

// drain applies pending changes. It is called with mu held and dispatching
// set, and returns with mu released.
func (l *Location) drain() {
	for len(l.pending) > 0 && !l.closed {
		next := l.pending[0]
		l.pending = l.pending[1:]
		if next == l.path {
			continue
		}

		from := l.path
		l.path = next
		listeners := l.listeners

		l.mu.Unlock()
		for _, fn := range listeners {
			fn(from, next)
		}
		l.mu.Lock()
	}
	l.pending = nil
	l.dispatching = false
	l.mu.Unlock()
}

// Close stops the location. Pending and later navigation requests are dropped.
func (l *Location) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.pending = nil
	l.listeners = nil
}

// Closed reports whether Close has been called.
func (l *Location) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
