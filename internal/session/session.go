// Package session keeps one navigation shell and one cart per browser.
//
// Each session owns its own Location, so two browsers navigating at once
// never see each other's current path. The route table is shared.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/pkg/shell"
	"github.com/google/uuid"
)

// Session is one customer at the counter.
type Session struct {
	ID   uuid.UUID
	Cart *cart.Cart

	shell *shell.Shell

	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(id uuid.UUID, table *shell.Table, c *cart.Cart, logger *slog.Logger, now time.Time) (*Session, error) {
	sh := shell.New(table, logger.With("session", id))
	if err := sh.Mount("/"); err != nil {
		return nil, err
	}
	return &Session{
		ID:       id,
		Cart:     c,
		shell:    sh,
		lastSeen: now,
	}, nil
}

// Navigate moves the session to path and returns the view now mounted and
// the location it settled on. The view is nil when path matches no route.
func (s *Session) Navigate(path string) (shell.View, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nav := s.shell.Navigator()
	if nav == nil {
		return nil, ""
	}
	nav.Navigate(path)
	return s.shell.Render(), nav.Path()
}

// Current returns the mounted view and the location without navigating.
func (s *Session) Current() (shell.View, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Render(), s.path()
}

// Path returns the session's current location.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path()
}

// View returns the currently mounted view.
func (s *Session) View() shell.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Render()
}

func (s *Session) path() string {
	nav := s.shell.Navigator()
	if nav == nil {
		return ""
	}
	return nav.Path()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shell.Unmount()
}
