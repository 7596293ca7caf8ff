package session

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/pkg/lifecycle"
	"github.com/ddbb-bakery/pos/pkg/shell"
	"github.com/google/uuid"
)

// CartFactory creates an empty cart for a new session.
type CartFactory func() *cart.Cart

// Store tracks live sessions by the id in their cookie.
type Store struct {
	table   *shell.Table
	newCart CartFactory
	cfg     Config
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty store whose sessions render from table.
func NewStore(table *shell.Table, newCart CartFactory, cfg Config, logger *slog.Logger) *Store {
	return &Store{
		table:    table,
		newCart:  newCart,
		cfg:      cfg,
		logger:   logger.With("system", "session"),
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// SetClock replaces the time source used for expiry.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Resolve returns the caller's live session, creating one and setting its
// cookie when the request carries none.
func (s *Store) Resolve(w http.ResponseWriter, r *http.Request) (*Session, error) {
	now := s.now()

	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if sess, ok := s.lookup(id, now); ok {
				return sess, nil
			}
		}
	}

	id := uuid.New()
	sess, err := newSession(id, s.table, s.newCart(), s.logger, now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Debug("session created", "id", id)
	return sess, nil
}

// Get returns the session with id if it is live.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// lookup touches the session under the store lock so Sweep cannot expire it
// between the lookup and the touch.
func (s *Store) lookup(id uuid.UUID, now time.Time) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if ok {
		sess.touch(now)
	}
	return sess, ok
}

// Cart returns the caller's cart.
func (s *Store) Cart(w http.ResponseWriter, r *http.Request) *cart.Cart {
	sess, err := s.Resolve(w, r)
	if err != nil {
		s.logger.Error("resolve session", "error", err)
		return s.newCart()
	}
	return sess.Cart
}

// Checkout returns the caller's session id and cart.
func (s *Store) Checkout(w http.ResponseWriter, r *http.Request) (uuid.UUID, *cart.Cart) {
	sess, err := s.Resolve(w, r)
	if err != nil {
		s.logger.Error("resolve session", "error", err)
		return uuid.Nil, s.newCart()
	}
	return sess.ID, sess.Cart
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the configured TTL, unmounting
// their views, and returns how many were removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.cfg.TTLDuration())

	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
	}
	if len(expired) > 0 {
		s.logger.Info("sessions expired", "count", len(expired), "remaining", s.Len())
	}
	return len(expired)
}

// Close unmounts every session and empties the store.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
	s.logger.Info("sessions closed", "count", len(sessions))
}

// Start sweeps on the configured interval until the lifecycle shuts down.
// Live sessions stay mounted until Close.
func (s *Store) Start(lc *lifecycle.Coordinator) {
	interval := s.cfg.SweepIntervalDuration()

	lc.OnShutdown(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep(s.now())
			case <-lc.Context().Done():
				s.logger.Info("session sweeper stopped", "remaining", s.Len())
				return
			}
		}
	})

	s.logger.Info("session sweeper started", "interval", interval, "ttl", s.cfg.TTL)
}
