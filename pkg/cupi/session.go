package cupi

import (
	"sync"
	"time"
)

// sessionTracker records whether the server has handed back a session
// cookie that later requests are riding on. It exists so a 401 can be
// told apart from bad credentials: a 401 on an active session means the
// cookie expired server-side and the call is worth one retry.
type sessionTracker struct {
	mu            sync.RWMutex
	established   bool
	establishedAt time.Time
}

func newSessionTracker() *sessionTracker {
	return &sessionTracker{}
}

// markEstablished records a successful authenticated round trip.
func (s *sessionTracker) markEstablished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.established {
		s.established = true
		s.establishedAt = time.Now()
	}
}

// active reports whether a server session is being reused.
func (s *sessionTracker) active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.established
}

// reset forgets the tracked session.
func (s *sessionTracker) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.established = false
	s.establishedAt = time.Time{}
}

// ActiveSession reports whether the client currently holds a reusable
// server session, and when it was established.
func (c *Client) ActiveSession() (time.Time, bool) {
	c.session.mu.RLock()
	defer c.session.mu.RUnlock()

	return c.session.establishedAt, c.session.established
}

// ResetSession drops the current session and cookies. The next request
// will authenticate from scratch with basic auth.
func (c *Client) ResetSession() {
	c.resetSession()
}
