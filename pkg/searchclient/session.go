package searchclient

import "sync"

// Session holds the caller's bearer token. The zero value is an anonymous
// session. A Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns a session carrying token.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear signs the session out.
func (s *Session) Clear() { s.SetToken("") }

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool { return s.Token() != "" }
