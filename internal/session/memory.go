package session

import "sync"

// Memory is an in-process session holder. The zero value is logged out.
type Memory struct {
	mu      sync.RWMutex
	token   string
	isAdmin bool
}

// NewMemory returns a Memory already holding token.
func NewMemory(token string, isAdmin bool) *Memory {
	return &Memory{token: token, isAdmin: isAdmin}
}

// CurrentToken returns the held token, or "" when logged out.
func (m *Memory) CurrentToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAdmin reports the admin flag from the last LogIn.
func (m *Memory) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isAdmin
}

// LogIn replaces the held token and admin flag.
func (m *Memory) LogIn(token string, isAdmin bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.isAdmin = isAdmin
}

// LogOut clears the session.
func (m *Memory) LogOut() {
	m.LogIn("", false)
}

// LoggedIn reports whether a token is held.
func (m *Memory) LoggedIn() bool {
	return m.CurrentToken() != ""
}
