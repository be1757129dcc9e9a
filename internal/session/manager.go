package session

import "sync"

// Manager owns the live sessions, one per donor. Sessions are created on
// first use and live until the process exits; there are no ambient
// singletons, the manager is constructed explicitly at startup.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the donor's session, creating it on first use.
func (m *Manager) Get(donorID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[donorID]
	if !ok {
		s = New(donorID)
		m.sessions[donorID] = s
	}
	return s
}
