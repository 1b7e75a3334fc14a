package tutor

import "sync"

// Manager serializes turn processing per session. One user turn is
// fully handled before the next one for the same session begins;
// different sessions proceed in parallel.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{locks: make(map[string]*sync.Mutex)}
}

// Do runs fn while holding the session's lock. Racing calls for the
// same session ID queue up; duplicate requests can never mutate one
// session concurrently.
func (m *Manager) Do(sessionID string, fn func() error) error {
	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (m *Manager) lockFor(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}

// Release drops the lock entry for a finished session.
func (m *Manager) Release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, sessionID)
}
