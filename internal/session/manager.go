package session

import (
	"sync"
	"time"
)

// Manager serializes message processing per peer so that a burst of button
// presses from one user is answered in order, while different users are
// handled in parallel.
type Manager struct {
	mu      sync.Mutex
	mutexes map[int64]*peerLock
}

type peerLock struct {
	mu       sync.Mutex
	lastUsed time.Time
}

func NewManager() *Manager {
	return &Manager{
		mutexes: make(map[int64]*peerLock),
	}
}

// WithLock executes fn while holding the per-peer mutex.
func (m *Manager) WithLock(peerID int64, fn func()) {
	m.mu.Lock()
	pl, ok := m.mutexes[peerID]
	if !ok {
		pl = &peerLock{}
		m.mutexes[peerID] = pl
	}
	pl.lastUsed = time.Now()
	m.mu.Unlock()

	pl.mu.Lock()
	defer pl.mu.Unlock()
	fn()
}

// Cleanup removes locks not used within maxAge to prevent memory leaks.
func (m *Manager) Cleanup(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for peerID, pl := range m.mutexes {
		if now.Sub(pl.lastUsed) > maxAge {
			delete(m.mutexes, peerID)
		}
	}
}
