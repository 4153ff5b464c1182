package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions is a registry of per-session carts. A cart is created at first
// use of a session id and destroyed on Drop or explicit clear; there is no
// cross-session sharing.
type Sessions struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewSessions returns an empty registry.
func NewSessions() *Sessions {
	return &Sessions{stores: make(map[string]*Store)}
}

// NewSessionID issues an opaque session identifier.
func (r *Sessions) NewSessionID() string {
	return uuid.NewString()
}

// Get returns the cart for the session id, creating it on first use.
func (r *Sessions) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[sessionID]; ok {
		return s
	}
	s := NewStore()
	r.stores[sessionID] = s
	return s
}

// Drop removes a session's cart entirely.
func (r *Sessions) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}
