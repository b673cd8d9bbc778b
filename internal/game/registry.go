package game

import (
	"strings"
	"sync"
)

// NormalizeRoomID canonicalizes a user-chosen room identifier; rooms are
// case-insensitive.
func NormalizeRoomID(roomID string) string {
	return strings.ToUpper(strings.TrimSpace(roomID))
}

// Registry maps room ids to live sessions, creating them on first join.
// Rooms are never evicted; an idle empty room is just a lobby waiting for
// players.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*Session
	factory func(roomID string) *Session
}

// NewRegistry builds a registry whose sessions come from factory, which
// receives the normalized room id.
func NewRegistry(factory func(roomID string) *Session) *Registry {
	return &Registry{
		rooms:   make(map[string]*Session),
		factory: factory,
	}
}

// GetOrCreate returns the session for roomID, creating it lazily.
func (r *Registry) GetOrCreate(roomID string) *Session {
	id := NormalizeRoomID(roomID)

	r.mu.RLock()
	session, ok := r.rooms[id]
	r.mu.RUnlock()
	if ok {
		return session
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.rooms[id]; ok {
		return session
	}
	session = r.factory(id)
	r.rooms[id] = session
	return session
}

// Get looks up an existing room without creating it.
func (r *Registry) Get(roomID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.rooms[NormalizeRoomID(roomID)]
	return session, ok
}
