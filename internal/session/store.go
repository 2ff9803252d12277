package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	sess     *Session
	lastSeen time.Time
}

// Store is the in-memory session registry for the HTTP front end. State
// lives for the process lifetime only; idle sessions are evicted after the
// TTL by a janitor goroutine.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	now      func() time.Time
}

// NewStore builds a registry evicting sessions idle longer than ttl.
// A non-positive ttl disables eviction.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create registers a fresh session and returns its id.
func (st *Store) Create() (string, *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := uuid.NewString()
	s := New()
	st.sessions[id] = &entry{sess: s, lastSeen: st.now()}
	return id, s
}

// Get looks up a session by id and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = st.now()
	return e.sess, true
}

// Remove drops a session. Removing an unknown id is a no-op.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle past the TTL and reports how many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.ttl <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.ttl)
	n := 0
	for id, e := range st.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is canceled.
func (st *Store) Run(ctx context.Context) {
	if st.ttl <= 0 {
		return
	}
	t := time.NewTicker(st.ttl / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			st.Sweep()
		}
	}
}
