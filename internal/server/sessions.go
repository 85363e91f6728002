package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 2 * time.Hour

type sessionEntry struct {
	session    *types.Session
	lastAccess time.Time
}

// SessionStore keeps one résumé session per client, keyed by a random id.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewSessionStore creates an empty store. A non-positive ttl uses DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// Create starts a new empty session.
func (s *SessionStore) Create() (string, *types.Session) {
	id := uuid.New()
	entry := &sessionEntry{session: &types.Session{}, lastAccess: s.now()}

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	return id.String(), entry.session
}

// Get returns the session for id and refreshes its expiry.
func (s *SessionStore) Get(id string) (*types.Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, &ErrSessionNotFound{ID: id}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[parsed]
	if !ok || s.now().Sub(entry.lastAccess) > s.ttl {
		delete(s.sessions, parsed)
		return nil, &ErrSessionNotFound{ID: id}
	}
	entry.lastAccess = s.now()
	return entry.session, nil
}

// GetOrCreate returns the session for id, or a new one when id is empty.
func (s *SessionStore) GetOrCreate(id string) (string, *types.Session, error) {
	if id == "" {
		newID, session := s.Create()
		return newID, session, nil
	}
	session, err := s.Get(id)
	if err != nil {
		return "", nil, err
	}
	return id, session, nil
}

// Prune drops expired sessions and returns how many were dropped.
func (s *SessionStore) Prune() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.sessions {
		if entry.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
