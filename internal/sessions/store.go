package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homeseek/backend/internal/models"
)

// DefaultTTL is the sliding inactivity window after which a session is
// considered expired.
const DefaultTTL = 48 * time.Hour

var (
	// ErrNotFound means the token is unknown to the store.
	ErrNotFound = errors.New("invalid session")
	// ErrExpired means the token was known but idle past the TTL; the
	// entry is evicted, so subsequent lookups fail with ErrNotFound.
	ErrExpired = errors.New("session expired")
)

// Store owns every live session for the process. Sessions are not
// persisted: a restart invalidates all of them, which is an accepted
// limitation. The lock guards only map access, never I/O.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]models.Session
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

// Create mints a fresh random token for the user and records the
// session. The returned session is a copy.
func (s *Store) Create(user models.UserData) models.Session {
	sess := models.Session{
		ID:         uuid.NewString(),
		UserData:   user,
		LastActive: s.now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Resolve looks up the token, enforcing the sliding expiry. On success
// the last-active timestamp is refreshed and a copy of the session is
// returned.
func (s *Store) Resolve(token string) (models.Session, error) {
	now := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if now.Sub(sess.LastActive) >= s.ttl {
		delete(s.sessions, token)
		return models.Session{}, ErrExpired
	}

	sess.LastActive = now
	s.sessions[token] = sess
	return sess, nil
}

// Delete removes the token. Unconditional and idempotent: deleting an
// absent token is not an error.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
