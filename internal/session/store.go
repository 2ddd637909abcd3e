package session

import (
	"sync"

	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/google/uuid"
)

// Store maps opaque session tokens to sanitized user records. State is
// process-local: a horizontally scaled deployment needs sticky sessions or an
// external store behind the same interface.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]types.SessionUser
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]types.SessionUser),
	}
}

// Create issues a fresh token for the given user.
func (s *Store) Create(user types.SessionUser) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()

	return token
}

func (s *Store) Get(token string) (types.SessionUser, bool) {
	s.mu.RLock()
	user, ok := s.sessions[token]
	s.mu.RUnlock()

	return user, ok
}

func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
