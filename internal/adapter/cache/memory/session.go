package memory

import (
	"context"
	"sync"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/service"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

var _ service.SessionStorage = new(sessionStorage)

// sessionStorage keeps sessions in process memory; they are lost on restart.
type sessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewSessionStorage() *sessionStorage {
	return &sessionStorage{sessions: make(map[string]entity.Session)}
}

func (s *sessionStorage) CreateSession(ctx context.Context, session entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return errors.NewDomainError(errors.ErrAlreadyExists, "session %s", session.ID)
	}
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *sessionStorage) GetSession(ctx context.Context, id string) (entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return entity.Session{}, errors.NewDomainError(errors.ErrNoDataFound, "session")
	}
	return cloneSession(session), nil
}

func (s *sessionStorage) UpdateSession(ctx context.Context, session entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *sessionStorage) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}
	delete(s.sessions, id)
	return nil
}

func (s *sessionStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// cloneSession copies the screens map so callers never share it with the store.
func cloneSession(session entity.Session) entity.Session {
	if session.Screens == nil {
		return session
	}
	screens := make(map[string]entity.ScreenSnapshot, len(session.Screens))
	for k, v := range session.Screens {
		screens[k] = v
	}
	session.Screens = screens
	return session
}
