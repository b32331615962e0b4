package repository

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"kiosk/internal/domain"
)

// SessionLRURepo keeps kiosk sessions in memory, bounded by capacity. The
// least recently used session is evicted when a new one does not fit.
type SessionLRURepo struct {
	cache *lru.Cache[string, *domain.Session]
}

// NewSessionLRURepository builds the store. onEvict runs for every session
// leaving the store, whether evicted, deleted or swept.
func NewSessionLRURepository(capacity int, onEvict func(*domain.Session)) (*SessionLRURepo, error) {
	cache, err := lru.NewWithEvict[string, *domain.Session](capacity, func(_ string, s *domain.Session) {
		s.Lock()
		s.CancelVerification()
		s.Unlock()
		if onEvict != nil {
			onEvict(s)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cache de sessões: %w", err)
	}

	return &SessionLRURepo{cache: cache}, nil
}

func (r *SessionLRURepo) Add(session *domain.Session) bool {
	return r.cache.Add(session.ID, session)
}

func (r *SessionLRURepo) Get(id string) (*domain.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionLRURepo) Delete(id string) bool {
	return r.cache.Remove(id)
}

func (r *SessionLRURepo) Sweep(cutoff time.Time) []string {
	var swept []string
	for _, id := range r.cache.Keys() {
		s, ok := r.cache.Peek(id)
		if !ok {
			continue
		}

		s.Lock()
		idle := s.LastSeen().Before(cutoff)
		s.Unlock()

		if idle && r.cache.Remove(id) {
			swept = append(swept, id)
		}
	}
	return swept
}

func (r *SessionLRURepo) Len() int {
	return r.cache.Len()
}
