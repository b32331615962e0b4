package repository

import (
	"context"
	"time"

	"kiosk/internal/domain"
)

type Repositories struct {
	Specialist SpecialistRepository
	Session    SessionRepository
}

func NewRepositories(specialists SpecialistRepository, sessions SessionRepository) *Repositories {
	return &Repositories{
		Specialist: specialists,
		Session:    sessions,
	}
}

// SpecialistRepository is the source of the specialist catalog. It is read
// once at startup.
type SpecialistRepository interface {
	List(ctx context.Context) ([]domain.Specialist, error)
}

type SessionRepository interface {
	// Add stores the session and reports whether an older one was evicted to make room.
	Add(session *domain.Session) bool
	Get(id string) (*domain.Session, error)
	Delete(id string) bool
	// Sweep removes sessions last seen before the cutoff and returns their ids.
	Sweep(cutoff time.Time) []string
	Len() int
}
