package domain

import (
	"context"
	"sync"
	"time"
)

// Session is the state owned by one kiosk terminal. Callers hold Lock while
// reading or mutating any field.
type Session struct {
	mu sync.Mutex

	ID        string
	CreatedAt time.Time
	Nav       NavigationState
	Draft     AppointmentDraft
	User      *UserData
	Theme     Theme

	lastSeen time.Time
	pending  *pendingVerification
}

type pendingVerification struct {
	id     string
	cancel context.CancelFunc
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Nav:       NavigationState{Current: ScreenWelcome, Previous: ScreenWelcome},
		lastSeen:  now,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) Touch(now time.Time) {
	s.lastSeen = now
}

func (s *Session) LastSeen() time.Time {
	return s.lastSeen
}

// BeginVerification records the in-flight verification. It returns false if
// another one is already pending.
func (s *Session) BeginVerification(id string, cancel context.CancelFunc) bool {
	if s.pending != nil {
		return false
	}
	s.pending = &pendingVerification{id: id, cancel: cancel}
	return true
}

// EndVerification clears the pending verification if it is still the one
// identified by id. A false result means the verification was superseded.
func (s *Session) EndVerification(id string) bool {
	if s.pending == nil || s.pending.id != id {
		return false
	}
	s.pending.cancel()
	s.pending = nil
	return true
}

// CancelVerification aborts the pending verification, if any.
func (s *Session) CancelVerification() bool {
	if s.pending == nil {
		return false
	}
	s.pending.cancel()
	s.pending = nil
	return true
}

func (s *Session) VerificationPending() bool {
	return s.pending != nil
}

// ResetDraft discards the appointment being built.
func (s *Session) ResetDraft() {
	s.Draft = AppointmentDraft{}
}

// SessionTicket is handed to a terminal when it opens a session.
type SessionTicket struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Frame     Frame  `json:"frame"`
}
