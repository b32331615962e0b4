package service

import (
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/metrics"
)

type NavigationServiceImpl struct {
	metrics *metrics.KioskMetrics
	logger  *zap.Logger
}

func NewNavigationService(m *metrics.KioskMetrics, logger *zap.Logger) *NavigationServiceImpl {
	return &NavigationServiceImpl{
		metrics: m,
		logger:  logger,
	}
}

// Goto moves the session to screen unconditionally. The caller holds the session lock.
func (n *NavigationServiceImpl) Goto(s *domain.Session, screen domain.Screen) {
	from := s.Nav.Current

	if from == domain.ScreenIdentification && screen != domain.ScreenIdentification {
		if s.CancelVerification() {
			n.logger.Debug("verificação cancelada ao sair da identificação", zap.String("session", s.ID))
		}
	}

	s.Nav.Previous = from
	s.Nav.Current = screen

	if screen == domain.ScreenWelcome {
		s.ResetDraft()
	}

	n.metrics.ObserveTransition(string(from), string(screen))
}

// BackTarget resolves where the back affordance of the current screen leads.
func (n *NavigationServiceImpl) BackTarget(s *domain.Session) (domain.Screen, bool) {
	switch s.Nav.Current {
	case domain.ScreenConfirmation:
		if s.User.IsNewAppointment() {
			return domain.ScreenScheduling, true
		}
		return domain.ScreenIdentification, true
	case domain.ScreenProfile, domain.ScreenSpecialists, domain.ScreenFaq:
		return s.Nav.Previous, true
	case domain.ScreenIdentification, domain.ScreenReason:
		return domain.ScreenWelcome, true
	case domain.ScreenScheduling:
		return domain.ScreenReason, true
	case domain.ScreenPayment:
		return domain.ScreenConfirmation, true
	default:
		return "", false
	}
}

func (n *NavigationServiceImpl) Back(s *domain.Session) error {
	target, ok := n.BackTarget(s)
	if !ok {
		return domain.ErrActionNotAvailable
	}
	n.Goto(s, target)
	return nil
}

// Escape returns to the previous screen from anywhere but Welcome. Unlike
// Back it never looks at the booking context.
func (n *NavigationServiceImpl) Escape(s *domain.Session) bool {
	if s.Nav.Current == domain.ScreenWelcome {
		return false
	}
	n.Goto(s, s.Nav.Previous)
	return true
}
