package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/metrics"
	"kiosk/internal/repository"
	"kiosk/pkg/auth"
	"kiosk/pkg/validator"
)

// Renderer displays frames on the terminal owning the session. Implementations
// must not block.
type Renderer interface {
	Render(frame domain.Frame)
}

// EffectsPort receives cosmetic notifications. Failures never reach the caller.
type EffectsPort interface {
	Notify(sessionID string, kind domain.EffectKind)
}

type NopRenderer struct{}

func (NopRenderer) Render(domain.Frame) {}

type NopEffects struct{}

func (NopEffects) Notify(string, domain.EffectKind) {}

type Verifier interface {
	VerifyIdentity(ctx context.Context, req VerificationRequest) (*Verification, error)
}

type KioskServiceImpl struct {
	sessions  repository.SessionRepository
	nav       *NavigationServiceImpl
	builder   *AppointmentBuilderImpl
	calendar  *AvailabilityCalendarImpl
	presenter *Presenter
	verifier  Verifier
	tokens    *auth.TokenManager
	fp        *auth.Fingerprinter
	renderer  Renderer
	effects   EffectsPort
	metrics   *metrics.KioskMetrics
	idleTTL   time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

type KioskDeps struct {
	Sessions  repository.SessionRepository
	Nav       *NavigationServiceImpl
	Builder   *AppointmentBuilderImpl
	Calendar  *AvailabilityCalendarImpl
	Presenter *Presenter
	Verifier  Verifier
	Tokens    *auth.TokenManager
	Fp        *auth.Fingerprinter
	Renderer  Renderer
	Effects   EffectsPort
	Metrics   *metrics.KioskMetrics
	IdleTTL   time.Duration
	Now       func() time.Time
	Logger    *zap.Logger
}

func NewKioskService(deps KioskDeps) *KioskServiceImpl {
	if deps.Renderer == nil {
		deps.Renderer = NopRenderer{}
	}
	if deps.Effects == nil {
		deps.Effects = NopEffects{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &KioskServiceImpl{
		sessions:  deps.Sessions,
		nav:       deps.Nav,
		builder:   deps.Builder,
		calendar:  deps.Calendar,
		presenter: deps.Presenter,
		verifier:  deps.Verifier,
		tokens:    deps.Tokens,
		fp:        deps.Fp,
		renderer:  deps.Renderer,
		effects:   deps.Effects,
		metrics:   deps.Metrics,
		idleTTL:   deps.IdleTTL,
		now:       deps.Now,
		logger:    deps.Logger,
	}
}

func (s *KioskServiceImpl) Open(ctx context.Context) (*domain.SessionTicket, error) {
	now := s.now()
	sess := domain.NewSession(uuid.New().String(), now)

	token, err := s.tokens.Issue(sess.ID, now)
	if err != nil {
		s.logger.Error("erro ao emitir token de sessão", zap.Error(err))
		return nil, fmt.Errorf("erro ao abrir sessão: %w", err)
	}

	if s.sessions.Add(sess) {
		s.logger.Warn("sessão mais antiga descartada por falta de espaço")
	}
	s.metrics.SetActiveSessions(s.sessions.Len())

	sess.Lock()
	frame := s.presenter.Frame(ctx, sess, nil)
	sess.Unlock()

	s.logger.Info("sessão aberta", zap.String("session", sess.ID))

	return &domain.SessionTicket{
		Token:     token,
		SessionID: sess.ID,
		Frame:     frame,
	}, nil
}

// ResolveToken returns the id of the live session the token was issued for.
func (s *KioskServiceImpl) ResolveToken(token string) (string, error) {
	id, err := s.tokens.Parse(token, s.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionNotFound, err)
	}
	if _, err := s.sessions.Get(id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *KioskServiceImpl) Frame(ctx context.Context, sessionID string) (*domain.Frame, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	frame := s.presenter.Frame(ctx, sess, nil)
	return &frame, nil
}

func (s *KioskServiceImpl) Close(ctx context.Context, sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		return domain.ErrSessionNotFound
	}
	s.metrics.SetActiveSessions(s.sessions.Len())
	s.logger.Info("sessão encerrada", zap.String("session", sessionID))
	return nil
}

// SweepIdle drops sessions that have not seen an event within the idle TTL.
func (s *KioskServiceImpl) SweepIdle(ctx context.Context) int {
	swept := s.sessions.Sweep(s.now().Add(-s.idleTTL))
	if len(swept) > 0 {
		s.logger.Info("sessões inativas removidas", zap.Int("count", len(swept)))
	}
	s.metrics.SetActiveSessions(s.sessions.Len())
	return len(swept)
}

// Dispatch applies one UI event to the session and returns the frame to
// display. Recoverable user errors come back together with a frame carrying
// the notice.
func (s *KioskServiceImpl) Dispatch(ctx context.Context, sessionID string, event domain.Event) (*domain.Frame, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if event.Action == domain.ActionSubmitIdentification {
		frame, err := s.submitIdentification(ctx, sess, event.Payload)
		s.observeEvent(event.Action, err)
		return frame, err
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Touch(s.now())

	if !s.presenter.Allows(sess, event.Action) {
		s.observeEvent(event.Action, domain.ErrActionNotAvailable)
		frame := s.presenter.Frame(ctx, sess, nil)
		return &frame, fmt.Errorf("%w: %s em %s", domain.ErrActionNotAvailable, event.Action, sess.Nav.Current)
	}

	effect, notice, err := s.apply(sess, event)
	s.observeEvent(event.Action, err)

	frame := s.presenter.Frame(ctx, sess, notice)
	if err == nil || notice != nil {
		s.renderer.Render(frame)
	}
	if err == nil {
		s.notify(sess.ID, effect)
	}
	return &frame, err
}

func (s *KioskServiceImpl) apply(sess *domain.Session, event domain.Event) (domain.EffectKind, *domain.Notice, error) {
	p := event.Payload

	switch event.Action {
	case domain.ActionStartCheckIn:
		s.nav.Goto(sess, domain.ScreenIdentification)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionStartScheduling:
		s.nav.Goto(sess, domain.ScreenReason)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionOpenFaq:
		s.nav.Goto(sess, domain.ScreenFaq)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionSetTheme:
		if p.Theme == nil || !p.Theme.IsValid() {
			return "", nil, fmt.Errorf("%w: tema desconhecido", domain.ErrSelectionUnavailable)
		}
		sess.Theme = *p.Theme
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionBack:
		if err := s.nav.Back(sess); err != nil {
			return "", nil, err
		}
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionEscape:
		s.nav.Escape(sess)
		return "", nil, nil

	case domain.ActionSelectReason:
		if !domain.IsKnownReason(p.Reason) {
			return "", nil, fmt.Errorf("%w: motivo %q", domain.ErrSelectionUnavailable, p.Reason)
		}
		s.builder.SetReason(&sess.Draft, p.Reason)
		s.nav.Goto(sess, domain.ScreenScheduling)
		return "", nil, nil

	case domain.ActionSelectSpecialist:
		if !s.offersSpecialist(sess, p.SpecialistID) {
			return "", nil, fmt.Errorf("%w: especialista %d", domain.ErrSelectionUnavailable, p.SpecialistID)
		}
		if err := s.builder.SelectSpecialist(&sess.Draft, p.SpecialistID); err != nil {
			return "", nil, err
		}
		return domain.EffectSelectionMade, nil, nil

	case domain.ActionSelectDate:
		specialist, err := s.selectedSpecialist(sess)
		if err != nil {
			return "", nil, err
		}
		if !s.calendar.IsBookable(specialist, p.Date) {
			return "", nil, fmt.Errorf("%w: data %q", domain.ErrSelectionUnavailable, p.Date)
		}
		s.builder.SelectDate(&sess.Draft, p.Date)
		return domain.EffectSelectionMade, nil, nil

	case domain.ActionSelectTime:
		specialist, err := s.selectedSpecialist(sess)
		if err != nil {
			return "", nil, err
		}
		if !specialist.OffersHour(p.Time) {
			return "", nil, fmt.Errorf("%w: horário %q", domain.ErrSelectionUnavailable, p.Time)
		}
		s.builder.SelectTime(&sess.Draft, p.Time)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionConfirmSchedule:
		finalized, err := s.builder.Finalize(sess.Draft)
		if errors.Is(err, domain.ErrMissingSelection) {
			return "", s.presenter.BlockingNotice(domain.ErrMissingSelection.Error()), err
		}
		if err != nil {
			return "", nil, err
		}
		sess.Draft.Resolve(finalized)
		s.nav.Goto(sess, domain.ScreenIdentification)
		return domain.EffectSelectionMade, nil, nil

	case domain.ActionViewSpecialists:
		s.nav.Goto(sess, domain.ScreenSpecialists)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionViewProfile:
		s.nav.Goto(sess, domain.ScreenProfile)
		return domain.EffectSoftInteraction, nil, nil

	case domain.ActionConfirmAppointment:
		s.nav.Goto(sess, domain.ScreenPayment)
		return domain.EffectConfirmationSuccess, nil, nil

	case domain.ActionConfirmPayment:
		s.nav.Goto(sess, domain.ScreenCompletion)
		return domain.EffectConfirmationSuccess, nil, nil

	case domain.ActionFinish:
		sess.User = nil
		s.nav.Goto(sess, domain.ScreenWelcome)
		return domain.EffectSoftInteraction, nil, nil
	}

	return "", nil, fmt.Errorf("%w: %s", domain.ErrActionNotAvailable, event.Action)
}

func (s *KioskServiceImpl) submitIdentification(ctx context.Context, sess *domain.Session, p domain.EventPayload) (*domain.Frame, error) {
	sess.Lock()
	now := s.now()
	sess.Touch(now)

	if sess.VerificationPending() {
		frame := s.presenter.Frame(ctx, sess, nil)
		sess.Unlock()
		return &frame, domain.ErrVerificationInFlight
	}

	if !s.presenter.Allows(sess, domain.ActionSubmitIdentification) {
		frame := s.presenter.Frame(ctx, sess, nil)
		sess.Unlock()
		return &frame, fmt.Errorf("%w: %s em %s", domain.ErrActionNotAvailable, domain.ActionSubmitIdentification, sess.Nav.Current)
	}

	req := VerificationRequest{
		Name:      validator.FormatName(p.Name),
		BirthDate: validator.FormatBirthDate(p.BirthDate),
		CPF:       validator.FormatCPF(p.CPF),
	}

	if verr := validateIdentification(req, now); verr != nil {
		frame := s.presenter.Frame(ctx, sess, s.presenter.FieldNotice(verr))
		s.renderer.Render(frame)
		sess.Unlock()
		return &frame, verr
	}

	verifyCtx, cancel := context.WithCancel(ctx)
	verificationID := uuid.New().String()
	sess.BeginVerification(verificationID, cancel)

	s.renderer.Render(s.presenter.Frame(ctx, sess, nil))
	sess.Unlock()

	s.logger.Debug("verificando identidade",
		zap.String("session", sess.ID),
		zap.String("cpf", s.fp.Fingerprint(req.CPF)),
	)

	result, err := s.verifier.VerifyIdentity(verifyCtx, req)

	sess.Lock()
	defer sess.Unlock()

	if !sess.EndVerification(verificationID) || sess.Nav.Current != domain.ScreenIdentification {
		s.logger.Debug("resultado de verificação descartado", zap.String("session", sess.ID))
		frame := s.presenter.Frame(ctx, sess, nil)
		return &frame, domain.ErrVerificationDiscarded
	}

	if err != nil {
		var notice *domain.Notice
		if errors.Is(err, domain.ErrVerificationFailed) {
			notice = s.presenter.GlobalNotice(domain.ErrVerificationFailed.Error())
		} else {
			s.logger.Warn("verificação interrompida", zap.String("session", sess.ID), zap.Error(err))
			err = fmt.Errorf("verificação interrompida: %w", err)
		}
		frame := s.presenter.Frame(ctx, sess, notice)
		s.renderer.Render(frame)
		return &frame, err
	}

	sess.User = s.userData(sess, req, result)
	s.nav.Goto(sess, domain.ScreenConfirmation)

	frame := s.presenter.Frame(ctx, sess, nil)
	s.renderer.Render(frame)
	s.notify(sess.ID, domain.EffectConfirmationSuccess)

	s.logger.Info("identidade verificada",
		zap.String("session", sess.ID),
		zap.Bool("new_appointment", sess.User.IsNewAppointment()),
	)
	return &frame, nil
}

// userData builds the patient record: a new booking carries the finalized
// draft, a check-in carries the appointment on file.
func (s *KioskServiceImpl) userData(sess *domain.Session, req VerificationRequest, v *Verification) *domain.UserData {
	if sess.Draft.IsFinalized() {
		appointmentType := sess.Draft.Type
		if appointmentType == "" {
			appointmentType = defaultAppointmentType
		}
		return &domain.UserData{
			ID:        domain.NewAppointmentID,
			Name:      req.Name,
			BirthDate: req.BirthDate,
			CPF:       req.CPF,
			Appointment: domain.Appointment{
				Doctor: sess.Draft.Doctor,
				Time:   sess.Draft.Time,
				Date:   s.calendar.Localize(sess.Draft.Date),
				Type:   appointmentType,
				Price:  sess.Draft.Price,
			},
		}
	}

	return &domain.UserData{
		ID:          req.CPF,
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		CPF:         req.CPF,
		Appointment: v.Appointment,
	}
}

func validateIdentification(req VerificationRequest, now time.Time) *domain.ValidationError {
	if !validator.ValidateName(req.Name) {
		return domain.NewValidationError(domain.FieldName, domain.MessageInvalidName)
	}
	if !validator.ValidateBirthDate(req.BirthDate, now) {
		return domain.NewValidationError(domain.FieldBirthDate, domain.MessageInvalidBirthDate)
	}
	if !validator.ValidateCPF(req.CPF) {
		return domain.NewValidationError(domain.FieldCPF, domain.MessageInvalidCPF)
	}
	return nil
}

func (s *KioskServiceImpl) offersSpecialist(sess *domain.Session, id int64) bool {
	for _, sp := range s.builder.SpecialistsForReason(sess.Draft.Type) {
		if sp.ID == id {
			return true
		}
	}
	return false
}

func (s *KioskServiceImpl) selectedSpecialist(sess *domain.Session) (domain.Specialist, error) {
	if sess.Draft.SpecialistID == nil {
		return domain.Specialist{}, fmt.Errorf("%w: nenhum especialista selecionado", domain.ErrSelectionUnavailable)
	}
	specialist, ok := s.presenter.catalog.Get(*sess.Draft.SpecialistID)
	if !ok {
		return domain.Specialist{}, s.builder.guard.violated("especialista %d não existe no catálogo", *sess.Draft.SpecialistID)
	}
	return specialist, nil
}

func (s *KioskServiceImpl) notify(sessionID string, kind domain.EffectKind) {
	if kind == "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("efeito ignorado", zap.Any("panic", r))
		}
	}()
	s.effects.Notify(sessionID, kind)
}

func (s *KioskServiceImpl) observeEvent(action domain.ActionKind, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMissingSelection):
		result = "rejected"
	case errors.Is(err, domain.ErrVerificationFailed):
		result = "failed"
	case errors.Is(err, domain.ErrVerificationDiscarded):
		result = "discarded"
	default:
		result = "error"
	}
	s.metrics.ObserveEvent(string(action), result)
}
