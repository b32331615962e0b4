package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/storage"
)

const (
	newPatientName         = "NOVO PACIENTE"
	defaultFirstName       = "paciente"
	defaultAppointmentType = "Consulta"
	paymentMethods         = "Aceitamos cartão de crédito e débito por aproximação."
)

// Presenter turns session state into the typed frame the display renders.
type Presenter struct {
	appName   string
	catalog   *domain.Catalog
	calendar  *AvailabilityCalendarImpl
	builder   *AppointmentBuilderImpl
	photos    storage.PhotoStorage
	noticeTTL time.Duration
	logger    *zap.Logger
}

func NewPresenter(
	appName string,
	catalog *domain.Catalog,
	calendar *AvailabilityCalendarImpl,
	builder *AppointmentBuilderImpl,
	photos storage.PhotoStorage,
	noticeTTL time.Duration,
	logger *zap.Logger,
) *Presenter {
	return &Presenter{
		appName:   appName,
		catalog:   catalog,
		calendar:  calendar,
		builder:   builder,
		photos:    photos,
		noticeTTL: noticeTTL,
		logger:    logger,
	}
}

// Frame renders the session. The caller holds the session lock.
func (p *Presenter) Frame(ctx context.Context, s *domain.Session, notice *domain.Notice) domain.Frame {
	frame := domain.Frame{
		SessionID: s.ID,
		Screen:    s.Nav.Current,
		Theme:     s.Theme,
		View:      p.view(ctx, s),
		Actions:   p.Actions(s),
		Loading:   s.VerificationPending(),
		Notice:    notice,
	}
	if frame.Loading {
		frame.Message = domain.MessageVerifying
	}
	return frame
}

// Actions lists the affordances the current screen offers.
func (p *Presenter) Actions(s *domain.Session) []domain.ActionKind {
	var actions []domain.ActionKind

	switch s.Nav.Current {
	case domain.ScreenWelcome:
		return []domain.ActionKind{
			domain.ActionStartCheckIn,
			domain.ActionStartScheduling,
			domain.ActionOpenFaq,
			domain.ActionSetTheme,
			domain.ActionEscape,
		}
	case domain.ScreenIdentification:
		if !s.VerificationPending() {
			actions = append(actions, domain.ActionSubmitIdentification)
		}
		actions = append(actions, domain.ActionBack)
	case domain.ScreenConfirmation:
		actions = append(actions, domain.ActionConfirmAppointment, domain.ActionViewProfile, domain.ActionBack)
	case domain.ScreenPayment:
		actions = append(actions, domain.ActionConfirmPayment, domain.ActionBack)
	case domain.ScreenCompletion:
		actions = append(actions, domain.ActionFinish)
	case domain.ScreenReason:
		actions = append(actions, domain.ActionSelectReason, domain.ActionBack)
	case domain.ScreenScheduling:
		actions = append(actions, domain.ActionSelectSpecialist)
		if s.Draft.SpecialistID != nil {
			actions = append(actions, domain.ActionSelectDate, domain.ActionSelectTime, domain.ActionConfirmSchedule)
		}
		actions = append(actions, domain.ActionViewSpecialists, domain.ActionBack)
	case domain.ScreenProfile, domain.ScreenSpecialists, domain.ScreenFaq:
		actions = append(actions, domain.ActionBack)
	}

	return append(actions, domain.ActionEscape)
}

func (p *Presenter) Allows(s *domain.Session, action domain.ActionKind) bool {
	for _, a := range p.Actions(s) {
		if a == action {
			return true
		}
	}
	return false
}

func (p *Presenter) FieldNotice(err *domain.ValidationError) *domain.Notice {
	return &domain.Notice{
		Kind:           domain.NoticeField,
		Field:          err.Field,
		Message:        err.Message,
		DismissAfterMS: p.noticeTTL.Milliseconds(),
	}
}

func (p *Presenter) BlockingNotice(message string) *domain.Notice {
	return &domain.Notice{
		Kind:    domain.NoticeBlocking,
		Message: message,
	}
}

func (p *Presenter) GlobalNotice(message string) *domain.Notice {
	return &domain.Notice{
		Kind:           domain.NoticeGlobal,
		Message:        message,
		DismissAfterMS: p.noticeTTL.Milliseconds(),
	}
}

func (p *Presenter) view(ctx context.Context, s *domain.Session) domain.View {
	switch s.Nav.Current {
	case domain.ScreenIdentification:
		return p.identificationView(s)
	case domain.ScreenConfirmation:
		return p.confirmationView(s)
	case domain.ScreenPayment:
		return domain.PaymentView{Amount: p.userAppointment(s).PriceOrDefault(), Methods: paymentMethods}
	case domain.ScreenCompletion:
		return domain.CompletionView{FirstName: firstName(s.User, defaultFirstName), NewAppointment: s.User.IsNewAppointment()}
	case domain.ScreenReason:
		return domain.ReasonView{Reasons: append([]domain.Reason(nil), domain.Reasons...)}
	case domain.ScreenScheduling:
		return p.schedulingView(ctx, s)
	case domain.ScreenProfile:
		return p.profileView(ctx, s)
	case domain.ScreenSpecialists:
		return domain.SpecialistsView{Specialists: p.Cards(ctx, p.catalog.All())}
	case domain.ScreenFaq:
		return domain.FaqView{Entries: append([]domain.FaqEntry(nil), domain.FaqEntries...)}
	default:
		return p.welcomeView(s)
	}
}

func (p *Presenter) welcomeView(s *domain.Session) domain.WelcomeView {
	themes := make([]domain.ThemeOption, 0, len(domain.Themes))
	for _, t := range domain.Themes {
		themes = append(themes, domain.ThemeOption{Theme: t, Label: t.Label(), Active: t == s.Theme})
	}
	return domain.WelcomeView{AppName: p.appName, Themes: themes}
}

func (p *Presenter) identificationView(s *domain.Session) domain.IdentificationView {
	if s.Draft.IsFinalized() {
		return domain.IdentificationView{
			Title:          "Quase lá! Vamos nos conhecer",
			Subtitle:       "Para finalizar seu agendamento, precisamos de alguns dados",
			Context:        "Sua consulta com " + s.Draft.Doctor + " está quase confirmada",
			NewAppointment: true,
		}
	}
	return domain.IdentificationView{
		Title:    "Bem-vindo! Vamos começar",
		Subtitle: "Para cuidar melhor de você, precisamos te conhecer",
		Context:  "Suas informações estão seguras conosco",
	}
}

func (p *Presenter) confirmationView(s *domain.Session) domain.ConfirmationView {
	appointment := p.userAppointment(s)
	isNew := s.User.IsNewAppointment()

	view := domain.ConfirmationView{
		PatientName:    newPatientName,
		Doctor:         appointment.Doctor,
		Date:           appointment.Date,
		Time:           appointment.Time,
		Type:           appointment.Type,
		Price:          appointment.PriceOrDefault(),
		NewAppointment: isNew,
	}
	if s.User != nil && s.User.Name != "" {
		view.PatientName = s.User.Name
	}

	if isNew {
		view.Title = "CONFIRME SEU AGENDAMENTO"
		view.Subtitle = "REVISE OS DADOS DO SEU NOVO AGENDAMENTO"
	} else {
		view.Title = "OLÁ, " + strings.ToUpper(firstName(s.User, "")) + "!"
		view.Subtitle = "CONFIRME OS DADOS DA SUA CONSULTA"
		view.Room = appointment.Room
	}
	return view
}

func (p *Presenter) schedulingView(ctx context.Context, s *domain.Session) domain.SchedulingView {
	reason := s.Draft.Type
	if reason == "" {
		reason = DefaultReasonFilter
	}

	view := domain.SchedulingView{
		Reason:      reason,
		Specialists: p.Cards(ctx, p.builder.SpecialistsForReason(s.Draft.Type)),
		Date:        s.Draft.Date,
		Time:        s.Draft.Time,
	}

	if s.Draft.SpecialistID != nil {
		id := *s.Draft.SpecialistID
		view.SpecialistID = &id
		if specialist, ok := p.catalog.Get(id); ok {
			view.Days = p.calendar.Upcoming(specialist)
			view.Hours = p.calendar.ListHours(specialist)
		}
	}
	return view
}

func (p *Presenter) profileView(ctx context.Context, s *domain.Session) domain.ProfileView {
	all := p.catalog.All()
	if len(all) == 0 {
		return domain.ProfileView{}
	}

	specialist, ok := p.catalog.FindByName(p.userAppointment(s).Doctor)
	if !ok {
		specialist = all[0]
	}
	return domain.ProfileView{Specialist: p.Card(ctx, specialist)}
}

func (p *Presenter) Cards(ctx context.Context, specialists []domain.Specialist) []domain.SpecialistCard {
	cards := make([]domain.SpecialistCard, 0, len(specialists))
	for _, s := range specialists {
		cards = append(cards, p.Card(ctx, s))
	}
	return cards
}

func (p *Presenter) Card(ctx context.Context, s domain.Specialist) domain.SpecialistCard {
	days := make([]string, 0, len(s.AvailableDays))
	for _, d := range s.AvailableDays {
		days = append(days, domain.WeekdayName(d))
	}

	card := domain.SpecialistCard{
		ID:          s.ID,
		Name:        s.Name,
		Gender:      s.Gender,
		Specialty:   s.Specialty,
		Description: s.Description,
		Price:       s.Price,
		Days:        days,
		Hours:       append([]string(nil), s.AvailableHours...),
	}

	if p.photos != nil && s.PhotoKey != "" {
		url, err := p.photos.PhotoURL(ctx, s.PhotoKey)
		if err != nil {
			p.logger.Debug("foto do especialista indisponível", zap.Int64("specialist", s.ID), zap.Error(err))
		} else {
			card.PhotoURL = url
		}
	}
	return card
}

func (p *Presenter) userAppointment(s *domain.Session) domain.Appointment {
	if s.User == nil {
		return domain.Appointment{}
	}
	return s.User.Appointment
}

func firstName(u *domain.UserData, fallback string) string {
	if u == nil {
		return fallback
	}
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}
