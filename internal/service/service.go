package service

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"kiosk/config"
	"kiosk/internal/domain"
	"kiosk/internal/metrics"
	"kiosk/internal/repository"
	"kiosk/internal/storage"
	"kiosk/pkg/auth"
)

type Deps struct {
	Repos        *repository.Repositories
	Catalog      *domain.Catalog
	Logger       *zap.Logger
	Config       *config.Config
	Location     *time.Location
	Photos       storage.PhotoStorage
	Tokens       *auth.TokenManager
	Fingerprints *auth.Fingerprinter
	Metrics      *metrics.KioskMetrics
	Renderer     Renderer
	Effects      EffectsPort
	Rand         *rand.Rand
	Now          func() time.Time
}

type Services struct {
	Kiosk      KioskService
	Specialist SpecialistService
}

func NewServices(deps Deps) *Services {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	kc := deps.Config.Kiosk
	debug := !deps.Config.IsProduction()

	calendar := NewAvailabilityCalendar(deps.Location, kc.CalendarHorizon, deps.Now)
	builder := NewAppointmentBuilder(deps.Catalog, debug, deps.Logger)
	presenter := NewPresenter(deps.Config.Name, deps.Catalog, calendar, builder, deps.Photos, kc.NoticeTTL, deps.Logger)

	kiosk := NewKioskService(KioskDeps{
		Sessions:  deps.Repos.Session,
		Nav:       NewNavigationService(deps.Metrics, deps.Logger),
		Builder:   builder,
		Calendar:  calendar,
		Presenter: presenter,
		Verifier:  NewSimulatedBackend(kc.VerificationLatency, kc.SuccessRate, deps.Rand, deps.Metrics, deps.Fingerprints, deps.Logger),
		Tokens:    deps.Tokens,
		Fp:        deps.Fingerprints,
		Renderer:  deps.Renderer,
		Effects:   deps.Effects,
		Metrics:   deps.Metrics,
		IdleTTL:   kc.SessionIdleTTL,
		Now:       deps.Now,
		Logger:    deps.Logger,
	})

	return &Services{
		Kiosk:      kiosk,
		Specialist: NewSpecialistService(deps.Catalog, calendar, presenter),
	}
}

type KioskService interface {
	Open(ctx context.Context) (*domain.SessionTicket, error)
	ResolveToken(token string) (string, error)
	Frame(ctx context.Context, sessionID string) (*domain.Frame, error)
	Dispatch(ctx context.Context, sessionID string, event domain.Event) (*domain.Frame, error)
	Close(ctx context.Context, sessionID string) error
	SweepIdle(ctx context.Context) int
}

type SpecialistService interface {
	List(ctx context.Context, reason string) []domain.SpecialistCard
	GetByID(ctx context.Context, id int64) (*domain.SpecialistCard, error)
	Availability(ctx context.Context, id int64) (*domain.Availability, error)
}
