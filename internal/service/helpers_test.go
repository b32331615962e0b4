package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/metrics"
	"kiosk/internal/repository"
	"kiosk/pkg/auth"
)

var brt = time.FixedZone("BRT", -3*60*60)

// monday is 2024-06-03 10:00 in São Paulo.
var monday = time.Date(2024, time.June, 3, 10, 0, 0, 0, brt)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingRenderer struct {
	mu      sync.Mutex
	frames  []domain.Frame
	loading chan struct{}
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{loading: make(chan struct{}, 1)}
}

func (r *recordingRenderer) Render(frame domain.Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, frame)
	r.mu.Unlock()
	if frame.Loading {
		select {
		case r.loading <- struct{}{}:
		default:
		}
	}
}

func (r *recordingRenderer) Last() domain.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

type recordingEffects struct {
	mu    sync.Mutex
	kinds []domain.EffectKind
}

func (e *recordingEffects) Notify(_ string, kind domain.EffectKind) {
	e.mu.Lock()
	e.kinds = append(e.kinds, kind)
	e.mu.Unlock()
}

func (e *recordingEffects) Kinds() []domain.EffectKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.EffectKind(nil), e.kinds...)
}

type panickingEffects struct{}

func (panickingEffects) Notify(string, domain.EffectKind) { panic("sem áudio") }

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	specialists, err := repository.NewSpecialistMemoryRepository().List(context.Background())
	require.NoError(t, err)
	return domain.NewCatalog(specialists)
}

type kioskFixture struct {
	svc      *KioskServiceImpl
	clock    *fakeClock
	renderer *recordingRenderer
	effects  *recordingEffects
	sessions *repository.SessionLRURepo
}

type fixtureOptions struct {
	latency     time.Duration
	successRate float64
	effects     EffectsPort
}

func newKioskFixture(t *testing.T, opts fixtureOptions) *kioskFixture {
	t.Helper()

	logger := zap.NewNop()
	clock := &fakeClock{now: monday}
	catalog := testCatalog(t)
	m := metrics.NewKioskMetrics(prometheus.NewRegistry())

	sessions, err := repository.NewSessionLRURepository(16, nil)
	require.NoError(t, err)

	calendar := NewAvailabilityCalendar(brt, 14, clock.Now)
	builder := NewAppointmentBuilder(catalog, false, logger)
	presenter := NewPresenter("Secretaria Digital Amanhecer", catalog, calendar, builder, nil, 5*time.Second, logger)
	fp := auth.NewFingerprinter("teste")

	renderer := newRecordingRenderer()
	recorded := &recordingEffects{}
	var effects EffectsPort = recorded
	if opts.effects != nil {
		effects = opts.effects
	}

	svc := NewKioskService(KioskDeps{
		Sessions:  sessions,
		Nav:       NewNavigationService(m, logger),
		Builder:   builder,
		Calendar:  calendar,
		Presenter: presenter,
		Verifier:  NewSimulatedBackend(opts.latency, opts.successRate, rand.New(rand.NewPCG(1, 2)), m, fp, logger),
		Tokens:    auth.NewTokenManager("segredo", time.Hour),
		Fp:        fp,
		Renderer:  renderer,
		Effects:   effects,
		Metrics:   m,
		IdleTTL:   30 * time.Minute,
		Now:       clock.Now,
		Logger:    logger,
	})

	return &kioskFixture{
		svc:      svc,
		clock:    clock,
		renderer: renderer,
		effects:  recorded,
		sessions: sessions,
	}
}

func (f *kioskFixture) open(t *testing.T) string {
	t.Helper()
	ticket, err := f.svc.Open(context.Background())
	require.NoError(t, err)
	return ticket.SessionID
}

func (f *kioskFixture) dispatch(t *testing.T, id string, action domain.ActionKind, payload domain.EventPayload) *domain.Frame {
	t.Helper()
	frame, err := f.svc.Dispatch(context.Background(), id, domain.Event{Action: action, Payload: payload})
	require.NoError(t, err)
	return frame
}

var validIdentity = domain.EventPayload{
	Name:      "maria da silva",
	BirthDate: "01011990",
	CPF:       "52998224725",
}
