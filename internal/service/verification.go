package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/metrics"
	"kiosk/pkg/auth"
)

const maxRoom = 10

// checkInAppointment is the appointment the clinic has on file for every
// patient checking in.
var checkInAppointment = domain.Appointment{
	Doctor: "Dra. Helena Costa",
	Time:   "14:30",
	Type:   "Consulta de Rotina",
}

type VerificationRequest struct {
	Name      string
	BirthDate string
	CPF       string
}

type Verification struct {
	ID          string
	Appointment domain.Appointment
}

type SimulatedBackend struct {
	latency     time.Duration
	successRate float64
	metrics     *metrics.KioskMetrics
	fp          *auth.Fingerprinter
	logger      *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedBackend(
	latency time.Duration,
	successRate float64,
	rng *rand.Rand,
	m *metrics.KioskMetrics,
	fp *auth.Fingerprinter,
	logger *zap.Logger,
) *SimulatedBackend {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SimulatedBackend{
		latency:     latency,
		successRate: successRate,
		metrics:     m,
		fp:          fp,
		logger:      logger,
		rng:         rng,
	}
}

// VerifyIdentity waits the configured latency and then succeeds with the
// configured probability. It never retries. Cancelling ctx abandons the wait.
func (b *SimulatedBackend) VerifyIdentity(ctx context.Context, req VerificationRequest) (*Verification, error) {
	started := time.Now()

	timer := time.NewTimer(b.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		b.metrics.ObserveVerification("cancelled", time.Since(started).Seconds())
		return nil, ctx.Err()
	case <-timer.C:
	}

	b.mu.Lock()
	draw := b.rng.Float64()
	room := b.rng.IntN(maxRoom) + 1
	b.mu.Unlock()

	if draw >= b.successRate {
		b.metrics.ObserveVerification("failure", time.Since(started).Seconds())
		b.logger.Info("verificação de identidade recusada", zap.String("cpf", b.fp.Fingerprint(req.CPF)))
		return nil, domain.ErrVerificationFailed
	}

	b.metrics.ObserveVerification("success", time.Since(started).Seconds())

	appointment := checkInAppointment
	appointment.Room = room

	return &Verification{
		ID:          uuid.New().String(),
		Appointment: appointment,
	}, nil
}
