package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/pkg/auth"
)

func newBackend(latency time.Duration, rate float64) *SimulatedBackend {
	return NewSimulatedBackend(latency, rate, rand.New(rand.NewPCG(7, 11)), nil, auth.NewFingerprinter("k"), zap.NewNop())
}

func TestVerifyIdentitySuccess(t *testing.T) {
	b := newBackend(time.Millisecond, 1)

	v, err := b.VerifyIdentity(context.Background(), VerificationRequest{CPF: "529.982.247-25"})
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Dra. Helena Costa", v.Appointment.Doctor)
	assert.Equal(t, "14:30", v.Appointment.Time)
	assert.Equal(t, "Consulta de Rotina", v.Appointment.Type)
	assert.Equal(t, 150.00, v.Appointment.PriceOrDefault())
	assert.GreaterOrEqual(t, v.Appointment.Room, 1)
	assert.LessOrEqual(t, v.Appointment.Room, 10)
}

func TestVerifyIdentityFailure(t *testing.T) {
	b := newBackend(0, 0)

	_, err := b.VerifyIdentity(context.Background(), VerificationRequest{})
	assert.ErrorIs(t, err, domain.ErrVerificationFailed)
}

func TestVerifyIdentityWaitsLatency(t *testing.T) {
	b := newBackend(30*time.Millisecond, 1)

	started := time.Now()
	_, err := b.VerifyIdentity(context.Background(), VerificationRequest{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)
}

func TestVerifyIdentityCancelled(t *testing.T) {
	b := newBackend(time.Hour, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := b.VerifyIdentity(ctx, VerificationRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifyIdentitySuccessRate(t *testing.T) {
	b := newBackend(0, 0.9)

	successes := 0
	for i := 0; i < 2000; i++ {
		if _, err := b.VerifyIdentity(context.Background(), VerificationRequest{}); err == nil {
			successes++
		}
	}

	assert.InDelta(t, 1800, successes, 100)
}
