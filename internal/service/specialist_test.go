package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/storage"
)

func newSpecialistService(t *testing.T) *SpecialistServiceImpl {
	t.Helper()
	catalog := testCatalog(t)
	calendar := NewAvailabilityCalendar(brt, 14, func() time.Time { return monday })
	builder := NewAppointmentBuilder(catalog, false, zap.NewNop())
	photos := storage.StaticStorage{BaseURL: "https://cdn.exemplo.com.br"}
	presenter := NewPresenter("Secretaria Digital Amanhecer", catalog, calendar, builder, photos, 5*time.Second, zap.NewNop())
	return NewSpecialistService(catalog, calendar, presenter)
}

func TestSpecialistServiceList(t *testing.T) {
	svc := newSpecialistService(t)

	all := svc.List(context.Background(), "")
	require.Len(t, all, 4)
	assert.Equal(t, "https://cdn.exemplo.com.br/specialists/1.jpg", all[0].PhotoURL)

	nutrition := svc.List(context.Background(), "nutrição")
	require.Len(t, nutrition, 1)
	assert.Equal(t, int64(3), nutrition[0].ID)

	assert.Len(t, svc.List(context.Background(), "Cardiologia"), 4)
}

func TestSpecialistServiceGetByID(t *testing.T) {
	svc := newSpecialistService(t)

	card, err := svc.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Acupuntura", card.Specialty)
	assert.Equal(t, []string{"TERÇA", "QUARTA", "QUINTA"}, card.Days)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrSpecialistNotFound)
}

func TestSpecialistServiceAvailability(t *testing.T) {
	svc := newSpecialistService(t)

	availability, err := svc.Availability(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), availability.SpecialistID)
	require.Len(t, availability.Days, 14)
	assert.True(t, availability.Days[0].Available)
	assert.False(t, availability.Days[1].Available)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}, availability.Hours)

	_, err = svc.Availability(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrSpecialistNotFound)
}
