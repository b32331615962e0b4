package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kiosk/internal/domain"
)

func newBuilder(t *testing.T, debug bool) *AppointmentBuilderImpl {
	return NewAppointmentBuilder(testCatalog(t), debug, zap.NewNop())
}

func TestBuilderRoundTrip(t *testing.T) {
	b := newBuilder(t, true)
	var d domain.AppointmentDraft

	b.SetReason(&d, "Terapia")
	require.NoError(t, b.SelectSpecialist(&d, 1))
	b.SelectDate(&d, "2024-06-04T03:00:00.000Z")
	b.SelectTime(&d, "09:00")

	f, err := b.Finalize(d)
	require.NoError(t, err)

	assert.Equal(t, "Dra. Helena Costa", f.Doctor)
	assert.Equal(t, 180.00, f.Price)
	assert.Equal(t, int64(1), f.SpecialistID)
	assert.Equal(t, "Terapia", f.Type)
	assert.Equal(t, "2024-06-04T03:00:00.000Z", f.Date)
	assert.Equal(t, "09:00", f.Time)
	assert.False(t, d.IsFinalized())
}

func TestBuilderFinalizeMissingSelection(t *testing.T) {
	b := newBuilder(t, true)

	var onlyDate domain.AppointmentDraft
	require.NoError(t, b.SelectSpecialist(&onlyDate, 2))
	b.SelectDate(&onlyDate, "2024-06-04T03:00:00.000Z")
	_, err := b.Finalize(onlyDate)
	assert.ErrorIs(t, err, domain.ErrMissingSelection)

	var onlyTime domain.AppointmentDraft
	require.NoError(t, b.SelectSpecialist(&onlyTime, 2))
	b.SelectTime(&onlyTime, "09:00")
	_, err = b.Finalize(onlyTime)
	assert.ErrorIs(t, err, domain.ErrMissingSelection)
}

func TestBuilderUnknownSpecialist(t *testing.T) {
	var d domain.AppointmentDraft

	assert.Panics(t, func() {
		_ = newBuilder(t, true).SelectSpecialist(&d, 99)
	})

	err := newBuilder(t, false).SelectSpecialist(&d, 99)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
	assert.Nil(t, d.SpecialistID)
}

func TestBuilderFinalizeWithoutSpecialist(t *testing.T) {
	d := domain.AppointmentDraft{Date: "2024-06-04T03:00:00.000Z", Time: "09:00"}
	_, err := newBuilder(t, false).Finalize(d)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestBuilderSwitchingSpecialistClearsSchedule(t *testing.T) {
	b := newBuilder(t, true)
	var d domain.AppointmentDraft

	require.NoError(t, b.SelectSpecialist(&d, 1))
	b.SelectDate(&d, "2024-06-04T03:00:00.000Z")
	b.SelectTime(&d, "09:00")

	require.NoError(t, b.SelectSpecialist(&d, 1))
	assert.Equal(t, "09:00", d.Time)

	require.NoError(t, b.SelectSpecialist(&d, 3))
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)
	assert.Equal(t, int64(3), *d.SpecialistID)
}

func TestSpecialistsForReason(t *testing.T) {
	b := newBuilder(t, true)

	ids := func(specialists []domain.Specialist) []int64 {
		var out []int64
		for _, s := range specialists {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2}, ids(b.SpecialistsForReason("Psicologia")))
	assert.Equal(t, []int64{1, 2}, ids(b.SpecialistsForReason("")))
	assert.Equal(t, []int64{1}, ids(b.SpecialistsForReason("clínica")))
	assert.Equal(t, []int64{3}, ids(b.SpecialistsForReason("NUTRIÇÃO")))
	assert.Equal(t, []int64{4}, ids(b.SpecialistsForReason("Acupuntura")))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(b.SpecialistsForReason("Consulta de Rotina")))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(b.SpecialistsForReason("Terapia")))
}
