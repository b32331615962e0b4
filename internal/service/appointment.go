package service

import (
	"go.uber.org/zap"

	"kiosk/internal/domain"
)

// DefaultReasonFilter is used when the draft has no reason yet.
const DefaultReasonFilter = "Psicologia"

type AppointmentBuilderImpl struct {
	catalog *domain.Catalog
	guard   preconditionGuard
	logger  *zap.Logger
}

func NewAppointmentBuilder(catalog *domain.Catalog, debug bool, logger *zap.Logger) *AppointmentBuilderImpl {
	return &AppointmentBuilderImpl{
		catalog: catalog,
		guard:   preconditionGuard{debug: debug, logger: logger},
		logger:  logger,
	}
}

func (b *AppointmentBuilderImpl) SetReason(d *domain.AppointmentDraft, label string) {
	d.Type = label
}

// SelectSpecialist records the specialist. Switching to another specialist
// drops the date and time picked for the previous one.
func (b *AppointmentBuilderImpl) SelectSpecialist(d *domain.AppointmentDraft, id int64) error {
	if _, ok := b.catalog.Get(id); !ok {
		return b.guard.violated("especialista %d não existe no catálogo", id)
	}

	if d.SpecialistID != nil && *d.SpecialistID != id {
		d.Date = ""
		d.Time = ""
	}
	d.SpecialistID = &id
	d.Doctor = ""
	d.Price = 0
	return nil
}

func (b *AppointmentBuilderImpl) SelectDate(d *domain.AppointmentDraft, isoInstant string) {
	d.Date = isoInstant
}

func (b *AppointmentBuilderImpl) SelectTime(d *domain.AppointmentDraft, hhmm string) {
	d.Time = hhmm
}

// Finalize resolves the selected specialist into a confirmed appointment.
// The draft itself is left untouched.
func (b *AppointmentBuilderImpl) Finalize(d domain.AppointmentDraft) (domain.FinalizedAppointment, error) {
	if d.Date == "" || d.Time == "" {
		return domain.FinalizedAppointment{}, domain.ErrMissingSelection
	}

	if d.SpecialistID == nil {
		return domain.FinalizedAppointment{}, b.guard.violated("agendamento sem especialista selecionado")
	}

	specialist, ok := b.catalog.Get(*d.SpecialistID)
	if !ok {
		return domain.FinalizedAppointment{}, b.guard.violated("especialista %d não existe no catálogo", *d.SpecialistID)
	}

	return domain.FinalizedAppointment{
		SpecialistID: specialist.ID,
		Doctor:       specialist.Name,
		Price:        specialist.Price,
		Type:         d.Type,
		Date:         d.Date,
		Time:         d.Time,
	}, nil
}

// SpecialistsForReason offers the specialists whose specialty contains the
// reason, or the whole catalog when none does.
func (b *AppointmentBuilderImpl) SpecialistsForReason(reason string) []domain.Specialist {
	if reason == "" {
		reason = DefaultReasonFilter
	}

	all := b.catalog.All()
	var matched []domain.Specialist
	for _, s := range all {
		if s.MatchesReason(reason) {
			matched = append(matched, s)
		}
	}

	if len(matched) == 0 {
		return all
	}
	return matched
}
