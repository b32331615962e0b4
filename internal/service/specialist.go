package service

import (
	"context"

	"kiosk/internal/domain"
)

type SpecialistServiceImpl struct {
	catalog   *domain.Catalog
	calendar  *AvailabilityCalendarImpl
	presenter *Presenter
}

func NewSpecialistService(catalog *domain.Catalog, calendar *AvailabilityCalendarImpl, presenter *Presenter) *SpecialistServiceImpl {
	return &SpecialistServiceImpl{
		catalog:   catalog,
		calendar:  calendar,
		presenter: presenter,
	}
}

func (s *SpecialistServiceImpl) List(ctx context.Context, reason string) []domain.SpecialistCard {
	if reason == "" {
		return s.presenter.Cards(ctx, s.catalog.All())
	}
	return s.presenter.Cards(ctx, s.presenter.builder.SpecialistsForReason(reason))
}

func (s *SpecialistServiceImpl) GetByID(ctx context.Context, id int64) (*domain.SpecialistCard, error) {
	specialist, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrSpecialistNotFound
	}
	card := s.presenter.Card(ctx, specialist)
	return &card, nil
}

func (s *SpecialistServiceImpl) Availability(ctx context.Context, id int64) (*domain.Availability, error) {
	specialist, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrSpecialistNotFound
	}
	return &domain.Availability{
		SpecialistID: specialist.ID,
		Days:         s.calendar.Upcoming(specialist),
		Hours:        s.calendar.ListHours(specialist),
	}, nil
}
