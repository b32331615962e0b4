package repository

import (
	"context"
	"time"

	"kiosk/internal/domain"
)

var seedSpecialists = []domain.Specialist{
	{
		ID:             1,
		Name:           "Dra. Helena Costa",
		Gender:         domain.GenderFemale,
		Specialty:      "Psicologia Clínica",
		Description:    "Especialista em terapia cognitivo-comportamental e atendimento de ansiedade",
		Price:          180.00,
		AvailableDays:  []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		AvailableHours: []string{"08:00", "09:00", "10:00", "14:00", "15:00", "16:00"},
		PhotoKey:       "specialists/1.jpg",
	},
	{
		ID:             2,
		Name:           "Dr. Carlos Mendes",
		Gender:         domain.GenderMale,
		Specialty:      "Psicologia",
		Description:    "Atendimento a adultos e adolescentes, especialista em desenvolvimento pessoal",
		Price:          180.00,
		AvailableDays:  []time.Weekday{time.Sunday, time.Tuesday, time.Thursday},
		AvailableHours: []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
		PhotoKey:       "specialists/2.jpg",
	},
	{
		ID:             3,
		Name:           "Dra. Ana Souza",
		Gender:         domain.GenderFemale,
		Specialty:      "Nutrição",
		Description:    "Nutricionista especializada em reeducação alimentar e nutrição esportiva",
		Price:          150.00,
		AvailableDays:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		AvailableHours: []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00"},
		PhotoKey:       "specialists/3.jpg",
	},
	{
		ID:             4,
		Name:           "Dr. Roberto Silva",
		Gender:         domain.GenderMale,
		Specialty:      "Acupuntura",
		Description:    "Acupunturista com 15 anos de experiência em medicina tradicional chinesa",
		Price:          120.00,
		AvailableDays:  []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
		AvailableHours: []string{"08:00", "10:00", "14:00", "16:00", "17:00"},
		PhotoKey:       "specialists/4.jpg",
	},
}

// SpecialistMemoryRepo serves the built-in clinic catalog.
type SpecialistMemoryRepo struct {
	specialists []domain.Specialist
}

func NewSpecialistMemoryRepository() *SpecialistMemoryRepo {
	return &SpecialistMemoryRepo{specialists: seedSpecialists}
}

func (r *SpecialistMemoryRepo) List(ctx context.Context) ([]domain.Specialist, error) {
	out := make([]domain.Specialist, len(r.specialists))
	copy(out, r.specialists)
	return out, nil
}
