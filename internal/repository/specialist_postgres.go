package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"kiosk/internal/domain"
)

// Querier is satisfied by *pgxpool.Pool and by pgxmock pools.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type SpecialistPostgresRepo struct {
	db Querier
}

func NewSpecialistPostgresRepository(db Querier) *SpecialistPostgresRepo {
	return &SpecialistPostgresRepo{
		db: db,
	}
}

func (r *SpecialistPostgresRepo) List(ctx context.Context) ([]domain.Specialist, error) {
	query := `
		SELECT
			id,
			name,
			gender,
			specialty,
			description,
			price,
			available_days,
			available_hours,
			photo_key
		FROM specialists
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar especialistas: %w", err)
	}
	defer rows.Close()

	var specialists []domain.Specialist
	for rows.Next() {
		var (
			s    domain.Specialist
			days []int32
		)

		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Gender,
			&s.Specialty,
			&s.Description,
			&s.Price,
			&days,
			&s.AvailableHours,
			&s.PhotoKey,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler especialista: %w", err)
		}

		for _, d := range days {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("especialista %d com dia da semana inválido: %d", s.ID, d)
			}
			s.AvailableDays = append(s.AvailableDays, time.Weekday(d))
		}

		specialists = append(specialists, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao processar especialistas: %w", err)
	}

	return specialists, nil
}
