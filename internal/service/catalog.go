package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kiosk/internal/domain"
	"kiosk/internal/repository"
)

var ErrEmptyCatalog = errors.New("catálogo de especialistas vazio")

// LoadCatalog reads the specialist catalog once. It is immutable afterwards.
func LoadCatalog(ctx context.Context, repo repository.SpecialistRepository, logger *zap.Logger) (*domain.Catalog, error) {
	specialists, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o catálogo: %w", err)
	}

	if len(specialists) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int64]struct{}, len(specialists))
	for _, s := range specialists {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("especialista duplicado no catálogo: %d", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	logger.Info("catálogo de especialistas carregado", zap.Int("count", len(specialists)))
	return domain.NewCatalog(specialists), nil
}
