package service

import (
	"fmt"

	"go.uber.org/zap"

	"kiosk/internal/domain"
)

// preconditionGuard handles states the display can never produce through its
// own affordances. In debug builds it panics so the bug surfaces immediately.
type preconditionGuard struct {
	debug  bool
	logger *zap.Logger
}

func (g preconditionGuard) violated(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if g.debug {
		panic(fmt.Sprintf("%s: %s", domain.ErrPrecondition, msg))
	}
	g.logger.Error("violação de pré-condição", zap.String("detail", msg))
	return fmt.Errorf("%w: %s", domain.ErrPrecondition, msg)
}
