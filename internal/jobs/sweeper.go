package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleSweeper is what the sweeper needs from the kiosk service.
type IdleSweeper interface {
	SweepIdle(ctx context.Context) int
}

// Scheduler runs the periodic kiosk housekeeping.
type Scheduler struct {
	cron    *cron.Cron
	sweeper IdleSweeper
	logger  *zap.Logger
}

func NewScheduler(sweeper IdleSweeper, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		sweeper: sweeper,
		logger:  logger,
	}
}

// Start registers the idle-session sweep with the given cron spec and starts
// the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunSweep); err != nil {
		return fmt.Errorf("agendamento inválido %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("limpeza de sessões agendada", zap.String("spec", spec))
	return nil
}

// RunSweep removes idle sessions once.
func (s *Scheduler) RunSweep() {
	if n := s.sweeper.SweepIdle(context.Background()); n > 0 {
		s.logger.Debug("limpeza de sessões concluída", zap.Int("removed", n))
	}
}

// Stop stops the scheduler and waits for a running sweep to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("limpeza de sessões não terminou a tempo")
	}
}
