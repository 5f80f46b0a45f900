package sync

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the periodic jobs. Jobs run one at a time per category
// and a tick is skipped while the previous invocation of the same job still
// runs, so jobs are never reentrant.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	cfg     Config
	logger  *zap.Logger
}

// NewScheduler wires the three jobs into a cron instance.
func NewScheduler(service *Service, cfg Config, log *zap.Logger) (*Scheduler, error) {
	cl := cronLogger{log.Named("cron")}
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cl),
		cron.Recover(cl),
	))

	jobs := []struct {
		name     string
		interval int
		run      func(context.Context)
	}{
		{"sync_servers", cfg.ServersIntervalSeconds, service.SyncServers},
		{"sync_players", cfg.PlayersIntervalSeconds, service.SyncPlayers},
		{"sync_workshop_items", cfg.WorkshopIntervalSeconds, service.SyncWorkshopItems},
	}
	for _, job := range jobs {
		run := job.run
		spec := fmt.Sprintf("@every %ds", job.interval)
		if _, err := c.AddFunc(spec, func() { run(context.Background()) }); err != nil {
			return nil, fmt.Errorf("schedule %s: %w", job.name, err)
		}
	}

	return &Scheduler{cron: c, service: service, cfg: cfg, logger: log}, nil
}

// Start begins scheduling. When configured, every job also runs once
// immediately, in sequence.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cfg.RunOnStartup {
		s.service.SyncServers(ctx)
		s.service.SyncPlayers(ctx)
		s.service.SyncWorkshopItems(ctx)
	}
	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.Int("servers_interval_s", s.cfg.ServersIntervalSeconds),
		zap.Int("players_interval_s", s.cfg.PlayersIntervalSeconds),
		zap.Int("workshop_interval_s", s.cfg.WorkshopIntervalSeconds))
}

// Stop halts scheduling and waits for in-flight jobs to finish, so a run is
// never cut off mid-reconciliation.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("scheduler stopped")
}

// cronLogger adapts zap to the cron logger interface.
type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
