package sync

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qldf/core/fetch"
	"qldf/core/logger"
	"qldf/core/snapshot"
)

// Fetcher is the outbound HTTP capability the jobs need. *fetch.Client
// satisfies it; tests substitute a stub.
type Fetcher interface {
	Text(ctx context.Context, url string, params []fetch.Param) (string, error)
}

// Service runs the sync jobs against the persistence layer.
type Service struct {
	db        *gorm.DB
	fetcher   Fetcher
	snapshots *snapshot.Archive
	cfg       Config
	logger    *zap.Logger
}

// NewService creates the sync service. snapshots may be nil (archiving off).
func NewService(db *gorm.DB, fetcher Fetcher, snapshots *snapshot.Archive, cfg Config, log *zap.Logger) *Service {
	return &Service{
		db:        db,
		fetcher:   fetcher,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    log,
	}
}

// jobFunc is the body of one job run.
type jobFunc func(ctx context.Context, log *zap.Logger, runID string) error

// run wraps a job body with the uniform logging and isolation policy:
// start/done markers, panic recovery with stack, errors logged and
// swallowed. The scheduler and the other jobs never see a failure.
func (s *Service) run(ctx context.Context, name string, body jobFunc) {
	runID := uuid.NewString()
	log := logger.WithJob(s.logger, name, runID)

	log.Info("job started")
	defer func() {
		if r := recover(); r != nil {
			log.Error("job panicked",
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	if err := body(ctx, log, runID); err != nil {
		log.Error("job failed", zap.Error(err))
		return
	}
	log.Info("job finished")
}

// SyncServers runs the server sync job under the uniform job wrapper.
func (s *Service) SyncServers(ctx context.Context) {
	s.run(ctx, "sync_servers", s.syncServers)
}

// SyncPlayers runs the player sync job under the uniform job wrapper.
func (s *Service) SyncPlayers(ctx context.Context) {
	s.run(ctx, "sync_players", s.syncPlayers)
}

// SyncWorkshopItems runs the workshop sync job under the uniform job wrapper.
func (s *Service) SyncWorkshopItems(ctx context.Context) {
	s.run(ctx, "sync_workshop_items", s.syncWorkshopItems)
}
