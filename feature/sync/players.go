package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"qldf/core/extract"
	"qldf/core/models"
	"qldf/core/reconcile"
)

// syncPlayers refreshes the display name and avatar of every known player
// from their Steam profile. Update-only: players are never deleted, their
// records reference them. A profile fetch failure aborts the run before
// anything is written; extraction misses just keep the stored values.
func (s *Service) syncPlayers(ctx context.Context, log *zap.Logger, runID string) error {
	var players []models.Player
	if err := s.db.WithContext(ctx).Find(&players).Error; err != nil {
		return fmt.Errorf("load players: %w", err)
	}

	external := make([]models.Player, 0, len(players))
	for _, player := range players {
		raw, err := s.fetcher.Text(ctx, s.cfg.PlayerProfileURL+player.SteamID+"/?xml=1", nil)
		if err != nil {
			return err
		}

		doc := extract.NewDocument(raw)
		fields := extract.Profile(doc, extract.ProfileFields{
			Name:      player.Name,
			AvatarURL: player.AvatarURL,
		}, log.With(zap.String("steam_id", player.SteamID)))

		player.Name = fields.Name
		player.AvatarURL = fields.AvatarURL
		external = append(external, player)
	}

	plan := reconcile.Diff(external, players, reconcile.Options[models.Player]{
		Merge: func(ext, loc models.Player) models.Player {
			ext.Model = loc.Model
			return ext
		},
		Unchanged: func(merged, local models.Player) bool {
			return merged.Name == local.Name && merged.AvatarURL == local.AvatarURL
		},
		Logger: log,
	})

	log.Info("player profiles reconciled",
		zap.Int("players", len(players)),
		zap.Int("updates", len(plan.Updates)),
		zap.Int("unchanged", plan.Unchanged))

	return reconcile.Apply(s.db.WithContext(ctx), plan, "steam_id")
}
