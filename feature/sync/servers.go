package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"qldf/core/fetch"
	"qldf/core/models"
	"qldf/core/reconcile"
)

// serverFeed is the shape of the server-list API response.
type serverFeed struct {
	Servers []serverEntry `json:"servers"`
}

type serverEntry struct {
	ServerID json.Number `json:"serverID"`
	Address  string      `json:"address"`
	Location struct {
		CountryName string `json:"countryName"`
	} `json:"location"`
	Info struct {
		Map        string `json:"map"`
		MaxPlayers int    `json:"maxPlayers"`
		ServerName string `json:"serverName"`
		Extra      struct {
			Keywords string `json:"keywords"`
		} `json:"extra"`
	} `json:"info"`
	Players []serverEntryPlayer `json:"players"`
}

type serverEntryPlayer struct {
	Name             string `json:"name"`
	Score            int    `json:"score"`
	TotalConnected   string `json:"totalConnected"`
	SecondsConnected int    `json:"secondsConnected"`
}

// syncServers mirrors the live server list into the local store: upserts for
// every listed server, deletes for servers that dropped out of the feed.
func (s *Service) syncServers(ctx context.Context, log *zap.Logger, runID string) error {
	params := []fetch.Param{
		{Key: "serverKeywords", Value: s.cfg.ServerKeyword},
		{Key: "hasPassword", Value: "false"},
	}
	raw, err := s.fetcher.Text(ctx, s.cfg.ServersURL, params)
	if err != nil {
		return err
	}
	s.snapshots.Store(ctx, "sync_servers", runID, "servers.json", []byte(raw))

	var feed serverFeed
	if err := json.Unmarshal([]byte(raw), &feed); err != nil {
		return fmt.Errorf("decode server feed: %w", err)
	}

	external := make([]models.Server, 0, len(feed.Servers))
	for _, entry := range feed.Servers {
		server, err := mapServer(entry)
		if err != nil {
			return err
		}
		external = append(external, server)
	}

	var local []models.Server
	if err := s.db.WithContext(ctx).Find(&local).Error; err != nil {
		return fmt.Errorf("load local servers: %w", err)
	}

	plan := reconcile.Diff(external, local, reconcile.Options[models.Server]{
		DeleteMissing: true,
		Merge: func(ext, loc models.Server) models.Server {
			ext.Model = loc.Model
			return ext
		},
		Unchanged: serverUnchanged,
		Logger:    log,
	})

	log.Info("server list reconciled",
		zap.Int("fetched", len(feed.Servers)),
		zap.Int("inserts", len(plan.Inserts)),
		zap.Int("updates", len(plan.Updates)),
		zap.Int("deletes", len(plan.Deletes)),
		zap.Int("unchanged", plan.Unchanged))

	return reconcile.Apply(s.db.WithContext(ctx), plan, "server_id")
}

// mapServer turns one feed entry into the persisted shape. The volatile
// secondsConnected value is dropped from every player before the list is
// serialized, so a quiet server does not look changed on every cycle.
func mapServer(entry serverEntry) (models.Server, error) {
	players := make([]models.ServerPlayer, 0, len(entry.Players))
	for _, p := range entry.Players {
		players = append(players, models.ServerPlayer{
			Name:           p.Name,
			Score:          p.Score,
			TotalConnected: p.TotalConnected,
		})
	}
	blob, err := json.Marshal(players)
	if err != nil {
		return models.Server{}, fmt.Errorf("serialize player list: %w", err)
	}

	return models.Server{
		ServerID:   entry.ServerID.String(),
		Address:    entry.Address,
		Country:    entry.Location.CountryName,
		CurrentMap: entry.Info.Map,
		MaxPlayers: entry.Info.MaxPlayers,
		Name:       entry.Info.ServerName,
		Players:    string(blob),
		Keywords:   entry.Info.Extra.Keywords,
	}, nil
}

// serverUnchanged compares the externally-sourced fields only.
func serverUnchanged(merged, local models.Server) bool {
	return merged.Address == local.Address &&
		merged.Country == local.Country &&
		merged.CurrentMap == local.CurrentMap &&
		merged.MaxPlayers == local.MaxPlayers &&
		merged.Name == local.Name &&
		merged.Players == local.Players &&
		merged.Keywords == local.Keywords
}
