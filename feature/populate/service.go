package populate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qldf/core/fetch"
	"qldf/core/models"
	"qldf/core/snapshot"
)

// cacheRunID keys the archived import payloads. The import is re-runnable
// from cache, so the objects live under a fixed run id instead of a fresh
// uuid per invocation.
const cacheRunID = "cache"

// Fetcher is the outbound HTTP capability the import needs. *fetch.Client
// satisfies it; tests substitute a stub.
type Fetcher interface {
	Text(ctx context.Context, url string, params []fetch.Param) (string, error)
}

// Options tunes one import run.
type Options struct {
	// FromCache reads the map list and records from the snapshot archive
	// instead of the API, when archived payloads exist.
	FromCache bool
}

// Service performs the bulk import.
type Service struct {
	db        *gorm.DB
	fetcher   Fetcher
	snapshots *snapshot.Archive
	cfg       Config
	logger    *zap.Logger
}

// NewService creates the import service. snapshots may be nil (no caching).
func NewService(db *gorm.DB, fetcher Fetcher, snapshots *snapshot.Archive, cfg Config, log *zap.Logger) *Service {
	return &Service{
		db:        db,
		fetcher:   fetcher,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    log,
	}
}

// apiRecord is one record as served by the qlrace.com map endpoint, plus the
// map name it was fetched for.
type apiRecord struct {
	Mode      int         `json:"mode"`
	PlayerID  json.Number `json:"player_id"`
	Name      string      `json:"name"`
	Time      int         `json:"time"`
	MatchGUID string      `json:"match_guid"`
	Date      string      `json:"date"`
	Map       string      `json:"map"`
}

// recordQueries are the four physics/weapons combinations the API splits
// records into. Together they cover every mode the API serves.
var recordQueries = []struct {
	weapons string
	physics string
}{
	{"false", "classic"},
	{"true", "classic"},
	{"false", "turbo"},
	{"true", "turbo"},
}

// Run imports maps, records and players, in that dependency order, inside
// one transaction. It is meant for an empty database; rerunning it against
// populated tables fails on the unique indexes instead of duplicating rows.
func (s *Service) Run(ctx context.Context, opts Options) error {
	maps, err := s.loadMaps(ctx, opts)
	if err != nil {
		return err
	}
	if s.cfg.MapLimit > 0 && len(maps) > s.cfg.MapLimit {
		s.logger.Info("map list limited", zap.Int("limit", s.cfg.MapLimit))
		maps = maps[:s.cfg.MapLimit]
	}

	records, err := s.loadRecords(ctx, maps, opts)
	if err != nil {
		return err
	}

	// Unique players, by steam id. Later records win the display name.
	playerNames := make(map[string]string)
	for _, r := range records {
		playerNames[r.PlayerID.String()] = r.Name
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mapIDs := make(map[string]uint, len(maps))
		for _, name := range maps {
			m := models.Map{Name: name}
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("insert map %s: %w", name, err)
			}
			mapIDs[name] = m.ID
		}

		playerIDs := make(map[string]uint, len(playerNames))
		for steamID, name := range playerNames {
			p := models.Player{SteamID: steamID, Name: name}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("insert player %s: %w", steamID, err)
			}
			playerIDs[steamID] = p.ID
		}

		rows := make([]models.Record, 0, len(records))
		for _, r := range records {
			rows = append(rows, models.Record{
				Mode:      models.Mode(r.Mode),
				MapID:     mapIDs[r.Map],
				PlayerID:  playerIDs[r.PlayerID.String()],
				Time:      r.Time,
				MatchGUID: r.MatchGUID,
				Date:      s.parseDate(r.Date),
			})
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return fmt.Errorf("insert records: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("import finished",
		zap.Int("maps", len(maps)),
		zap.Int("players", len(playerNames)),
		zap.Int("records", len(records)))
	return nil
}

// loadMaps returns the map name list, from cache or the API.
func (s *Service) loadMaps(ctx context.Context, opts Options) ([]string, error) {
	var feed struct {
		Maps []string `json:"maps"`
	}

	if opts.FromCache {
		if payload, err := s.snapshots.Load(ctx, "populate", cacheRunID, "maps.json"); err == nil {
			if err := json.Unmarshal(payload, &feed.Maps); err != nil {
				return nil, fmt.Errorf("decode cached map list: %w", err)
			}
			s.logger.Info("map list loaded from cache", zap.Int("maps", len(feed.Maps)))
			return feed.Maps, nil
		}
	}

	raw, err := s.fetcher.Text(ctx, s.cfg.APIURL+"/maps", nil)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &feed); err != nil {
		return nil, fmt.Errorf("decode map list: %w", err)
	}

	if payload, err := json.Marshal(feed.Maps); err == nil {
		s.snapshots.Store(ctx, "populate", cacheRunID, "maps.json", payload)
	}
	s.logger.Info("map list fetched", zap.Int("maps", len(feed.Maps)))
	return feed.Maps, nil
}

// loadRecords returns every record of the given maps, from cache or by
// querying the four mode combinations per map.
func (s *Service) loadRecords(ctx context.Context, maps []string, opts Options) ([]apiRecord, error) {
	if opts.FromCache {
		if payload, err := s.snapshots.Load(ctx, "populate", cacheRunID, "records.json"); err == nil {
			var cached []apiRecord
			if err := json.Unmarshal(payload, &cached); err != nil {
				return nil, fmt.Errorf("decode cached records: %w", err)
			}
			s.logger.Info("records loaded from cache", zap.Int("records", len(cached)))
			return cached, nil
		}
	}

	var records []apiRecord
	for _, mapName := range maps {
		for _, q := range recordQueries {
			params := []fetch.Param{
				{Key: "weapons", Value: q.weapons},
				{Key: "physics", Value: q.physics},
			}
			raw, err := s.fetcher.Text(ctx, s.cfg.APIURL+"/map/"+mapName, params)
			if err != nil {
				return nil, err
			}
			var feed struct {
				Records []apiRecord `json:"records"`
			}
			if err := json.Unmarshal([]byte(raw), &feed); err != nil {
				return nil, fmt.Errorf("decode records for %s: %w", mapName, err)
			}
			for i := range feed.Records {
				feed.Records[i].Map = mapName
			}
			records = append(records, feed.Records...)
		}
	}

	if payload, err := json.Marshal(records); err == nil {
		s.snapshots.Store(ctx, "populate", cacheRunID, "records.json", payload)
	}
	s.logger.Info("records fetched",
		zap.Int("maps", len(maps)),
		zap.Int("records", len(records)))
	return records, nil
}

// dateLayouts covers the timestamp shapes the API has served over time.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (s *Service) parseDate(text string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC()
		}
	}
	s.logger.Warn("unparseable record date", zap.String("date", text))
	return time.Time{}
}
