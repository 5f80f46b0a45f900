package listing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qldf/core/models"
	"qldf/core/rank"
)

// Sort names a listing sort order. Sorting is applied to already-ranked
// rows; it never influences the rank values themselves.
type Sort string

const (
	SortRank Sort = "rank"
	SortTime Sort = "time"
	SortDate Sort = "date"
	SortName Sort = "name"
)

// Page is a 1-based page request. A zero Size falls back to the configured
// default.
type Page struct {
	Number int
	Size   int
}

// Row is one listing line: a ranked record decorated with display names.
type Row struct {
	rank.Standing
	PlayerName string
	MapName    string
}

// Listing is one page of ranked rows.
type Listing struct {
	Rows     []Row
	Total    int
	Page     int
	PageSize int
}

// Service answers the listing queries of the web layer.
type Service struct {
	db     *gorm.DB
	cfg    Config
	logger *zap.Logger
}

// NewService creates the listing service.
func NewService(db *gorm.DB, cfg Config, log *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, logger: log}
}

// MapRecords lists the standings of one map and mode.
func (s *Service) MapRecords(ctx context.Context, mapID uint, mode models.Mode, sortBy Sort, page Page) (*Listing, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).
		Where("map_id = ? AND mode = ?", mapID, mode).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load map records: %w", err)
	}

	rows, err := s.decorate(ctx, rank.Compute(records))
	if err != nil {
		return nil, err
	}
	sortRows(rows, sortBy)
	return s.paginate(rows, page), nil
}

// PlayerRecords lists one player's standings. Ranks are computed against
// every attempt in each of the player's partitions, then filtered down to
// the player's rows.
func (s *Service) PlayerRecords(ctx context.Context, playerID uint, sortBy Sort, page Page) (*Listing, error) {
	var records []models.Record
	err := s.db.WithContext(ctx).
		Where("map_id IN (?)", s.db.Model(&models.Record{}).
			Select("DISTINCT map_id").Where("player_id = ?", playerID)).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load partition records: %w", err)
	}

	standings := rank.ForPlayer(rank.Compute(records), playerID)
	rows, err := s.decorate(ctx, standings)
	if err != nil {
		return nil, err
	}
	sortRows(rows, sortBy)
	return s.paginate(rows, page), nil
}

// RecentRecords lists the latest records across all maps, ranked against
// their full partitions.
func (s *Service) RecentRecords(ctx context.Context) ([]Row, error) {
	rows, err := s.allRanked(ctx)
	if err != nil {
		return nil, err
	}
	sortRows(rows, SortDate)
	return head(rows, s.cfg.NumRecentRecords), nil
}

// RecentWorldRecords lists the latest partition-leading records.
func (s *Service) RecentWorldRecords(ctx context.Context) ([]Row, error) {
	rows, err := s.allRanked(ctx)
	if err != nil {
		return nil, err
	}
	leaders := rows[:0:0]
	for _, row := range rows {
		if row.IsWorldRecord() {
			leaders = append(leaders, row)
		}
	}
	sortRows(leaders, SortDate)
	return head(leaders, s.cfg.NumRecentWorldRecords), nil
}

func (s *Service) allRanked(ctx context.Context) ([]Row, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return s.decorate(ctx, rank.Compute(records))
}

// decorate joins display names onto standings.
func (s *Service) decorate(ctx context.Context, standings []rank.Standing) ([]Row, error) {
	var maps []models.Map
	if err := s.db.WithContext(ctx).Find(&maps).Error; err != nil {
		return nil, fmt.Errorf("load maps: %w", err)
	}
	var players []models.Player
	if err := s.db.WithContext(ctx).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}

	mapNames := make(map[uint]string, len(maps))
	for _, m := range maps {
		mapNames[m.ID] = m.Name
	}
	playerNames := make(map[uint]string, len(players))
	for _, p := range players {
		playerNames[p.ID] = p.Name
	}

	rows := make([]Row, 0, len(standings))
	for _, standing := range standings {
		rows = append(rows, Row{
			Standing:   standing,
			PlayerName: playerNames[standing.PlayerID],
			MapName:    mapNames[standing.MapID],
		})
	}
	return rows, nil
}

// sortRows orders already-ranked rows. Date sorts newest first; everything
// else ascending with stable tie-breaks.
func sortRows(rows []Row, sortBy Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch sortBy {
		case SortTime:
			if rows[i].Time != rows[j].Time {
				return rows[i].Time < rows[j].Time
			}
		case SortDate:
			if !rows[i].Date.Equal(rows[j].Date) {
				return rows[i].Date.After(rows[j].Date)
			}
		case SortName:
			ni, nj := strings.ToLower(rows[i].PlayerName), strings.ToLower(rows[j].PlayerName)
			if ni != nj {
				return ni < nj
			}
		default: // SortRank
			if rows[i].Rank != rows[j].Rank {
				return rows[i].Rank < rows[j].Rank
			}
		}
		return rows[i].ID < rows[j].ID
	})
}

func (s *Service) paginate(rows []Row, page Page) *Listing {
	size := page.Size
	if size <= 0 {
		size = s.cfg.RowsPerPage
	}
	number := page.Number
	if number < 1 {
		number = 1
	}

	start := (number - 1) * size
	if start > len(rows) {
		start = len(rows)
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}

	return &Listing{
		Rows:     rows[start:end],
		Total:    len(rows),
		Page:     number,
		PageSize: size,
	}
}

func head(rows []Row, n int) []Row {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
