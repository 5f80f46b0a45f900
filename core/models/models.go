package models

import (
	"fmt"
	"time"
)

// Model is the base for all persisted entities.
type Model struct {
	ID           uint      `gorm:"primaryKey"`
	DateCreated  time.Time `gorm:"column:date_created;autoCreateTime"`
	DateModified time.Time `gorm:"column:date_modified;autoUpdateTime"`
}

// Player is a known player. SteamID is the stable external identifier and
// never changes; Name and AvatarURL are refreshed by the player sync job.
type Player struct {
	Model
	Name      string `gorm:"column:name"`
	SteamID   string `gorm:"column:steam_id;uniqueIndex"`
	AvatarURL string `gorm:"column:avatar_url"`
}

// ExternalKey returns the reconciliation key for a player.
func (p Player) ExternalKey() string {
	return p.SteamID
}

// Map is a race map. Rows are created once by the populate command; the
// workshop sync job only maintains the WorkshopItemID linkage.
type Map struct {
	Model
	Name           string `gorm:"column:name;uniqueIndex"`
	WorkshopItemID *uint  `gorm:"column:workshop_item_id"`
}

// Record is a single timed attempt. Rows are append-only: they are inserted
// by the populate command and never modified by the sync jobs.
type Record struct {
	Model
	Mode      Mode      `gorm:"column:mode"`
	MapID     uint      `gorm:"column:map_id"`
	PlayerID  uint      `gorm:"column:player_id"`
	Time      int       `gorm:"column:time"`
	MatchGUID string    `gorm:"column:match_guid"`
	Date      time.Time `gorm:"column:date"`
}

// FormatTime renders the record time in milliseconds as m:ss.mmm (or s.mmm
// for sub-minute times). Zero renders as "-".
func (r Record) FormatTime() string {
	if r.Time <= 0 {
		return "-"
	}
	minutes := r.Time / 60000
	seconds := (r.Time % 60000) / 1000
	millis := r.Time % 1000
	if minutes == 0 {
		return fmt.Sprintf("%d.%03d", seconds, millis)
	}
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}

// FormatDate renders the record date for listings.
func (r Record) FormatDate() string {
	if r.Date.IsZero() {
		return "-"
	}
	return r.Date.UTC().Format("2006-01-02 15:04:05 UTC")
}

// WorkshopItem holds the scraped metadata of a Steam workshop map item.
// ItemID is the stable external identifier; every other field is refreshed by
// the workshop sync job, keeping the previous value when extraction misses.
type WorkshopItem struct {
	Model
	ItemID        string    `gorm:"column:item_id;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	AuthorSteamID string    `gorm:"column:author_steam_id"`
	Description   string    `gorm:"column:description"`
	Date          time.Time `gorm:"column:date"`
	Size          string    `gorm:"column:size"`
	NumComments   int       `gorm:"column:num_comments"`
	Score         int       `gorm:"column:score"`
	NumScores     int       `gorm:"column:num_scores"`
	PreviewURL    string    `gorm:"column:preview_url"`
}

// ExternalKey returns the reconciliation key for a workshop item.
func (w WorkshopItem) ExternalKey() string {
	return w.ItemID
}

// Server is the live state of one game server. Rows are fully replaced each
// sync cycle; servers that drop out of the external feed are deleted.
type Server struct {
	Model
	ServerID   string `gorm:"column:server_id;uniqueIndex"`
	Address    string `gorm:"column:address"`
	Country    string `gorm:"column:country"`
	CurrentMap string `gorm:"column:current_map"`
	MaxPlayers int    `gorm:"column:max_players"`
	Name       string `gorm:"column:name"`
	Players    string `gorm:"column:players"`
	Keywords   string `gorm:"column:keywords"`
}

// ExternalKey returns the reconciliation key for a server.
func (s Server) ExternalKey() string {
	return s.ServerID
}

// ServerPlayer is one entry of the serialized Server.Players blob. The
// volatile secondsConnected value from the feed is intentionally not part of
// it, so an otherwise unchanged server does not churn on every cycle.
type ServerPlayer struct {
	Name           string `json:"name"`
	Score          int    `json:"score"`
	TotalConnected string `json:"totalConnected"`
}

// All returns one zero value per persisted entity, in migration order.
// Used by AutoMigrate and the test helpers.
func All() []any {
	return []any{&Player{}, &Map{}, &WorkshopItem{}, &Record{}, &Server{}}
}
