package sync

// Config holds configuration for the periodic sync jobs.
type Config struct {
	// ServersURL is the server-list API endpoint.
	ServersURL string `mapstructure:"servers_url" default:"https://ql.syncore.org/api/servers"`
	// ServerKeyword filters the server list to the community's servers.
	ServerKeyword string `mapstructure:"server_keyword" default:"qlrace.com"`
	// PlayerProfileURL is the base URL of player profiles; the steamID64 is
	// appended.
	PlayerProfileURL string `mapstructure:"player_profile_url" default:"https://steamcommunity.com/profiles/"`
	// WorkshopItemURL is the base URL of workshop item detail pages; the
	// item id is appended.
	WorkshopItemURL string `mapstructure:"workshop_item_url" default:"https://steamcommunity.com/sharedfiles/filedetails/?id="`
	// WorkshopSearchURL is the base URL of workshop searches; the search
	// text is appended.
	WorkshopSearchURL string `mapstructure:"workshop_search_url" default:"https://steamcommunity.com/workshop/browse/?appid=282440&searchtext="`

	// ServersIntervalSeconds is the period of the server sync job.
	ServersIntervalSeconds int `mapstructure:"servers_interval_seconds" default:"300"`
	// PlayersIntervalSeconds is the period of the player sync job.
	PlayersIntervalSeconds int `mapstructure:"players_interval_seconds" default:"86400"`
	// WorkshopIntervalSeconds is the period of the workshop sync job.
	WorkshopIntervalSeconds int `mapstructure:"workshop_interval_seconds" default:"86400"`
	// RunOnStartup triggers every job once when the scheduler starts.
	RunOnStartup bool `mapstructure:"run_on_startup" default:"false"`
}
