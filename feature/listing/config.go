package listing

// Config holds configuration for the listing queries.
type Config struct {
	// RowsPerPage is the default page size of paginated listings.
	RowsPerPage int `mapstructure:"rows_per_page" default:"20"`
	// NumRecentRecords is the size of the recent-records feed.
	NumRecentRecords int `mapstructure:"num_recent_records" default:"25"`
	// NumRecentWorldRecords is the size of the recent world-records feed.
	NumRecentWorldRecords int `mapstructure:"num_recent_world_records" default:"25"`
}
