package populate

// Config holds configuration for the bulk import.
type Config struct {
	// APIURL is the base URL of the qlrace.com API.
	APIURL string `mapstructure:"api_url" default:"https://qlrace.com/api"`
	// MapLimit caps the number of maps imported. Zero imports everything;
	// a small limit keeps the row count inside constrained hosting plans.
	MapLimit int `mapstructure:"map_limit" default:"0"`
}
