// Package config provides configuration management for the qldf service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections owned by the packages that consume them:
//   - Database: PostgreSQL/SQLite connection details
//   - Log: Logging level and format
//   - Fetch: outbound HTTP client identity and timeouts
//   - Storage: S3/MinIO snapshot archive settings
//   - Sync: external service URLs and job intervals
//   - Listing: pagination defaults
//   - Populate: bulk import source and limits
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.ServersURL)
package config
