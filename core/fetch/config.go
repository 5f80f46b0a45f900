package fetch

// Config holds configuration for the outbound HTTP client.
type Config struct {
	// UserAgent is the fixed client identifier sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"qldf.com worker"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
