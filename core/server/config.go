package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, which bounds presentation uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"2048"`
}

// BodyLimitBytes returns the request body limit in bytes, falling back to fiber's 4MB default.
func (c Config) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
