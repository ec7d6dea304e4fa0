package probe

// Config holds configuration for room liveness probing.
type Config struct {
	// Method selects the probe variant (icmp, tcp).
	Method string `mapstructure:"method" default:"icmp"`
	// TimeoutSeconds bounds a single probe.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"2"`
	// Port is the TCP port dialled by the tcp method (445 is SMB).
	Port int `mapstructure:"port" default:"445"`
	// Command is the ping binary used by the icmp method.
	Command string `mapstructure:"command" default:"ping"`
	// StatusTTLSeconds is how long the last probe result stays available to status queries.
	StatusTTLSeconds int `mapstructure:"status_ttl_seconds" default:"300"`
}
