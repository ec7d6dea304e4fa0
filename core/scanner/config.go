package scanner

import "time"

// Config holds configuration for share scanning and file matching.
type Config struct {
	// MountRoot is where room shares are mounted when a room has no explicit share path
	// (the share of a room at 10.0.0.7 is expected at <MountRoot>/10.0.0.7).
	MountRoot string `mapstructure:"mount_root" default:"/mnt/rooms"`
	// TimeoutSeconds is the per-room deadline applied around a scan.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// MatchThreshold is the minimum filename similarity for a match.
	MatchThreshold float64 `mapstructure:"match_threshold" default:"0.6"`
	// Concurrency bounds how many rooms an event-wide scan processes at once.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// Kinds optionally narrows scanned files (comma separated: video,audio,document,other).
	Kinds string `mapstructure:"kinds" default:""`
}

// Timeout converts the configured seconds into a duration, defaulting to one minute.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
