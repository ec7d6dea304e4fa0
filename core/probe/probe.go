package probe

import (
	"context"
	"fmt"
	"time"
)

// Grace is added on top of the probe timeout as an outer wall-clock bound, so a
// hanging probe mechanism still returns.
const Grace = 2 * time.Second

// Prober reports whether a network address answers within timeout.
// Implementations return false on any failure and never block past timeout+Grace.
type Prober interface {
	Probe(ctx context.Context, address string, timeout time.Duration) bool
}

// New returns the prober selected by cfg.Method.
func New(cfg Config) (Prober, error) {
	switch cfg.Method {
	case "icmp", "":
		cmd := cfg.Command
		if cmd == "" {
			cmd = "ping"
		}
		return &PingProber{Command: cmd}, nil
	case "tcp":
		port := cfg.Port
		if port <= 0 {
			port = 445
		}
		return &TCPProber{Port: port}, nil
	default:
		return nil, fmt.Errorf("unknown probe method: %s", cfg.Method)
	}
}

// Timeout converts the configured seconds into a duration, defaulting to 2s.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// bounded runs fn with an outer deadline of timeout+Grace. fn receives the inner context.
func bounded(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) bool) bool {
	outer, cancel := context.WithTimeout(ctx, timeout+Grace)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		defer func() {
			if recover() != nil {
				done <- false
			}
		}()
		done <- fn(outer)
	}()

	select {
	case ok := <-done:
		return ok
	case <-outer.Done():
		return false
	}
}
