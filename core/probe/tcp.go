package probe

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"
)

// TCPProber treats a successful TCP connect as reachability. It suits venues where
// ICMP is filtered but the file share port is open.
type TCPProber struct {
	Port int
}

// Probe dials address:Port once.
func (p *TCPProber) Probe(ctx context.Context, address string, timeout time.Duration) bool {
	address = strings.TrimSpace(address)
	if address == "" {
		return false
	}
	return bounded(ctx, timeout, func(ctx context.Context) bool {
		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(p.Port)))
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	})
}
