package probe

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// PingProber sends a single ICMP echo through the system ping binary.
type PingProber struct {
	// Command is the ping executable (name or path).
	Command string
}

// Probe returns true only if ping exits with status 0.
func (p *PingProber) Probe(ctx context.Context, address string, timeout time.Duration) bool {
	address = strings.TrimSpace(address)
	if address == "" || strings.HasPrefix(address, "-") {
		return false
	}
	return bounded(ctx, timeout, func(ctx context.Context) bool {
		cmd := exec.CommandContext(ctx, p.Command, pingArgs(runtime.GOOS, address, timeout)...)
		return cmd.Run() == nil
	})
}

// pingArgs builds a one-echo invocation; windows takes the wait in milliseconds.
func pingArgs(goos, address string, timeout time.Duration) []string {
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}
	if goos == "windows" {
		return []string{"-n", "1", "-w", strconv.Itoa(secs * 1000), address}
	}
	return []string{"-c", "1", "-W", strconv.Itoa(secs), address}
}
