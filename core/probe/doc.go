// Package probe answers a single question: does a room's network address respond?
//
// Two variants exist, selected by configuration: PingProber (one ICMP echo through the
// system ping binary) and TCPProber (one TCP connect, SMB port by default). Both are
// bounded by the probe timeout plus a fixed grace period and report false rather than
// an error on every failure. A true result is a best-effort signal, not a promise that
// the share is mounted or readable.
package probe
