// Package rooms exposes venue rooms over HTTP and runs reconciliation for them.
//
// # Endpoints
//
//   - PUT /rooms/:id/ping: one bounded liveness probe ("green" or "red").
//   - GET /rooms/:id/status: last probe result, kept in an expiring LRU cache.
//   - PUT /rooms/:id/scan: probe, scan the share, match files to expected uploads
//     and, unless update_uploads=false, mark the matches delivered.
//   - POST /rooms/:id/verify-uploads: delivered and missing uploads from the database only.
//   - PUT /events/:id/scan: every room of an event, with bounded concurrency.
//   - Room CRUD under /rooms and typed upload updates under PATCH /uploads/:id.
//
// # Concurrency
//
// A room scan holds a file lock for the room (see core/lock), so a second scan of
// the same room gets 409 while one is running. Concurrent pings of one room are
// collapsed into a single probe.
//
// The Repository implements reconcile.Datastore on gorm. Matches are committed in
// one transaction.
package rooms
