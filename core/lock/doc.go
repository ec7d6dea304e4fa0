// Package lock enforces that at most one reconciliation runs per room.
//
// Two concurrent commits against the same room's expected records would race, so
// every run takes the room's file lock first and gives up with ErrBusy when it is
// held. Different rooms never contend.
package lock
