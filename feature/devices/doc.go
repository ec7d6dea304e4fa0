// Package devices keeps track of venue machines through heartbeats.
package devices
