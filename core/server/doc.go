// Package server holds the HTTP server configuration.
//
// The application entry point (cmd/start.go) builds the Fiber app; this package only
// defines the settings it reads: listen port, API key and the request body limit that
// bounds presentation uploads.
package server
