// Package config provides configuration management for the Venue Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each setting as `default:"..."` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: MySQL (or SQLite) connection details
//   - Storage: upload backend selection (local disk or S3/MinIO) and credentials
//   - Log: Logging level and format
//   - Probe: room liveness probe method, timeout and port
//   - Scan: share mount root, per-room scan deadline, match threshold and batch concurrency
//   - Lock: directory holding per-room lock files
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Probe.Method)
package config
