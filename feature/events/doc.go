// Package events schedules the conferences that uploads and room scans belong to.
package events
