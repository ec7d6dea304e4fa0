// Package files receives presentation files and publishes per-event manifests.
//
// POST /files/upload stores the bytes through a storage.Backend (local disk or
// S3/MinIO) and creates the matching Upload row with the backend key and ETag.
// GET /files/manifest/:event_id lists {id, key, etag, updated_at} so venue
// devices can tell which objects changed.
package files
