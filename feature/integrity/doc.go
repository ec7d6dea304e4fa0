// Package integrity provides health checks for the infrastructure the venue manager relies on.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database matches the rooms, events, speakers,
//     uploads and devices models (tables, columns, declared types).
//   - Storage: Verifies that the upload bucket exists when the s3 backend is configured.
//     The local backend always passes.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
