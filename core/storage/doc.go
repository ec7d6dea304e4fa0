// Package storage provides where uploaded presentation files are kept.
//
// # Backend
//
// Backend is a small capability interface (Save returning key and etag) with two
// variants selected by configuration: a local-disk store (temp file, SHA-256 etag,
// fsync, atomic rename) and an S3/MinIO object store.
//
// # Client
//
// Client wraps the subset of the MinIO Go client the application needs. It is used by
// the s3 backend and by the storage integrity check; core/storage/mocks provides a
// testify mock of it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	backend, err := storage.NewBackend(cfg.Storage, client)
//	res, err := backend.Save(ctx, "keynote.pptx", file, size)
package storage
