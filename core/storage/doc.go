// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the byte
// storage behind file uploads. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - EnsureBucket: Creates the upload bucket on startup when missing.
//   - PutObject / GetObject: Write and stream uploaded files.
//   - RemoveObject: Best-effort removal when an upload's metadata is deleted.
//   - ListObjects / RemoveObjects: Used by the orphaned-upload report.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	created, err := storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
