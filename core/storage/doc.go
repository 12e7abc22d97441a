// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// object operations this tool needs. The abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - ListBuckets: Enumerates all buckets visible to the credentials.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - StatObject: Head-style attribute query without transferring the body.
//   - GetObject / FGetObject: Retrieves content as a stream or to a file.
//   - FPutObject: Uploads a local file (with optional user metadata).
//   - CopyObject: Server-side copy, used for metadata replacement.
//   - RemoveObject: Deletes an object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	buckets, err := client.ListBuckets(ctx)
package storage
