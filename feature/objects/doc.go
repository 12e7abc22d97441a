// Package objects implements bucket-bound object operations.
//
// The Service wraps a storage client and a single verified bucket name: the
// bucket's existence is checked against the account's bucket listing once at
// construction, and every operation targets that bucket implicitly.
//
// # Operations
//
//   - ListObjects / ListFiles: key enumeration, with directory-marker and
//     prefix filtering for the file variant.
//   - Download / Upload: file transfers, with optional user metadata on
//     upload.
//   - Stat and its derivations (Size, Metadata, LastModified,
//     ResponseHeaders): head-style attribute queries.
//   - UpdateMetadata: full metadata replacement via server-side self-copy.
//   - Sha256: content digest of the whole body (small objects only).
//   - Delete / DeleteBatch: destructive operations gated behind an injected
//     confirmation strategy.
//   - Buckets: account-wide bucket name listing.
//
// # Not-Found Semantics
//
// Object absence is an expected, recoverable outcome on the read paths, so
// it is reported as a sentinel value (false/nil/zero) rather than an error.
// Stat distinguishes absence (ErrObjectNotFound) from transport failures,
// which surface as themselves.
//
// # HTTP Endpoints
//
// The Handler exposes the same operations under /objects and /buckets for
// the gateway; see RegisterRoutes.
package objects
