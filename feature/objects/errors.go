package objects

import "errors"

var (
	// ErrBucketNotFound indicates the bound bucket is absent from the
	// account's bucket listing. Raised at construction time only; a service
	// bound to a missing bucket is never returned.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrProvider indicates an unexpected failure of the provider's bucket
	// listing call, distinct from a merely missing bucket.
	ErrProvider = errors.New("provider error while listing buckets")

	// ErrObjectNotFound indicates the requested object key does not exist
	// in the bucket.
	ErrObjectNotFound = errors.New("object not found")
)
