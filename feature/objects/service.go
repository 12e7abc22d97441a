package objects

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectHeaders holds the attributes returned by a head-style query.
// Ephemeral; never cached across calls.
type ObjectHeaders struct {
	// ContentLength is the object body size in bytes.
	ContentLength int64 `json:"content_length"`
	// LastModified is the object's last modification timestamp.
	LastModified time.Time `json:"last_modified"`
	// UserMetadata is the user-defined metadata mapping.
	UserMetadata map[string]string `json:"user_metadata"`
	// ResponseHeaders carries the transport-level response headers.
	ResponseHeaders http.Header `json:"response_headers"`
}

// Service performs object operations against one verified bucket.
//
// Not safe for concurrent use without external synchronization: it owns a
// single client handle and holds no internal locking.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	confirm Confirmer
}

// NewService builds a Service bound to bucket after verifying the bucket is
// present in the account's bucket listing. The check runs once here and is
// never repeated per call.
//
// Returns an error wrapping ErrBucketNotFound when the bucket is absent, or
// ErrProvider when the listing call itself fails.
func NewService(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, confirm Confirmer) (*Service, error) {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}

	s := &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		confirm: confirm,
	}

	names, err := s.Buckets(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(names, bucket) {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	return s, nil
}

// Bucket returns the bound bucket name.
func (s *Service) Bucket() string {
	return s.bucket
}

// Buckets returns all bucket names visible to the credentials, in listing order.
func (s *Service) Buckets(ctx context.Context) ([]string, error) {
	infos, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names, nil
}

// ListObjects returns every object key in the bucket, concatenating the
// SDK's paginated listing in order. An empty bucket yields an empty slice
// and an informational notice, never an error.
func (s *Service) ListObjects(ctx context.Context) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", s.bucket, obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	if len(keys) == 0 {
		s.logger.Info("Bucket is empty", zap.String("bucket", s.bucket))
	}
	return keys, nil
}

// ListFiles returns the object keys that start with prefix (all keys when
// prefix is empty), excluding directory markers (keys ending in "/").
func (s *Service) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.ListObjects(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasSuffix(key, "/") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		files = append(files, key)
	}
	return files, nil
}

// Download fetches an object into downloadPath. A missing object is an
// expected outcome and reported as (false, nil) with the destination left
// untouched; other transport errors propagate.
func (s *Service) Download(ctx context.Context, key, downloadPath string) (bool, error) {
	s.logger.Info("Downloading object",
		zap.String("source", s.bucket+"/"+key),
		zap.String("destination", downloadPath))

	err := s.client.FGetObject(ctx, s.bucket, key, downloadPath, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			s.logger.Error("Object not found", zap.String("key", key))
			return false, nil
		}
		return false, fmt.Errorf("failed to download %s: %w", key, err)
	}
	return true, nil
}

// Upload stores the file at filePath under key, overwriting any existing
// object. Metadata is attached as user metadata only when non-empty.
func (s *Service) Upload(ctx context.Context, filePath, key string, metadata map[string]string) error {
	s.logger.Info("Uploading file",
		zap.String("file", filepath.Base(filePath)),
		zap.String("destination", s.bucket+"/"+key))

	opts := minio.PutObjectOptions{}
	if len(metadata) > 0 {
		opts.UserMetadata = metadata
	}

	if _, err := s.client.FPutObject(ctx, s.bucket, key, filePath, opts); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Stat performs a head query for the object's attributes.
//
// A missing object yields an error wrapping ErrObjectNotFound; any other
// failure surfaces as itself so transient transport errors are not mistaken
// for absence.
func (s *Service) Stat(ctx context.Context, key string) (*ObjectHeaders, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			s.logger.Error("Object not found", zap.String("key", key))
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	return &ObjectHeaders{
		ContentLength:   info.Size,
		LastModified:    info.LastModified,
		UserMetadata:    info.UserMetadata,
		ResponseHeaders: info.Metadata,
	}, nil
}

// Size returns the object's content length, or 0 when the object is absent.
func (s *Service) Size(ctx context.Context, key string) (int64, error) {
	headers, err := s.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return headers.ContentLength, nil
}

// Metadata returns the object's user metadata mapping, or nil when the
// object is absent.
func (s *Service) Metadata(ctx context.Context, key string) (map[string]string, error) {
	headers, err := s.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return headers.UserMetadata, nil
}

// LastModified returns the object's modification timestamp, or nil when the
// object is absent.
func (s *Service) LastModified(ctx context.Context, key string) (*time.Time, error) {
	headers, err := s.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &headers.LastModified, nil
}

// ResponseHeaders returns the transport-level headers from a head query, or
// nil when the object is absent.
func (s *Service) ResponseHeaders(ctx context.Context, key string) (http.Header, error) {
	headers, err := s.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return headers.ResponseHeaders, nil
}

// UpdateMetadata replaces the object's user metadata with meta via a
// server-side self-copy. Replace semantics, not merge: keys absent from
// meta are dropped.
//
// An absent object returns (false, nil) without contacting the copy
// endpoint; a failed copy returns (false, err).
func (s *Service) UpdateMetadata(ctx context.Context, key string, meta map[string]string) (bool, error) {
	if _, err := s.Stat(ctx, key); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	src := minio.CopySrcOptions{
		Bucket: s.bucket,
		Object: key,
	}
	dst := minio.CopyDestOptions{
		Bucket:          s.bucket,
		Object:          key,
		UserMetadata:    meta,
		ReplaceMetadata: true,
	}

	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		s.logger.Error("Metadata update failed", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("failed to update metadata of %s: %w", key, err)
	}
	return true, nil
}

// Open returns a streaming reader over the object body. The caller must
// close it.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	body, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return body, nil
}

// Sha256 returns the hex-encoded SHA-256 digest of the full object body.
// The body is read entirely into the hash; acceptable for small objects only.
func (s *Service) Sha256(ctx context.Context, key string) (string, error) {
	body, err := s.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	h := sha256.New()
	if _, err := io.Copy(h, body); err != nil {
		s.logger.Error("Failed to read object for hashing", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Delete removes an object. With askConfirm set it first consults the
// injected Confirmer and is a no-op when declined. A missing object is a
// no-op with an error notice, not a failure.
func (s *Service) Delete(ctx context.Context, key string, askConfirm bool) error {
	s.logger.Info("Deleting object",
		zap.String("key", key),
		zap.String("bucket", s.bucket))

	if askConfirm && !s.confirm(fmt.Sprintf("Are you sure you want to delete the object %q?", key)) {
		s.logger.Info("Deletion aborted", zap.String("key", key))
		return nil
	}

	if _, err := s.Stat(ctx, key); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			s.logger.Error("Can't delete object", zap.String("key", key))
			return nil
		}
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// DeleteBatch removes several objects behind a single confirmation. When
// declined, nothing is deleted; when accepted, each key is removed with the
// per-item confirmation suppressed.
func (s *Service) DeleteBatch(ctx context.Context, keys []string) error {
	s.logger.Info("Objects to be removed",
		zap.String("bucket", s.bucket),
		zap.Strings("keys", keys))

	if !s.confirm(fmt.Sprintf("Delete %d object(s) from %q?", len(keys), s.bucket)) {
		s.logger.Info("Batch deletion aborted")
		return nil
	}

	for _, key := range keys {
		if err := s.Delete(ctx, key, false); err != nil {
			return err
		}
	}
	return nil
}
