// Package storage mints time-limited URLs for customer documents kept in a blob bucket.
//
// Buckets are opened with gocloud.dev/blob URLs, so the same code serves local files,
// in-memory buckets, S3, GCS and Azure Blob Storage.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gocloud.dev/blob"
	"golang.org/x/sync/errgroup"

	// Register all blob provider drivers
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// DefaultSignConcurrency bounds the parallel signing requests of CreateSignedURLs.
const DefaultSignConcurrency = 8

// BlobStorage signs GET URLs for objects in a single bucket.
type BlobStorage struct {
	bucket      *blob.Bucket
	concurrency int
}

// OpenBlobStorage opens the bucket described by bucketURL.
// Supports: file://, mem://, s3://, gs://, azblob://
func OpenBlobStorage(ctx context.Context, bucketURL string, concurrency int) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob bucket: %w", err)
	}
	return NewBlobStorage(bucket, concurrency), nil
}

// NewBlobStorage wraps an already opened bucket. A non-positive concurrency uses
// DefaultSignConcurrency.
func NewBlobStorage(bucket *blob.Bucket, concurrency int) *BlobStorage {
	if concurrency <= 0 {
		concurrency = DefaultSignConcurrency
	}
	return &BlobStorage{bucket: bucket, concurrency: concurrency}
}

// CreateSignedURL returns a URL granting GET access to objectPath for ttl.
func (s *BlobStorage) CreateSignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, objectPath, &blob.SignedURLOptions{
		Expiry: ttl,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %q: %w", objectPath, err)
	}
	return url, nil
}

// CreateSignedURLs signs every path concurrently. Each path ends up in exactly one of the
// returned maps and a failure never cancels the remaining requests.
func (s *BlobStorage) CreateSignedURLs(
	ctx context.Context,
	objectPaths []string,
	ttl time.Duration,
) (map[string]string, map[string]error) {
	urls := make(map[string]string, len(objectPaths))
	errs := make(map[string]error)

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, objectPath := range objectPaths {
		g.Go(func() error {
			url, err := s.CreateSignedURL(ctx, objectPath, ttl)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[objectPath] = err
				return nil
			}
			urls[objectPath] = url
			return nil
		})
	}

	_ = g.Wait()

	return urls, errs
}

// Close releases the bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
