// Package images rehosts partner product images onto our own bucket so
// exported feeds never point at partner infrastructure.
package images

import (
	"context"
	"io"
	"net/http"
	"strings"

	gcs "cloud.google.com/go/storage"

	"github.com/amby-app/feedsync/pkg/errors"
)

// Store is the object storage the rehoster copies images into.
type Store interface {
	// Exists reports whether an object already exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Upload fetches url and writes its body to path.
	Upload(ctx context.Context, url, path string) error
}

// GCSStore stores objects in a Google Cloud Storage bucket.
type GCSStore struct {
	bucket *gcs.BucketHandle
	http   *http.Client
}

// NewGCSStore creates a store backed by the named bucket.
func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{
		bucket: client.Bucket(bucket),
		http:   http.DefaultClient,
	}
}

// Exists reports whether the object is already in the bucket.
func (s *GCSStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.bucket.Object(path).Attrs(ctx)
	if err == gcs.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapResource("stat", "object", path, err)
	}
	return true, nil
}

// Upload streams the image at url into the bucket at path.
func (s *GCSStore) Upload(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapResource("create", "request", url, err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return errors.WrapResource("fetch", "image", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.WrapAPI(url, resp.StatusCode, errors.ErrSourceUnavailable)
	}

	writer := s.bucket.Object(path).NewWriter(ctx)
	if _, err := io.Copy(writer, resp.Body); err != nil {
		writer.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := writer.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}

	return nil
}

// objectPath derives the bucket object path from a source image URL by
// stripping the scheme. Keeping the host in the path avoids collisions
// between partners that reuse file names.
func objectPath(url string) string {
	path := strings.TrimPrefix(url, "https://")
	return strings.TrimPrefix(path, "http://")
}
