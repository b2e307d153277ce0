package images

import (
	"context"
	"fmt"
	"sync"

	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
)

// Rehoster copies partner images into our bucket and rewrites their URLs.
type Rehoster struct {
	store  Store
	bucket string
}

// NewRehoster creates a rehoster writing into the named bucket.
func NewRehoster(store Store, bucket string) *Rehoster {
	return &Rehoster{store: store, bucket: bucket}
}

// Rehost ensures every image is present in the bucket and returns the
// rehosted URL for each input, in input order. Images already in the
// bucket are not re-uploaded. A failed image keeps its original URL and
// is logged; one bad image never fails the batch.
//
// At most four images are in flight at once.
func (r *Rehoster) Rehost(ctx context.Context, urls []string) []string {
	results := make([]string, len(urls))
	errs := make([]error, len(urls))
	sem := make(chan struct{}, constants.MaxConcurrentTransforms)

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			rehosted, err := r.rehostOne(ctx, url)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", url, err)
				results[i] = url
				return
			}
			results[i] = rehosted
		}(i, url)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("Keeping original URLs for images that failed to rehost")
	}

	return results
}

func (r *Rehoster) rehostOne(ctx context.Context, url string) (string, error) {
	path := objectPath(url)

	exists, err := r.store.Exists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := r.store.Upload(ctx, url, path); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%s/%s/%s", constants.ImageHostBaseURL, r.bucket, path), nil
}
