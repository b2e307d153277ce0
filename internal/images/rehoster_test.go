package images

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amby-app/feedsync/pkg/errors"
)

// fakeStore records uploads and serves a configurable existing set.
type fakeStore struct {
	mu       sync.Mutex
	existing map[string]bool
	uploaded []string
	failOn   string
}

func (s *fakeStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.existing[path], nil
}

func (s *fakeStore) Upload(_ context.Context, url, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if url == s.failOn {
		return errors.New("upload failed")
	}
	s.uploaded = append(s.uploaded, path)
	return nil
}

func TestRehostPreservesOrder(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{}}
	rehoster := NewRehoster(store, "amby")

	urls := []string{
		"https://cdn.partner.com/img/1.jpg",
		"https://cdn.partner.com/img/2.jpg",
		"https://cdn.partner.com/img/3.jpg",
	}

	got := rehoster.Rehost(context.Background(), urls)

	assert.Equal(t, []string{
		"https://storage.googleapis.com/amby/cdn.partner.com/img/1.jpg",
		"https://storage.googleapis.com/amby/cdn.partner.com/img/2.jpg",
		"https://storage.googleapis.com/amby/cdn.partner.com/img/3.jpg",
	}, got)
	assert.Len(t, store.uploaded, 3)
}

func TestRehostSkipsExisting(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{
		"cdn.partner.com/img/1.jpg": true,
	}}
	rehoster := NewRehoster(store, "amby")

	got := rehoster.Rehost(context.Background(), []string{"https://cdn.partner.com/img/1.jpg"})

	require.Len(t, got, 1)
	assert.Equal(t, "https://storage.googleapis.com/amby/cdn.partner.com/img/1.jpg", got[0])
	assert.Empty(t, store.uploaded)
}

func TestRehostKeepsOriginalURLOnFailure(t *testing.T) {
	store := &fakeStore{
		existing: map[string]bool{},
		failOn:   "https://cdn.partner.com/img/2.jpg",
	}
	rehoster := NewRehoster(store, "amby")

	got := rehoster.Rehost(context.Background(), []string{
		"https://cdn.partner.com/img/1.jpg",
		"https://cdn.partner.com/img/2.jpg",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "https://storage.googleapis.com/amby/cdn.partner.com/img/1.jpg", got[0])
	// The failed image keeps its source URL so the export row stays valid.
	assert.Equal(t, "https://cdn.partner.com/img/2.jpg", got[1])
}

func TestRehostEmptyInput(t *testing.T) {
	rehoster := NewRehoster(&fakeStore{existing: map[string]bool{}}, "amby")
	assert.Empty(t, rehoster.Rehost(context.Background(), nil))
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "cdn.partner.com/a.jpg", objectPath("https://cdn.partner.com/a.jpg"))
	assert.Equal(t, "crm.bewearcy.com/a.jpg", objectPath("http://crm.bewearcy.com/a.jpg"))
}
