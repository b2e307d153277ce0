package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amby-app/feedsync/pkg/constants"
)

func pagingOffset(t *testing.T, r *http.Request) int {
	t.Helper()

	var body struct {
		Query struct {
			Paging struct {
				Offset int `json:"offset"`
			} `json:"paging"`
		} `json:"query"`
		IncludeHiddenProducts bool `json:"includeHiddenProducts"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	require.True(t, body.IncludeHiddenProducts)

	return body.Query.Paging.Offset
}

func feedPage(count, offset int) []Product {
	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, Product{
			Slug: fmt.Sprintf("item-%d", offset+i),
			Name: fmt.Sprintf("Item %d", offset+i),
		})
	}
	return products
}

func TestFetchAllPaginates(t *testing.T) {
	pages := map[int][]Product{
		0:                      feedPage(constants.PageSize, 0),
		constants.PageSize:     feedPage(constants.PageSize, constants.PageSize),
		2 * constants.PageSize: feedPage(3, 2*constants.PageSize),
		3 * constants.PageSize: nil,
	}

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		assert.Equal(t, "test-token", r.Header.Get("Authorization"))

		offset := pagingOffset(t, r)
		_ = json.NewEncoder(w).Encode(map[string]any{"products": pages[offset]})
	}))
	defer server.Close()

	client := NewClient("test-token", "site", Endpoints{ProductsURL: server.URL})
	feed := client.FetchAll(context.Background())

	assert.Len(t, feed, 2*constants.PageSize+3)
	assert.Equal(t, int64(4), requests.Load())
	assert.Equal(t, "item-0", feed[0].Slug)
	assert.Equal(t, fmt.Sprintf("item-%d", 2*constants.PageSize+2), feed[len(feed)-1].Slug)
}

func TestFetchAllStopsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pagingOffset(t, r) >= constants.PageSize {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"products": feedPage(constants.PageSize, 0)})
	}))
	defer server.Close()

	client := NewClient("test-token", "site", Endpoints{ProductsURL: server.URL})
	feed := client.FetchAll(context.Background())

	// The failed page truncates the feed instead of failing the run.
	assert.Len(t, feed, constants.PageSize)
}

func TestFetchAllUnreachableServer(t *testing.T) {
	client := NewClient("test-token", "site", Endpoints{ProductsURL: "http://127.0.0.1:1"})
	feed := client.FetchAll(context.Background())

	assert.Empty(t, feed)
}

func TestCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/query", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"collections": []Collection{
				{ID: "c1", Name: "Для женщин"},
				{ID: "c2", Name: "Ж_плечевая"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-token", "site", Endpoints{CollectionsURL: server.URL + "/collections"})
	collections, err := client.Collections(context.Background())

	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "Для женщин", collections[0].Name)
}

func TestUpdateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			assert.Equal(t, http.MethodPost, r.Method)
		case "/products/p1":
			assert.Equal(t, http.MethodPatch, r.Method)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var envelope map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Contains(t, envelope, "product")

		_ = json.NewEncoder(w).Encode(map[string]any{"product": Product{Slug: "new-item"}})
	}))
	defer server.Close()

	client := NewClient("test-token", "site", Endpoints{ProductURL: server.URL + "/products"})

	created, err := client.UpdateProduct(context.Background(), "", map[string]string{"name": "New item"})
	require.NoError(t, err)
	assert.Equal(t, "new-item", created.Slug)

	_, err = client.UpdateProduct(context.Background(), "p1", map[string]string{"name": "Renamed"})
	require.NoError(t, err)
}
