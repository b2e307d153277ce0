package feedsync

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/catalog"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "markup stripped",
			in:   "<p>Пальто из <strong>шерсти</strong></p>",
			want: "Пальто из шерсти",
		},
		{
			name: "delivery section cut",
			in:   "<p>Пальто из шерсти</p><p>Доставка по всей стране</p>",
			want: "Пальто из шерсти",
		},
		{
			name: "attributes heading removed",
			in:   "<p>Основные характеристики:</p><p>Состав: шерсть</p>",
			want: "Состав: шерсть",
		},
		{
			name: "empty description",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDescription(tt.in))
		})
	}
}

func TestCollectEndToEnd(t *testing.T) {
	site := newSiteServer(t,
		[]storefront.Product{
			{
				Slug:          "wool-coat",
				Name:          "Wool coat",
				Description:   "<p>Тёплое пальто</p><p>Доставка за 2 дня</p>",
				Visible:       true,
				Stock:         &storefront.Stock{InStock: true},
				CollectionIDs: []string{"c1", "c2"},
				ProductOptions: []storefront.ProductOption{{
					Name: "Размер",
					Choices: []storefront.Choice{
						{Value: "36/38", Description: "36/38", InStock: true, Visible: true},
						{Value: "40", Description: "40", InStock: true, Visible: true},
					},
				}},
			},
			{
				// No recognized category, so no tags and no entry.
				Slug:          "mystery-item",
				Name:          "Mystery item",
				Visible:       true,
				CollectionIDs: []string{"c2"},
			},
		},
		[]storefront.Collection{
			{ID: "c1", Name: "Для женщин"},
			{ID: "c2", Name: "Новинки"},
		},
	)
	defer site.Close()

	collectPath := filepath.Join(t.TempDir(), "feed.json")

	fs, err := New(
		WithSiteToken("site-token"),
		WithEndpoints(storefront.Endpoints{
			ProductsURL:    site.URL + "/products/query",
			CollectionsURL: site.URL + "/collections",
		}),
		WithCollectPath(collectPath),
	)
	require.NoError(t, err)

	require.NoError(t, fs.Collect(context.Background()))

	data, err := os.ReadFile(collectPath)
	require.NoError(t, err)

	var collected []catalog.Product
	require.NoError(t, json.Unmarshal(data, &collected))
	require.Len(t, collected, 1)

	coat := collected[0]
	assert.Equal(t, "wool-coat", coat.Slug)
	assert.Equal(t, "Тёплое пальто", coat.Description)
	assert.Equal(t, "Для женщин;Новинки", coat.Collection)
	assert.Equal(t, []string{"36F", "38F", "40F"}, coat.Tags)
}
