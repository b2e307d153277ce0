package storefront

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedIndexLookups(t *testing.T) {
	items := []Product{
		{Slug: "leather-bag", Name: "Leather bag"},
		{Slug: "wool-coat", Name: "Wool coat"},
		{Slug: "leather-bag", Name: "Leather bag copy"},
	}
	collections := []Collection{
		{ID: "c1", Name: "Ж_аксессуары"},
		{ID: "c2", Name: "Ж_плечевая"},
	}

	idx := NewFeedIndex(items, collections)

	item, ok := idx.BySlug("leather-bag")
	require.True(t, ok)
	// Duplicate slug keeps the first occurrence.
	assert.Equal(t, "Leather bag", item.Name)

	item, ok = idx.ByName("Wool coat")
	require.True(t, ok)
	assert.Equal(t, "wool-coat", item.Slug)

	_, ok = idx.BySlug("missing")
	assert.False(t, ok)

	assert.Equal(t, "Ж_аксессуары", idx.CollectionName("c1"))
	assert.Empty(t, idx.CollectionName("missing"))
	assert.Equal(t, []string{"Ж_плечевая", ""}, idx.CollectionNames([]string{"c2", "missing"}))
}

func TestToCanonical(t *testing.T) {
	idx := NewFeedIndex(nil, []Collection{
		{ID: "c1", Name: "Для женщин"},
		{ID: "c2", Name: "Ж_плечевая"},
	})

	item := &Product{
		Slug:        "wool-coat",
		Name:        "Wool coat",
		Description: "<p>Warm</p>",
		SKU:         "WC-1",
		NumericID:   "1630000000000000",
		Visible:     true,
		Price:       &Price{Price: 5000, DiscountedPrice: 4500},
		Discount:    &Discount{Type: "PERCENT", Value: 10},
		Stock:       &Stock{InStock: true},
		Media: &Media{Items: []MediaItem{
			{Image: &Image{URL: "https://cdn/img1.jpg"}},
			{Image: &Image{URL: "https://cdn/img2.jpg"}},
		}},
		CollectionIDs: []string{"c1", "c2"},
		ProductOptions: []ProductOption{{
			Name: "Размер",
			Choices: []Choice{
				{Value: "S", Description: "S", InStock: true, Visible: true},
				{Value: "M", Description: "M", InStock: false, Visible: true},
			},
		}},
		ProductPageURL: &PageURL{Base: "https://www.amby.app/", Path: "/product-page/wool-coat"},
	}

	product := ToCanonical(item, idx)

	assert.Equal(t, "wool-coat", product.Slug)
	assert.Equal(t, "<p>Warm</p>", product.Description)
	assert.Equal(t, "https://www.amby.app/product-page/wool-coat", product.URL)
	assert.Equal(t, []string{"https://cdn/img1.jpg", "https://cdn/img2.jpg"}, product.Images)
	assert.Equal(t, 4500.0, product.Price)
	assert.Equal(t, 5000.0, product.OldPrice)
	assert.Equal(t, "PERCENT", product.DiscountMode)
	assert.Equal(t, 10.0, product.DiscountValue)
	assert.Equal(t, []string{"Для женщин", "Ж_плечевая"}, product.Categories)
	assert.Equal(t, []string{"S", "M"}, product.SizeValues())
	assert.True(t, product.Visible)
	assert.True(t, product.InStock)
	assert.Equal(t, time.UnixMicro(1630000000000000), product.CreatedAt)
}

func TestFullDescription(t *testing.T) {
	item := &Product{
		Description: "<p>Тёплое пальто</p>",
		AdditionalInfoSections: []AdditionalInfo{
			{Title: "Состав", Description: "<p>шерсть</p>"},
			{Title: "Уход", Description: "<p>химчистка</p>"},
		},
	}

	assert.Equal(t,
		"<p>Тёплое пальто</p>\nСостав\n<p>шерсть</p>\nУход\n<p>химчистка</p>",
		item.FullDescription())
}

func TestToCanonicalSkipsNoneDiscount(t *testing.T) {
	item := &Product{
		Slug:     "plain-item",
		Discount: &Discount{Type: DiscountNone},
	}

	product := ToCanonical(item, nil)

	assert.Empty(t, product.DiscountMode)
	assert.Zero(t, product.DiscountValue)
	assert.Nil(t, product.Categories)
}
