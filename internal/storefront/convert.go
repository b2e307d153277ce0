package storefront

import (
	"strconv"
	"time"

	"github.com/amby-app/feedsync/pkg/catalog"
)

// ToCanonical converts a raw storefront product into the canonical model.
// The description is carried verbatim (still HTML): override resolution
// uses the site value as-is, and the collect pipeline strips it separately.
// Collection ids are resolved through the index; unknown ids keep their
// (empty) positions.
func ToCanonical(p *Product, idx *FeedIndex) catalog.Product {
	canonical := catalog.Product{
		Slug:        p.Slug,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.PageAddress(),
		Images:      p.ImageURLs(),
		Visible:     p.Visible,
		InStock:     p.Stock != nil && p.Stock.InStock,
		UpdatedAt:   p.LastUpdated,
	}

	// The numeric id encodes the creation time in microseconds.
	if micros, err := strconv.ParseInt(p.NumericID, 10, 64); err == nil {
		canonical.CreatedAt = time.UnixMicro(micros)
	}

	if p.Price != nil {
		canonical.Price = p.Price.DiscountedPrice
		canonical.OldPrice = p.Price.Price
	}

	if p.Discount != nil && p.Discount.Type != DiscountNone {
		canonical.DiscountMode = p.Discount.Type
		canonical.DiscountValue = p.Discount.Value
	}

	if idx != nil {
		canonical.Categories = idx.CollectionNames(p.CollectionIDs)
	}

	if sizes := p.SizeOption(); sizes != nil {
		for _, choice := range sizes.Choices {
			canonical.AddSizeOption(catalog.SizeOption{
				Value:       choice.Value,
				Description: choice.Description,
				InStock:     choice.InStock,
				Visible:     choice.Visible,
			})
		}
	}

	return canonical
}
