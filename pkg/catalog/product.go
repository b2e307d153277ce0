// Package catalog defines the canonical product model shared by every
// feed source, along with the fixed export row schema and the gender/size
// tag vocabulary used by the storefront filters.
package catalog

import "time"

// SizeOption is one selectable size choice on a product. Values are
// case-preserving and deduplicated by value in insertion order.
type SizeOption struct {
	Value       string `json:"value"`
	Description string `json:"description"`
	InStock     bool   `json:"inStock"`
	Visible     bool   `json:"visible"`
}

// Product is the canonical internal representation of a catalog item,
// produced by a source normalizer and consumed by the export pipeline.
type Product struct {
	// Slug is the identity key within the storefront, derived
	// deterministically from the source name or carried from the feed.
	Slug string `json:"itemId"`

	SKU  string `json:"sku,omitempty"`
	Name string `json:"name"`

	// Description is HTML-stripped plain text.
	Description string `json:"description"`

	// URL is the storefront product page for this item.
	URL string `json:"url,omitempty"`

	// Images preserves source ordering. An empty list is export-valid.
	Images []string `json:"imageUrls,omitempty"`

	// Price is the current (discounted) price in source currency.
	// OldPrice carries the pre-discount price when the source splits them.
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice,omitempty"`

	DiscountMode  string  `json:"discountMode,omitempty"`
	DiscountValue float64 `json:"discountValue,omitempty"`

	// Collection is the joined collection names, may be empty.
	Collection string `json:"collection,omitempty"`

	// Categories are the resolved collection names, pre-join.
	Categories []string `json:"categories,omitempty"`

	// Tags are the instantiated gender/size filter tags.
	Tags []string `json:"tags,omitempty"`

	Visible bool `json:"visible"`
	InStock bool `json:"inStock"`

	SizeOptions []SizeOption `json:"sizeOptions,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// AddSizeOption appends a size choice unless one with the same value is
// already present. Matching is case-sensitive.
func (p *Product) AddSizeOption(opt SizeOption) {
	for _, existing := range p.SizeOptions {
		if existing.Value == opt.Value {
			return
		}
	}
	p.SizeOptions = append(p.SizeOptions, opt)
}

// SizeValues returns the size option values in insertion order.
func (p *Product) SizeValues() []string {
	values := make([]string, 0, len(p.SizeOptions))
	for _, opt := range p.SizeOptions {
		values = append(values, opt.Value)
	}
	return values
}

// StockState derives the exported visibility: a hidden product is never
// in stock, and a visible one follows its stock flag. Visibility gates
// stock, in that order.
func (p *Product) StockState() bool {
	if !p.Visible {
		return false
	}
	return p.InStock
}
