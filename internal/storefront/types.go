// Package storefront implements the storefront platform API client: the
// paginated product feed pull, the collection lookup, and product update
// operations. The same client serves both the authoritative site feed and
// partner shops hosted on the platform (with a partner token).
package storefront

import (
	"strings"
	"time"

	"github.com/amby-app/feedsync/pkg/constants"
)

// Product is the raw storefront API product shape. The authoritative feed
// is a read-only lookup of these items during one reconciliation pass.
type Product struct {
	ID          string `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku,omitempty"`
	NumericID   string `json:"numericId,omitempty"`

	Price    *Price    `json:"price,omitempty"`
	Discount *Discount `json:"discount,omitempty"`
	Stock    *Stock    `json:"stock,omitempty"`
	Visible  bool      `json:"visible"`

	Media          *Media          `json:"media,omitempty"`
	CollectionIDs  []string        `json:"collectionIds,omitempty"`
	ProductOptions []ProductOption `json:"productOptions,omitempty"`
	ProductPageURL *PageURL        `json:"productPageUrl,omitempty"`

	AdditionalInfoSections []AdditionalInfo `json:"additionalInfoSections,omitempty"`

	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// Price carries the pre-split discounted/original price pair.
type Price struct {
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// Discount describes an active product discount. Type NONE means no discount.
type Discount struct {
	Type  string  `json:"type,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// DiscountNone is the discount type marking the absence of a discount.
const DiscountNone = "NONE"

// Stock carries the stock availability flag.
type Stock struct {
	InStock bool `json:"inStock"`
}

// Media holds a product's image set.
type Media struct {
	MainMedia *MediaItem  `json:"mainMedia,omitempty"`
	Items     []MediaItem `json:"items,omitempty"`
}

// MediaItem is a single media entry.
type MediaItem struct {
	Image *Image `json:"image,omitempty"`
}

// Image is an image reference.
type Image struct {
	URL string `json:"url,omitempty"`
}

// ProductOption is a selectable option group (the size drop-down).
type ProductOption struct {
	Name    string   `json:"name"`
	Choices []Choice `json:"choices,omitempty"`
}

// Choice is one option value.
type Choice struct {
	Value       string `json:"value"`
	Description string `json:"description"`
	InStock     bool   `json:"inStock,omitempty"`
	Visible     bool   `json:"visible,omitempty"`
}

// PageURL is the product page address split into host and path.
type PageURL struct {
	Base string `json:"base"`
	Path string `json:"path"`
}

// AdditionalInfo is an extra titled description section.
type AdditionalInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Collection is a storefront collection (category) entry.
type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImageURLs returns all image URLs in source order, skipping empty entries.
func (p *Product) ImageURLs() []string {
	if p.Media == nil {
		return nil
	}
	urls := make([]string, 0, len(p.Media.Items))
	for _, item := range p.Media.Items {
		if item.Image != nil && item.Image.URL != "" {
			urls = append(urls, item.Image.URL)
		}
	}
	return urls
}

// MainImageURL returns the primary image URL, or empty.
func (p *Product) MainImageURL() string {
	if p.Media == nil || p.Media.MainMedia == nil || p.Media.MainMedia.Image == nil {
		return ""
	}
	return p.Media.MainMedia.Image.URL
}

// SizeOption returns the size option group, or nil when the product does
// not declare one.
func (p *Product) SizeOption() *ProductOption {
	for i := range p.ProductOptions {
		if p.ProductOptions[i].Name == constants.SizeOptionName {
			return &p.ProductOptions[i]
		}
	}
	return nil
}

// StockState derives exported availability: a hidden product is never in
// stock; a visible one follows its stock flag.
func (p *Product) StockState() bool {
	if !p.Visible {
		return false
	}
	return p.Stock != nil && p.Stock.InStock
}

// FullDescription concatenates the description with every additional
// info section, title included, in section order. The collect pipeline
// cleans the result into plain text.
func (p *Product) FullDescription() string {
	var b strings.Builder
	b.WriteString(p.Description)
	for _, section := range p.AdditionalInfoSections {
		b.WriteString("\n")
		b.WriteString(section.Title)
		b.WriteString("\n")
		b.WriteString(section.Description)
	}
	return b.String()
}

// PageAddress joins the page URL host and path into one address.
func (p *Product) PageAddress() string {
	if p.ProductPageURL == nil {
		return ""
	}
	return strings.TrimSuffix(p.ProductPageURL.Base, "/") + p.ProductPageURL.Path
}
