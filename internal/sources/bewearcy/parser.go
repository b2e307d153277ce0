// Package bewearcy normalizes the bewearcy partner feed. The partner
// exposes its CRM catalog as one unauthenticated JSON document: no
// pagination, no SKUs, numeric Russian size vocabulary, and integer
// prices that need a resale markup applied.
package bewearcy

import (
	"context"
	"strconv"
	"strings"

	"github.com/amby-app/feedsync/internal/sources"
	"github.com/amby-app/feedsync/internal/transport"
	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
)

func init() {
	sources.RegisterBuilder(sources.KindBewearcy, newSource)
}

// sizeTable maps the CRM's numeric Russian sizes to letter sizes.
// Unknown values pass through unchanged.
var sizeTable = map[string]string{
	"42": "XS",
	"44": "S",
	"46": "M",
	"48": "L",
	"50": "XL",
}

// rawItem is one CRM catalog entry as served by the feed.
type rawItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"img"`
	Price       string   `json:"price"`
	Size        string   `json:"size"`
}

type feedResponse struct {
	Products []rawItem `json:"products"`
}

// Source fetches and normalizes the CRM feed.
type Source struct {
	transport *transport.Client
	name      string
	feedURL   string
	markup    float64
}

func newSource(partner sources.Partner, _ sources.Deps) (sources.Source, error) {
	if partner.FeedURL == "" {
		return nil, errors.NewConfigError(partner.Name, "feed_url is required", nil)
	}

	return &Source{
		transport: transport.New(""),
		name:      partner.Name,
		feedURL:   partner.FeedURL,
		markup:    partner.Markup,
	}, nil
}

// Kind returns the source kind this normalizer handles.
func (s *Source) Kind() sources.Kind {
	return sources.KindBewearcy
}

// FetchProducts retrieves the CRM catalog in one request and maps every
// entry into the canonical model. Items whose price cannot be parsed are
// logged and skipped; the rest of the feed still goes through.
func (s *Source) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	logger := logging.FromContext(ctx)

	resp, err := s.transport.Get(ctx, s.feedURL)
	if err != nil {
		return nil, errors.WrapResource("fetch", "feed", s.name, err)
	}

	var feed feedResponse
	if err := transport.DecodeResponse(resp, s.name, &feed); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(feed.Products))
	for _, item := range feed.Products {
		price, err := parsePrice(item.Price)
		if err != nil {
			logger.Warn().Err(err).Str("item", item.Name).Msg("Skipping item with unparseable price")
			continue
		}

		product := catalog.Product{
			Slug:        catalog.Slugify(item.Name),
			Name:        item.Name,
			Description: item.Description,
			Images:      item.Images,
			Price:       price + s.markup,
			Visible:     true,
			InStock:     true,
		}

		for _, size := range parseSizes(item.Size) {
			product.AddSizeOption(catalog.SizeOption{
				Value:       size,
				Description: size,
				InStock:     true,
				Visible:     true,
			})
		}

		products = append(products, product)
	}

	return products, nil
}

// parsePrice reads the integer part of a CRM price string. Prices arrive
// as strings like "3500.00"; fractional kopecks are dropped.
func parsePrice(raw string) (float64, error) {
	whole, _, _ := strings.Cut(strings.TrimSpace(raw), ".")
	value, err := strconv.Atoi(whole)
	if err != nil {
		return 0, errors.WrapParse("price", raw, err)
	}
	return float64(value), nil
}

// parseSizes splits the CRM size field and translates numeric Russian
// sizes through the size table.
func parseSizes(raw string) []string {
	var sizes []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if letter, ok := sizeTable[part]; ok {
			part = letter
		}
		sizes = append(sizes, part)
	}
	return sizes
}
