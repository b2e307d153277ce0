// Package wantherdress normalizes the wantherdress partner feed. The
// partner runs its own shop on the storefront platform, so the feed is
// fetched with the same paginated products API as the site itself. Size
// availability is not exposed as a product option; it is embedded in the
// HTML description after a "Размер:" marker.
package wantherdress

import (
	"context"
	"fmt"
	"regexp"

	"github.com/amby-app/feedsync/internal/config"
	"github.com/amby-app/feedsync/internal/sources"
	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/errors"
)

func init() {
	sources.RegisterBuilder(sources.KindWantherdress, newSource)
}

const productPageFormat = "https://www.amby.app/product-page/%s"

var (
	nbspEntity = regexp.MustCompile(`(?i)&nbsp;`)
	sizeMarker = regexp.MustCompile(`</?[^>]*>Размер:`)
	tagBreak   = regexp.MustCompile(`</?[^>]*>`)
	sizeTokens = regexp.MustCompile(`XXL|XL|XS|S|M|L`)
)

// Source fetches the partner shop feed and extracts sizes from the
// description HTML.
type Source struct {
	client *storefront.Client
}

func newSource(partner sources.Partner, deps sources.Deps) (sources.Source, error) {
	token := config.GetString(partner.TokenEnv)
	if token == "" {
		return nil, errors.NewConfigError(partner.Name,
			fmt.Sprintf("%s is not set", partner.TokenEnv), errors.ErrTokenRequired)
	}

	return &Source{
		client: storefront.NewClient(token, partner.Name, deps.Endpoints),
	}, nil
}

// Kind returns the source kind this normalizer handles.
func (s *Source) Kind() sources.Kind {
	return sources.KindWantherdress
}

// FetchProducts retrieves the full partner feed page by page and maps
// every item into the canonical model. Partner collections are not
// fetched; categories come from the site item during resolution.
func (s *Source) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	feed := s.client.FetchAll(ctx)

	products := make([]catalog.Product, 0, len(feed))
	for i := range feed {
		item := &feed[i]

		product := storefront.ToCanonical(item, nil)
		product.URL = fmt.Sprintf(productPageFormat, item.Slug)

		if len(product.SizeOptions) == 0 {
			for _, size := range ExtractSizes(item.Description) {
				product.AddSizeOption(catalog.SizeOption{
					Value:       size,
					Description: size,
					InStock:     true,
					Visible:     true,
				})
			}
		}

		products = append(products, product)
	}

	return products, nil
}

// ExtractSizes pulls the size vocabulary out of a description fragment.
// Only the segment between the "Размер:" marker and the next tag is
// scanned; later paragraphs may contain Latin text (brand names,
// composition lines) that would read as size tokens. The known tokens are
// collected in order of first appearance. Descriptions without the marker
// yield nil.
func ExtractSizes(description string) []string {
	text := nbspEntity.ReplaceAllString(description, " ")

	marker := sizeMarker.FindStringIndex(text)
	if marker == nil {
		return nil
	}

	tail := text[marker[1]:]
	if tag := tagBreak.FindStringIndex(tail); tag != nil {
		tail = tail[:tag[0]]
	}

	var sizes []string
	seen := make(map[string]struct{})
	for _, token := range sizeTokens.FindAllString(tail, -1) {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		sizes = append(sizes, token)
	}

	return sizes
}
