package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amby-app/feedsync/internal/transport"
	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
)

// Endpoints are the platform API URLs used by the client.
type Endpoints struct {
	ProductsURL    string
	CollectionsURL string
	ProductURL     string
}

// Client talks to one storefront (the authoritative site or a partner shop,
// depending on the token it was created with).
type Client struct {
	transport *transport.Client
	endpoints Endpoints
	label     string
}

// NewClient creates a storefront client authenticated with the given token.
// The label identifies the shop in logs and errors.
func NewClient(token, label string, endpoints Endpoints) *Client {
	return &Client{
		transport: transport.New(token),
		endpoints: endpoints,
		label:     label,
	}
}

// feedQuery is the paginated products request body. The API caps pages at
// 100 items; hidden products are included so visibility can be resolved
// downstream.
type feedQuery struct {
	Query struct {
		Paging struct {
			Offset int `json:"offset"`
		} `json:"paging"`
	} `json:"query"`
	IncludeVariants       bool `json:"includeVariants"`
	IncludeHiddenProducts bool `json:"includeHiddenProducts"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// FetchAll retrieves the complete product feed by issuing page requests
// sequentially with an increasing offset until an empty page is returned.
//
// A request failure or non-200 status is logged and treated as a terminal
// empty page: the accumulated partial feed is returned and no retry is
// attempted. A mid-run failure therefore silently truncates the feed
// instead of failing the batch. Known gap: a transient failure is
// indistinguishable from feed completion.
func (c *Client) FetchAll(ctx context.Context) []Product {
	logger := logging.FromContext(ctx)

	var feed []Product
	var body feedQuery
	body.IncludeHiddenProducts = true

	for offset := 0; ; offset += constants.PageSize {
		body.Query.Paging.Offset = offset

		logger.Debug().Str("shop", c.label).Int("offset", offset).Msg("Requesting feed page")

		resp, err := c.transport.Post(ctx, c.endpoints.ProductsURL, body)
		if err != nil {
			logger.Error().Err(err).Str("shop", c.label).Int("offset", offset).Msg("Feed page request failed")
			return feed
		}

		var page productsResponse
		if err := transport.DecodeResponse(resp, c.label, &page); err != nil {
			logger.Error().Err(err).Str("shop", c.label).Int("offset", offset).Msg("Feed page decode failed")
			return feed
		}

		if len(page.Products) == 0 {
			return feed
		}

		feed = append(feed, page.Products...)
	}
}

type collectionsResponse struct {
	Collections []Collection `json:"collections"`
}

// Collections retrieves the full collection id/name set in one request.
// The result is cached by the caller for the remainder of the run.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	url := c.endpoints.CollectionsURL + "/query"

	resp, err := c.transport.Post(ctx, url, nil)
	if err != nil {
		return nil, errors.WrapResource("fetch", "collections", c.label, err)
	}

	var result collectionsResponse
	if err := transport.DecodeResponse(resp, c.label, &result); err != nil {
		return nil, err
	}

	return result.Collections, nil
}

type productEnvelope struct {
	Product any `json:"product"`
}

type mediaEnvelope struct {
	Media any `json:"media"`
}

// UpdateProduct creates or updates a product on the storefront. An empty
// productID creates a new product (POST); otherwise the existing product
// is patched.
func (c *Client) UpdateProduct(ctx context.Context, productID string, product any) (*Product, error) {
	var (
		resp *http.Response
		err  error
	)

	body := productEnvelope{Product: product}
	if productID == "" {
		resp, err = c.transport.Post(ctx, c.endpoints.ProductURL, body)
	} else {
		url := fmt.Sprintf("%s/%s", c.endpoints.ProductURL, productID)
		resp, err = c.transport.Patch(ctx, url, body)
	}
	if err != nil {
		return nil, errors.WrapResource("update", "product", productID, err)
	}

	var result struct {
		Product Product `json:"product"`
	}
	if err := transport.DecodeResponse(resp, c.label, &result); err != nil {
		return nil, err
	}

	return &result.Product, nil
}

// UpdateMedia replaces the option-choice media of an existing product.
func (c *Client) UpdateMedia(ctx context.Context, productID string, media any) error {
	url := fmt.Sprintf("%s/%s/choices/media", c.endpoints.ProductURL, productID)

	resp, err := c.transport.Patch(ctx, url, mediaEnvelope{Media: media})
	if err != nil {
		return errors.WrapResource("update", "media", productID, err)
	}

	var result struct{}
	return transport.DecodeResponse(resp, c.label, &result)
}
