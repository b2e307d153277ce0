package feedsync

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/amby-app/feedsync/internal/export"
	"github.com/amby-app/feedsync/internal/sources"
	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
	"github.com/amby-app/feedsync/pkg/reconcile"
)

// ExportPartner runs the full reconciliation pipeline for one configured
// partner: fetch and normalize the partner feed, pull the authoritative
// site feed, resolve each product's fields against its site counterpart,
// deduplicate, and export the rows. When a notifier is configured the
// resulting file is delivered afterwards.
func (f *feedsync) ExportPartner(ctx context.Context, name string) error {
	ctx = logging.WithPartner(ctx, name)
	logger := logging.FromContext(ctx)

	partner, err := f.registry.Partner(name)
	if err != nil {
		return err
	}

	src, err := sources.New(partner, sources.Deps{Endpoints: f.config.endpoints})
	if err != nil {
		return err
	}

	products, err := src.FetchProducts(ctx)
	if err != nil {
		return errors.WrapResource("fetch", "feed", name, err)
	}
	logger.Info().Int("products", len(products)).Msg("Partner feed fetched")

	idx, err := f.siteIndex(ctx)
	if err != nil {
		return err
	}

	rows := f.buildRows(ctx, src.Kind(), products, idx)

	if src.Kind() == sources.KindBewearcy {
		carried, err := f.carryOverRows(rows)
		if err != nil {
			return err
		}
		if len(carried) > 0 {
			logger.Info().Int("rows", len(carried)).Msg("Carrying over discontinued items as hidden")
			rows = append(rows, carried...)
		}
	}

	batch := make([][]string, 0, len(rows)+1)
	batch = append(batch, catalog.Headers)
	for _, row := range rows {
		batch = append(batch, row)
	}

	if err := f.exporter.Export(ctx, batch); err != nil {
		return err
	}

	if f.notifier != nil {
		if err := f.notifier.SendFile(ctx, f.config.exportPath, name); err != nil {
			logger.Error().Err(err).Msg("Export notification failed")
		}
	}

	return nil
}

// siteIndex pulls the full authoritative feed and collection set and
// builds the lookup index for override resolution.
func (f *feedsync) siteIndex(ctx context.Context) (*storefront.FeedIndex, error) {
	if f.site == nil {
		return nil, errors.NewConfigError("site", "site token is required for export", errors.ErrTokenRequired)
	}

	items := f.site.FetchAll(ctx)

	collections, err := f.site.Collections(ctx)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Int("products", len(items)).
		Int("collections", len(collections)).
		Msg("Site feed indexed")

	return storefront.NewFeedIndex(items, collections), nil
}

// buildRows transforms normalized partner products into export rows in
// input order. Image rehosting for the products runs with a bounded
// number of items in flight; resolution and row assembly stay sequential
// so duplicate handling is deterministic.
func (f *feedsync) buildRows(ctx context.Context, kind sources.Kind, products []catalog.Product, idx *storefront.FeedIndex) []catalog.Row {
	logger := logging.FromContext(ctx)

	imageURLs := f.rehostAll(ctx, kind, products)

	deduper := reconcile.NewDeduper()
	rows := make([]catalog.Row, 0, len(products))

	for i := range products {
		product := &products[i]

		if deduper.Duplicate(product.SKU) {
			logger.Warn().Str("sku", product.SKU).Str("name", product.Name).Msg("Skipping duplicate SKU")
			continue
		}

		resolved := reconcile.Resolve(product, f.matchSite(kind, product, idx))

		// The import applies discountMode and discountValue itself, so the
		// price column carries the pre-discount price.
		price := product.OldPrice
		if price == 0 {
			price = product.Price
		}

		fields := catalog.RowFields{
			HandleID:     catalog.HandleID(product.Slug),
			Name:         product.Name,
			Description:  resolved.Description,
			ImageURL:     imageURLs[i],
			Collection:   resolved.Collection,
			SKU:          product.SKU,
			Price:        price,
			Visible:      resolved.Visible,
			DiscountMode: product.DiscountMode,
			Sizes:        resolved.Sizes,
		}
		if product.DiscountValue != 0 {
			fields.DiscountValue = strconv.FormatFloat(product.DiscountValue, 'f', -1, 64)
		}

		rows = append(rows, catalog.NewRow(fields))
	}

	return rows
}

// rehostAll produces the export image cell for every product, in input
// order. With a configured rehoster, each product's images are copied to
// our bucket concurrently, at most four products in flight. Without one,
// the source URLs are joined as-is.
func (f *feedsync) rehostAll(ctx context.Context, kind sources.Kind, products []catalog.Product) []string {
	results := make([]string, len(products))

	if f.rehoster == nil || kind == sources.KindBewearcy {
		for i := range products {
			results[i] = joinImages(products[i].Images)
		}
		return results
	}

	sem := make(chan struct{}, constants.MaxConcurrentTransforms)
	var wg sync.WaitGroup

	for i := range products {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = joinImages(f.rehoster.Rehost(ctx, products[i].Images))
		}(i)
	}
	wg.Wait()

	return results
}

// joinImages renders the image URL list as one export cell.
func joinImages(urls []string) string {
	return strings.Join(urls, constants.OptionSeparator)
}

// matchSite finds the authoritative site counterpart of a partner
// product. Platform-hosted partners share slugs with the site; CRM feeds
// have synthetic slugs, so those match by exact name.
func (f *feedsync) matchSite(kind sources.Kind, product *catalog.Product, idx *storefront.FeedIndex) *catalog.Product {
	var (
		item *storefront.Product
		ok   bool
	)

	if kind == sources.KindBewearcy {
		item, ok = idx.ByName(product.Name)
	} else {
		item, ok = idx.BySlug(product.Slug)
	}
	if !ok {
		return nil
	}

	canonical := storefront.ToCanonical(item, idx)
	return &canonical
}

// carryOverRows reads back the previous export and returns the rows whose
// handle is absent from the current batch, marked not visible. Items a
// CRM partner drops from its feed would otherwise stay purchasable on the
// storefront after import.
func (f *feedsync) carryOverRows(current []catalog.Row) ([]catalog.Row, error) {
	previous, err := export.ReadCSV(f.config.exportPath)
	if err != nil {
		return nil, err
	}

	live := make(map[string]struct{}, len(current))
	for _, row := range current {
		live[row[catalog.ColHandleID]] = struct{}{}
	}

	var carried []catalog.Row
	for _, row := range previous {
		if len(row) != len(catalog.Headers) {
			continue
		}
		if row[catalog.ColHandleID] == catalog.Headers[catalog.ColHandleID] {
			continue
		}
		if _, ok := live[row[catalog.ColHandleID]]; ok {
			continue
		}

		hidden := make(catalog.Row, len(row))
		copy(hidden, row)
		hidden[catalog.ColVisible] = catalog.FormatBool(false)
		carried = append(carried, hidden)
	}

	return carried, nil
}
