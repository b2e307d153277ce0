package feedsync

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/htmltext"
	"github.com/amby-app/feedsync/pkg/logging"
)

// deliveryMarker starts the boilerplate shipping section appended to
// every site description; everything from it onward is dropped.
const deliveryMarker = "Доставка"

// attributesHeading labels the structured attribute block, which reads as
// noise once the markup is stripped.
const attributesHeading = "Основные характеристики:"

// Collect pulls the site's own feed and saves it as the recommendation
// bot's product database: plain-text descriptions, translated categories,
// and instantiated gender/size filter tags. Products whose categories or
// sizes produce no tags are left out, since the bot cannot filter them.
func (f *feedsync) Collect(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	idx, err := f.siteIndex(ctx)
	if err != nil {
		return err
	}

	dict := catalog.SizeTemplates()
	items := idx.Items()

	collected := make([]catalog.Product, 0, len(items))
	for i := range items {
		item := &items[i]

		product := storefront.ToCanonical(item, idx)
		product.Description = cleanDescription(item.FullDescription())
		product.Collection = strings.Join(product.Categories, constants.OptionSeparator)

		templates := catalog.TranslateCategories(product.Categories, dict)
		if len(templates) == 0 {
			logger.Debug().Str("slug", product.Slug).Msg("Skipping product without tag categories")
			continue
		}

		sizes := catalog.SplitSizeChoices(sizeDescriptions(product.SizeOptions))
		product.Tags = catalog.GenerateTags(templates, sizes)
		if len(product.Tags) == 0 {
			logger.Debug().Str("slug", product.Slug).Msg("Skipping product without size tags")
			continue
		}

		collected = append(collected, product)
	}

	if err := f.saveCollected(collected); err != nil {
		return err
	}

	logger.Info().
		Int("collected", len(collected)).
		Int("total", len(items)).
		Str("path", f.config.collectPath).
		Msg("Site feed collected")
	return nil
}

func (f *feedsync) saveCollected(products []catalog.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return errors.WrapParse("json", f.config.collectPath, err)
	}

	dir := filepath.Dir(f.config.collectPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(f.config.collectPath, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", f.config.collectPath, err)
	}
	return nil
}

// cleanDescription turns a site description into bot-readable plain text.
func cleanDescription(description string) string {
	text := htmltext.Strip(description)

	if i := strings.Index(text, deliveryMarker); i >= 0 {
		text = text[:i]
	}
	text = strings.ReplaceAll(text, attributesHeading, "")

	return strings.TrimSpace(htmltext.CollapseNewlines(text))
}

func sizeDescriptions(options []catalog.SizeOption) []string {
	descriptions := make([]string, 0, len(options))
	for _, opt := range options {
		descriptions = append(descriptions, opt.Description)
	}
	return descriptions
}
