// Package reconcile resolves partner-supplied product fields against the
// authoritative site feed and deduplicates export batches. Site data takes
// precedence when present; each field is resolved independently.
package reconcile

import (
	"strings"

	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/constants"
)

// Resolved holds the final per-field values after override resolution.
type Resolved struct {
	Description string
	Sizes       string
	Collection  string
	Visible     bool
}

// Resolve computes the final export field values for a candidate product,
// optionally consulting its authoritative site counterpart (nil when the
// candidate has no match on the site). Precedence, per field:
//
//   - description: authoritative value when present and non-empty
//   - sizes: authoritative size option choices when the site item declares
//     a size group, else the candidate's own size list
//   - collection: authoritative collection names when any, else empty
//   - visible: always recomputed from the authoritative item when present
//     (visibility gates stock), else from the candidate's own fields
func Resolve(candidate *catalog.Product, authoritative *catalog.Product) Resolved {
	resolved := Resolved{
		Description: candidate.Description,
		Sizes:       joinValues(candidate.SizeValues()),
		Visible:     candidate.StockState(),
	}

	if authoritative == nil {
		return resolved
	}

	if authoritative.Description != "" {
		resolved.Description = authoritative.Description
	}

	if len(authoritative.SizeOptions) > 0 {
		resolved.Sizes = joinDescriptions(authoritative.SizeOptions)
	}

	if len(authoritative.Categories) > 0 {
		resolved.Collection = joinValues(authoritative.Categories)
	}

	resolved.Visible = authoritative.StockState()

	return resolved
}

func joinValues(values []string) string {
	return strings.Join(values, constants.OptionSeparator)
}

func joinDescriptions(options []catalog.SizeOption) string {
	descriptions := make([]string, 0, len(options))
	for _, opt := range options {
		descriptions = append(descriptions, opt.Description)
	}
	return strings.Join(descriptions, constants.OptionSeparator)
}
