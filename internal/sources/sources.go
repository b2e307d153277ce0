// Package sources defines the closed set of partner feed kinds, the
// normalizer interface each kind implements, and the partner registry
// loaded from the partners file. Partner packages register themselves
// through RegisterBuilder in their init functions.
package sources

import (
	"context"
	"sort"

	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/catalog"
	"github.com/amby-app/feedsync/pkg/errors"
)

// Kind identifies a partner feed normalizer variant.
type Kind string

// The closed enumeration of supported source kinds.
const (
	// KindWantherdress is a partner shop hosted on the storefront
	// platform: paginated feed, sizes embedded in HTML descriptions.
	KindWantherdress Kind = "wantherdress"

	// KindBewearcy is a bespoke CRM JSON feed: single request, numeric
	// size vocabulary, integer prices with a fixed markup.
	KindBewearcy Kind = "bewearcy"
)

// Source fetches one partner's raw feed and normalizes it into canonical
// products. Implementations live in per-partner subpackages.
type Source interface {
	// Kind returns the source kind this normalizer handles.
	Kind() Kind

	// FetchProducts retrieves the complete partner feed and maps every
	// raw item into the canonical product model.
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// Deps carries the shared collaborators a builder may need.
type Deps struct {
	// Endpoints are the storefront platform API URLs, used by partners
	// hosted on the platform.
	Endpoints storefront.Endpoints
}

// Builder constructs a Source for a configured partner.
type Builder func(partner Partner, deps Deps) (Source, error)

var builders = make(map[Kind]Builder)

// RegisterBuilder registers the builder for a kind. Called from partner
// package init functions; later registrations for the same kind win.
func RegisterBuilder(kind Kind, builder Builder) {
	builders[kind] = builder
}

// New constructs the Source for a configured partner, dispatching on its
// kind through the builder table.
func New(partner Partner, deps Deps) (Source, error) {
	builder, ok := builders[partner.Kind]
	if !ok {
		return nil, errors.NewValidationError("kind", string(partner.Kind),
			"no normalizer registered for source kind")
	}
	return builder(partner, deps)
}

// Kinds returns the registered kinds in stable order, for diagnostics.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(builders))
	for kind := range builders {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
