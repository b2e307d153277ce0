package storefront

// FeedIndex is an in-memory lookup over one full authoritative feed pull
// plus the collection name set. It is built once per batch run and never
// mutated afterwards.
type FeedIndex struct {
	items       []Product
	bySlug      map[string]int
	byName      map[string]int
	collections map[string]string
}

// NewFeedIndex builds an index over the given feed items and collections.
// When two items share a slug or name, the first occurrence wins.
func NewFeedIndex(items []Product, collections []Collection) *FeedIndex {
	idx := &FeedIndex{
		items:       items,
		bySlug:      make(map[string]int, len(items)),
		byName:      make(map[string]int, len(items)),
		collections: make(map[string]string, len(collections)),
	}

	for i, item := range items {
		if _, ok := idx.bySlug[item.Slug]; !ok {
			idx.bySlug[item.Slug] = i
		}
		if _, ok := idx.byName[item.Name]; !ok {
			idx.byName[item.Name] = i
		}
	}

	for _, coll := range collections {
		idx.collections[coll.ID] = coll.Name
	}

	return idx
}

// Items returns the indexed feed in pagination order.
func (idx *FeedIndex) Items() []Product {
	return idx.items
}

// BySlug looks up an item by exact, case-sensitive slug.
func (idx *FeedIndex) BySlug(slug string) (*Product, bool) {
	i, ok := idx.bySlug[slug]
	if !ok {
		return nil, false
	}
	return &idx.items[i], true
}

// ByName looks up an item by exact, case-sensitive name.
func (idx *FeedIndex) ByName(name string) (*Product, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return nil, false
	}
	return &idx.items[i], true
}

// CollectionName resolves a collection id to its name, or empty when the
// id is unknown.
func (idx *FeedIndex) CollectionName(id string) string {
	return idx.collections[id]
}

// CollectionNames resolves a set of collection ids in order. Unknown ids
// resolve to empty strings so positions are preserved.
func (idx *FeedIndex) CollectionNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, idx.collections[id])
	}
	return names
}
