package reconcile

// Deduper tracks identity keys within one export batch. The first
// occurrence of a key wins; later occurrences are reported as duplicates
// so the caller can drop them. Empty keys never collide: sources without
// SKUs would otherwise collapse the whole batch into one row.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper creates an empty Deduper for one batch run.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Duplicate records the key and reports whether it was already present.
func (d *Deduper) Duplicate(key string) bool {
	if key == "" {
		return false
	}
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}
