package extractor

import (
	"sort"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// NumberOwnerIndex maps each identifier to the owners whose field produced it.
// Keys keep the order in which they were first seen.
type NumberOwnerIndex struct {
	keys   []Identifier
	owners map[Identifier]map[string]struct{}
}

// NewNumberOwnerIndex returns an empty index.
func NewNumberOwnerIndex() *NumberOwnerIndex {
	return &NumberOwnerIndex{
		owners: make(map[Identifier]map[string]struct{}),
	}
}

// Add records owner against id, creating the entry on first sight.
func (idx *NumberOwnerIndex) Add(id Identifier, owner string) {
	set, ok := idx.owners[id]
	if !ok {
		set = make(map[string]struct{})
		idx.owners[id] = set
		idx.keys = append(idx.keys, id)
	}
	set[owner] = struct{}{}
}

// Len returns the number of distinct identifiers.
func (idx *NumberOwnerIndex) Len() int {
	return len(idx.keys)
}

// Keys returns the identifiers in first-occurrence order.
func (idx *NumberOwnerIndex) Keys() []Identifier {
	out := make([]Identifier, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Owners returns the owners recorded for id, sorted ascending.
func (idx *NumberOwnerIndex) Owners(id Identifier) []string {
	set := idx.owners[id]
	out := make([]string, 0, len(set))
	for owner := range set {
		out = append(out, owner)
	}
	sort.Strings(out)
	return out
}

// Range calls fn for every identifier in first-occurrence order with its
// sorted owners. Iteration stops when fn returns false.
func (idx *NumberOwnerIndex) Range(fn func(id Identifier, owners []string) bool) {
	for _, id := range idx.keys {
		if !fn(id, idx.Owners(id)) {
			return
		}
	}
}

// BuildIndex scans rows in order and groups owners by every number found in
// their field. Rows with an absent field are skipped. Owner text is kept
// verbatim.
func BuildIndex(rows []models.SourceRow) *NumberOwnerIndex {
	idx := NewNumberOwnerIndex()
	for _, row := range rows {
		if row.Field.IsAbsent() {
			continue
		}
		owner := row.Owner.String()
		for _, id := range ExtractNumbers(row.Field) {
			idx.Add(id, owner)
		}
	}
	return idx
}
