// Package summary turns a number/owner index into the rows and sheet layout
// of the summary tab.
package summary

import (
	"sort"
	"strings"
)

// DefaultExcludedOwners are placeholder owner values dropped from the output:
// the stringified missing value and the owner column header.
var DefaultExcludedOwners = []string{"nan", "consultor"}

// OwnerFilter drops blank owners and owners matching an excluded token,
// compared case-insensitively.
type OwnerFilter struct {
	excluded map[string]struct{}
}

// NewOwnerFilter returns a filter for the given tokens. A nil slice selects
// DefaultExcludedOwners; an empty non-nil slice excludes only blank owners.
func NewOwnerFilter(tokens []string) OwnerFilter {
	if tokens == nil {
		tokens = DefaultExcludedOwners
	}
	excluded := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		excluded[strings.ToLower(token)] = struct{}{}
	}
	return OwnerFilter{excluded: excluded}
}

// Keep reports whether owner belongs in the output.
func (f OwnerFilter) Keep(owner string) bool {
	if owner == "" {
		return false
	}
	_, drop := f.excluded[strings.ToLower(owner)]
	return !drop
}

// Apply returns the kept owners sorted ascending (byte order, case-sensitive).
func (f OwnerFilter) Apply(owners []string) []string {
	kept := make([]string, 0, len(owners))
	for _, owner := range owners {
		if f.Keep(owner) {
			kept = append(kept, owner)
		}
	}
	sort.Strings(kept)
	return kept
}
