package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/qyinm/shoptui/types"
)

// Match is a search hit with its catalog position.
type Match struct {
	Index    int
	Product  types.Product
	Distance int
}

// Closest returns the product whose name has the smallest edit distance to
// name. ok is false for an empty catalog or when the best candidate is more
// than half the query length away.
func (c Catalog) Closest(name string) (types.Product, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" || len(c.products) == 0 {
		return types.Product{}, false
	}

	best, bestDist := -1, 0
	for i, p := range c.products {
		d := levenshtein.ComputeDistance(q, strings.ToLower(p.Name()))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > (len(q)+1)/2 {
		return types.Product{}, false
	}
	return c.products[best], true
}

// Search ranks products against query. Substring hits on the name or
// description come first (distance 0), then names within edit distance of
// half the query length. Ties keep catalog order. limit <= 0 means no limit.
func (c Catalog) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	maxDist := (len(q) + 1) / 2
	matches := make([]Match, 0, len(c.products))
	for i, p := range c.products {
		name := strings.ToLower(p.Name())
		if strings.Contains(name, q) || strings.Contains(strings.ToLower(p.Description()), q) {
			matches = append(matches, Match{Index: i, Product: p})
			continue
		}
		if d := levenshtein.ComputeDistance(q, name); d <= maxDist {
			matches = append(matches, Match{Index: i, Product: p, Distance: d})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Distance < matches[b].Distance
	})
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}
