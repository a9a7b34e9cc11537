package format

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns the formats whose id or name fuzzily matches the query,
// closest first. An empty query returns every format.
func (c *Catalog) Search(query string) []Format {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.All()
	}

	targets := make([]string, len(c.ordered))
	for i, id := range c.ordered {
		targets[i] = id + " " + c.formats[id].Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		if x := cmp.Compare(a.Distance, b.Distance); x != 0 {
			return x
		}
		return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
	})

	out := make([]Format, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, c.formats[c.ordered[r.OriginalIndex]].clone())
	}
	return out
}
