// CLAUDE:SUMMARY "Did you mean" suggestions by bounded edit distance, plus the curated popular-term fallback for empty queries.
package catalog

import (
	"sort"

	"github.com/kasagi/gomical/pkg/locale"
)

// Suggestions returns up to limit terms close to query: candidates are
// every item name and keyword, kept when their edit distance to the query
// is between 1 and 3. Identical terms are excluded — there is nothing to
// suggest when the user already typed it.
func (c *Catalog) Suggestions(query string, loc locale.Locale, limit int) []string {
	if limit <= 0 {
		return nil
	}
	q := Normalize(query)

	type candidate struct {
		term     string
		distance int
	}
	var candidates []candidate
	seen := make(map[string]bool)

	consider := func(term string) {
		if seen[term] {
			return
		}
		seen[term] = true
		d := levenshtein(q, Normalize(term))
		if d > 0 && d <= 3 {
			candidates = append(candidates, candidate{term: term, distance: d})
		}
	}

	for _, it := range c.items {
		consider(it.Name.Resolve(loc))
		for _, kw := range it.SearchKeywords(loc) {
			consider(kw)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.term
	}
	return out
}

// PopularTerms returns the first limit entries of the curated per-locale
// ranked list. No computation: the list is editorial.
func (c *Catalog) PopularTerms(loc locale.Locale, limit int) []string {
	terms := c.popular[loc]
	if terms == nil {
		terms = c.popular[locale.Default]
	}
	if limit < 0 {
		limit = 0
	}
	if limit > len(terms) {
		limit = len(terms)
	}
	out := make([]string, limit)
	copy(out, terms[:limit])
	return out
}
