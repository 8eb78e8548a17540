// CLAUDE:SUMMARY Tiered fuzzy ranking of catalog items: per-item max score over name and keywords, length bonus, deterministic ordering.
package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kasagi/gomical/pkg/locale"
)

// Keyword hits rank slightly below equivalent name hits.
const keywordDiscount = 0.9

// Search resolves a free-text query to ranked catalog items. An empty or
// whitespace-only query returns an empty slice, never an error.
//
// Very short queries (below one CJK rune, or two runes otherwise) only
// match exactly: fuzzy tiers over one or two characters would flood the
// results.
func (c *Catalog) Search(query string, loc locale.Locale) []*Item {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	q := Normalize(query)

	minLen := 2
	if containsCJK(query) {
		minLen = 1
	}
	if utf8.RuneCountInString(q) < minLen {
		return c.exactOnly(q, loc)
	}

	type scored struct {
		item  *Item
		score int
	}
	var results []scored

	qLen := utf8.RuneCountInString(q)
	for _, it := range c.items {
		name := it.Name.Resolve(loc)
		maxScore := Score(query, name, loc)

		for _, kw := range it.SearchKeywords(loc) {
			if s := int(float64(Score(query, kw, loc)) * keywordDiscount); s > maxScore {
				maxScore = s
			}
		}

		if maxScore > 0 {
			nameLen := utf8.RuneCountInString(Normalize(name))
			switch d := qLen - nameLen; {
			case d == 0:
				maxScore += 100
			case d >= -2 && d <= 2:
				maxScore += 50
			}
			results = append(results, scored{item: it, score: maxScore})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		// Shorter names are more specific.
		ni := utf8.RuneCountInString(results[i].item.Name.Resolve(loc))
		nj := utf8.RuneCountInString(results[j].item.Name.Resolve(loc))
		return ni < nj
	})

	out := make([]*Item, len(results))
	for i, r := range results {
		out[i] = r.item
	}
	return out
}

// exactOnly matches sub-guard queries against exact normalized names and
// keywords.
func (c *Catalog) exactOnly(q string, loc locale.Locale) []*Item {
	var out []*Item
	for _, it := range c.items {
		if Normalize(it.Name.Resolve(loc)) == q {
			out = append(out, it)
			continue
		}
		for _, kw := range it.SearchKeywords(loc) {
			if Normalize(kw) == q {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
