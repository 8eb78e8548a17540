package catalog

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kasagi/gomical/pkg/locale"
)

// Similarity tiers, first applicable wins. The values come from the tuned
// production ranking and are relied on by the ranker's keyword discount.
const (
	scoreExact            = 1000
	scorePhoneticEqual    = 800
	scoreContainsBase     = 500
	scorePhoneticContains = 400
	scorePrefix           = 300
)

// Score rates how well query matches target for the given locale. Both
// strings are normalized first. Returns 0 for no usable similarity.
//
// Tier order: exact, contains, prefix, phonetic (ja/ko only), then a
// length-gated edit-distance fallback. The gates suppress false positives
// on short tokens, where a single edit is proportionally large.
func Score(query, target string, loc locale.Locale) int {
	q := Normalize(query)
	t := Normalize(target)

	if q == t {
		return scoreExact
	}
	if strings.Contains(t, q) {
		ratio := 100 * float64(utf8.RuneCountInString(q)) / float64(utf8.RuneCountInString(t))
		return scoreContainsBase + int(math.Round(ratio))
	}
	if strings.HasPrefix(t, q) {
		return scorePrefix
	}

	if pq, pt := phoneticKey(q, loc), phoneticKey(t, loc); pq != "" && pt != "" {
		if pq == pt {
			return scorePhoneticEqual
		}
		if strings.Contains(pt, pq) {
			return scorePhoneticContains
		}
	}

	distance := levenshtein(q, t)
	maxLen := utf8.RuneCountInString(q)
	if n := utf8.RuneCountInString(t); n > maxLen {
		maxLen = n
	}
	switch {
	case distance <= 1 && maxLen >= 3:
		return 250 - distance*50
	case distance <= 2 && maxLen >= 4:
		return 150 - distance*25
	case distance <= 3 && maxLen >= 6:
		return 100 - distance*10
	}
	return 0
}

// levenshtein computes the edit distance between a and b in runes, with a
// two-row rolling matrix.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
