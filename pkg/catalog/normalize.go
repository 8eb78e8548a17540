// Text normalization for multilingual catalog search: case and width
// folding, punctuation stripping, and the script-specific phonetic forms
// (kana folding for Japanese, jamo decomposition for Korean).
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/kasagi/gomical/pkg/locale"
)

// searchPunct matches the characters stripped before matching. Interpunct
// and long-vowel marks survive: they are part of katakana product names.
func searchPunct(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '.', ',', '!', '?', '(', ')':
		return true
	}
	return false
}

var searchFold = transform.Chain(width.Fold, runes.Remove(runes.Predicate(searchPunct)))

// Normalize produces the canonical search form of s: full-width Latin and
// digits folded to half-width, punctuation and whitespace removed, case
// folded. Any input normalizes deterministically; failures in the
// transform chain fall back to the lowercased input.
func Normalize(s string) string {
	folded, _, err := transform.String(searchFold, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// FoldKana converts katakana to hiragana so that ペットボトル and
// ぺっとぼとる compare equal. Other runes pass through unchanged.
func FoldKana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - 0x60
		}
		return r
	}, s)
}

// Hangul decomposition constants (Unicode chapter 3.12).
const (
	hangulBase  = 0xAC00
	hangulEnd   = 0xD7AF
	choseong    = 0x1100
	jungseong   = 0x1161
	jongseong   = 0x11A7
	jungsCount  = 21
	jongsCount  = 28
)

// DecomposeHangul expands each precomposed Hangul syllable into its
// leading/vowel/trailing jamo sequence, so 가방 matches ㄱ-initial input.
func DecomposeHangul(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < hangulBase || r > hangulEnd {
			b.WriteRune(r)
			continue
		}
		idx := r - hangulBase
		jong := idx % jongsCount
		jung := (idx / jongsCount) % jungsCount
		cho := idx / jongsCount / jungsCount
		b.WriteRune(choseong + cho)
		b.WriteRune(jungseong + jung)
		if jong > 0 {
			b.WriteRune(jongseong + jong)
		}
	}
	return b.String()
}

// phoneticKey returns the locale-specific folded form used by the phonetic
// scoring tier, or "" for locales without one.
func phoneticKey(normalized string, loc locale.Locale) string {
	switch loc {
	case locale.JA:
		return FoldKana(normalized)
	case locale.KO:
		return DecomposeHangul(normalized)
	default:
		return ""
	}
}

// containsCJK reports whether s contains Han, kana, or Hangul runes. Used
// for the minimum-query-length guard: one such rune already carries a
// whole word.
func containsCJK(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF, // CJK unified
			r >= 0x3400 && r <= 0x4DBF, // CJK extension A
			r >= 0x3040 && r <= 0x309F, // hiragana
			r >= 0x30A0 && r <= 0x30FF, // katakana
			r >= hangulBase && r <= hangulEnd:
			return true
		}
	}
	return false
}
