package catalog

import (
	"testing"

	"github.com/kasagi/gomical/pkg/locale"
)

func TestScoreTiers(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		loc    locale.Locale
		want   int
	}{
		{"exact", "ペットボトル", "ペットボトル", locale.JA, 1000},
		{"exact after normalization", "PET Bottle", "pet-bottle", locale.EN, 1000},
		{"contains 3 of 6 runes", "ボトル", "ペットボトル", locale.JA, 550},
		{"empty target", "食べ残し生ごみ", "", locale.JA, 0},
		{"contains latin", "bottle", "petbottle", locale.EN, 567},
		{"phonetic equal kana", "ぺっとぼとる", "ペットボトル", locale.JA, 800},
		{"phonetic contains kana", "ぼとる", "ペットボトル", locale.JA, 400},
		{"no kana fold outside ja", "ぺっとぼとる", "ペットボトル", locale.EN, 0},
		{"edit distance 1", "newspapers", "newspaper", locale.EN, 200},
		{"edit distance 2", "nwespaper", "newspaper", locale.EN, 100},
		{"short token rejects fuzz", "ab", "ac", locale.EN, 0},
		{"no similarity", "furniture", "can", locale.EN, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, tt.target, tt.loc); got != tt.want {
				t.Errorf("Score(%q, %q, %s) = %d, want %d", tt.query, tt.target, tt.loc, got, tt.want)
			}
		})
	}
}

func TestScoreKoreanPhonetic(t *testing.T) {
	// A query typed as raw jamo matches the precomposed syllable through
	// decomposition.
	if got := Score("가", "가", locale.KO); got != 800 {
		t.Errorf("Score(jamo 가, 가) = %d, want 800", got)
	}
	// Plain containment fires before phonetics: 신 is a substring of 신문.
	if got := Score("신", "신문", locale.KO); got != 550 {
		t.Errorf("Score(신, 신문) = %d, want 550", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"缶", "瓶", 1},
		{"ごみ", "ごみ", 0},
		{"ペット", "ペッド", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
