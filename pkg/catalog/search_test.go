package catalog

import (
	"testing"

	"github.com/kasagi/gomical/pkg/locale"
)

const testCatalogYAML = `
version: test
source: unit test
items:
  - id: pet-bottle
    name:
      ja: ペットボトル
      en: PET Bottle
      zh: PET瓶
      ko: PET병
    keywords:
      ja: [ペットボトル, ぺっとぼとる, ボトル]
      en: [pet bottle, plastic bottle]
      ko: [플라스틱병]
    category: cans-bottles
    instructions:
      ja: キャップとラベルを外してください。
      en: Remove cap and label.
  - id: can
    name:
      ja: 缶
      en: Can
      zh: 罐头
      ko: 캔
    keywords:
      ja: [缶, アルミ缶, かん]
      en: [can, aluminum can]
    category: cans-bottles
    instructions:
      ja: 中を軽く洗ってください。
      en: Rinse lightly.
  - id: newspaper
    name:
      ja: 新聞紙
      en: Newspaper
      zh: 报纸
      ko: 신문지
    keywords:
      ja: [新聞, しんぶん]
      en: [newspaper, news paper]
      ko: [신문]
    category: mixed-paper
    instructions:
      ja: ひもで十字にしばってください。
      en: Tie with string.
  - id: food-waste
    name:
      ja: 生ごみ
      en: Food Waste
    keywords:
      ja: [生ごみ, なまごみ]
      en: [food waste, leftovers]
    category: normal-garbage
    instructions:
      ja: 水気をよく切ってください。
      en: Drain water well.
popular_terms:
  ja: [生ごみ, ペットボトル, 缶]
  en: [food waste, plastic bottle, can]
`

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func ids(items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestSearchExactFirst(t *testing.T) {
	c := testCatalog(t)

	got := c.Search("ペットボトル", locale.JA)
	if len(got) == 0 || got[0].ID != "pet-bottle" {
		t.Fatalf("Search(ペットボトル) = %v, want pet-bottle first", ids(got))
	}
}

func TestSearchHiraganaMatchesKatakana(t *testing.T) {
	c := testCatalog(t)

	got := c.Search("ぺっとぼとる", locale.JA)
	if len(got) == 0 || got[0].ID != "pet-bottle" {
		t.Fatalf("Search(ぺっとぼとる) = %v, want pet-bottle first", ids(got))
	}
}

func TestSearchCrossLanguageKeywords(t *testing.T) {
	c := testCatalog(t)

	// English keywords are searchable from the Japanese locale.
	got := c.Search("pet bottle", locale.JA)
	if len(got) == 0 || got[0].ID != "pet-bottle" {
		t.Fatalf("Search(pet bottle, ja) = %v, want pet-bottle first", ids(got))
	}

	// Japanese keywords are searchable from every locale.
	got = c.Search("ペットボトル", locale.KO)
	if len(got) == 0 || got[0].ID != "pet-bottle" {
		t.Fatalf("Search(ペットボトル, ko) = %v, want pet-bottle first", ids(got))
	}
}

func TestSearchTypo(t *testing.T) {
	c := testCatalog(t)

	got := c.Search("newspapers", locale.EN)
	if len(got) == 0 || got[0].ID != "newspaper" {
		t.Fatalf("Search(newspapers) = %v, want newspaper first", ids(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := testCatalog(t)

	if got := c.Search("", locale.JA); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", ids(got))
	}
	if got := c.Search("   ", locale.JA); got != nil {
		t.Errorf("Search(blank) = %v, want nil", ids(got))
	}
}

func TestSearchNoMatch(t *testing.T) {
	c := testCatalog(t)

	if got := c.Search("refrigerator", locale.EN); len(got) != 0 {
		t.Errorf("Search(refrigerator) = %v, want empty", ids(got))
	}
}

func TestSearchShortQueryGuard(t *testing.T) {
	c := testCatalog(t)

	// One Latin rune is below the guard: exact matches only, and no
	// single-letter name or keyword exists.
	if got := c.Search("c", locale.EN); len(got) != 0 {
		t.Errorf("Search(c) = %v, want empty", ids(got))
	}

	// One CJK rune carries a whole word and passes the guard.
	got := c.Search("缶", locale.JA)
	if len(got) != 1 || got[0].ID != "can" {
		t.Fatalf("Search(缶) = %v, want exactly [can]", ids(got))
	}
}

func TestSearchKeywordBelowName(t *testing.T) {
	c := testCatalog(t)

	// アルミ缶 only matches the can item's keyword; 缶 matches its name
	// exactly. The name hit must stay ahead of other items entirely.
	got := c.Search("アルミ缶", locale.JA)
	if len(got) == 0 || got[0].ID != "can" {
		t.Fatalf("Search(アルミ缶) = %v, want can first", ids(got))
	}
}

func TestSearchKeywordsMergeDeduplicated(t *testing.T) {
	c := testCatalog(t)

	it := c.ItemByID("pet-bottle")
	kws := it.SearchKeywords(locale.JA)

	seen := make(map[string]int)
	for _, kw := range kws {
		seen[kw]++
		if seen[kw] > 1 {
			t.Errorf("keyword %q appears twice in %v", kw, kws)
		}
	}
	// Locale-own keywords come before foreign ones.
	if kws[0] != "ペットボトル" {
		t.Errorf("first ja keyword = %q, want ペットボトル", kws[0])
	}
}
