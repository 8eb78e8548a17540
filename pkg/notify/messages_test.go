package notify

import (
	"testing"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
)

func TestJoinCategoryNames(t *testing.T) {
	cats := []catalog.Category{catalog.NormalGarbage, catalog.MixedPaper}
	tests := []struct {
		loc  locale.Locale
		want string
	}{
		{locale.JA, "普通ごみ・ミックスペーパー"},
		{locale.ZH, "可燃垃圾・混合纸张"},
		{locale.KO, "타는쓰레기・혼합 종이"},
		{locale.EN, "General Garbage, Mixed Paper"},
	}
	for _, tt := range tests {
		if got := joinCategoryNames(cats, tt.loc); got != tt.want {
			t.Errorf("joinCategoryNames(%s) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestBuildContent(t *testing.T) {
	cats := []catalog.Category{catalog.NormalGarbage}

	evening := buildContent(cats, locale.JA, true)
	if evening.Title != "ごみ収集のお知らせ" {
		t.Errorf("Title = %q", evening.Title)
	}
	if evening.Body != "明日は普通ごみの収集日です" {
		t.Errorf("evening Body = %q", evening.Body)
	}

	morning := buildContent(cats, locale.JA, false)
	if morning.Body != "今日は普通ごみの収集日です" {
		t.Errorf("morning Body = %q", morning.Body)
	}

	en := buildContent(cats, locale.EN, true)
	if en.Title != "Waste Collection Reminder" {
		t.Errorf("en Title = %q", en.Title)
	}
	if en.Body != "Tomorrow is General Garbage collection day" {
		t.Errorf("en Body = %q", en.Body)
	}
}
