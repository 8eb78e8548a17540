package catalog

import (
	"fmt"

	"github.com/kasagi/gomical/pkg/locale"
)

// Category is a disposal class. The set is closed: every switch over it is
// exhaustive, with no default fallthrough for unknown values.
type Category string

const (
	NormalGarbage    Category = "normal-garbage"
	CansBottles      Category = "cans-bottles"
	GlassBottles     Category = "glass-bottles"
	UsedBatteries    Category = "batteries"
	MixedPaper       Category = "mixed-paper"
	PlasticPackaging Category = "plastic-packaging"
	SmallMetal       Category = "small-metal"
	Oversized        Category = "oversized" // reservation-only, never on the calendar
)

// Categories lists all categories in display order. Occurrence results
// follow this order.
var Categories = []Category{
	NormalGarbage,
	CansBottles,
	GlassBottles,
	UsedBatteries,
	MixedPaper,
	PlasticPackaging,
	SmallMetal,
	Oversized,
}

// ParseCategory validates a category string from YAML or an API request.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case NormalGarbage, CansBottles, GlassBottles, UsedBatteries,
		MixedPaper, PlasticPackaging, SmallMetal, Oversized:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

var categoryNames = map[Category]locale.Text{
	NormalGarbage: {
		locale.JA: "普通ごみ",
		locale.EN: "General Garbage",
		locale.ZH: "可燃垃圾",
		locale.KO: "타는쓰레기",
	},
	CansBottles: {
		locale.JA: "空き缶・ペットボトル",
		locale.EN: "Empty Cans & PET Bottles",
		locale.ZH: "空罐・PET瓶",
		locale.KO: "빈캔・페트병",
	},
	GlassBottles: {
		locale.JA: "空きびん",
		locale.EN: "Empty Glass Bottles",
		locale.ZH: "空瓶",
		locale.KO: "빈병",
	},
	UsedBatteries: {
		locale.JA: "使用済み乾電池",
		locale.EN: "Used Batteries",
		locale.ZH: "废电池",
		locale.KO: "사용한 건전지",
	},
	MixedPaper: {
		locale.JA: "ミックスペーパー",
		locale.EN: "Mixed Paper",
		locale.ZH: "混合纸张",
		locale.KO: "혼합 종이",
	},
	PlasticPackaging: {
		locale.JA: "プラスチック資源",
		locale.EN: "Plastic Resources",
		locale.ZH: "塑料资源",
		locale.KO: "플라스틱 자원",
	},
	SmallMetal: {
		locale.JA: "小物金属",
		locale.EN: "Small Metal Items",
		locale.ZH: "小型金属",
		locale.KO: "소형금속",
	},
	Oversized: {
		locale.JA: "粗大ごみ",
		locale.EN: "Oversized Waste",
		locale.ZH: "大型垃圾",
		locale.KO: "대형폐기물",
	},
}

// DisplayName returns the localized display name for c.
func (c Category) DisplayName(loc locale.Locale) string {
	return categoryNames[c].Resolve(loc)
}

// Color returns the UI color token for c.
func (c Category) Color() string {
	switch c {
	case NormalGarbage:
		return "#FF7043"
	case CansBottles:
		return "#42A5F5"
	case GlassBottles:
		return "#26A69A"
	case UsedBatteries:
		return "#EF5350"
	case MixedPaper:
		return "#8D6E63"
	case PlasticPackaging:
		return "#66BB6A"
	case SmallMetal:
		return "#78909C"
	case Oversized:
		return "#AB47BC"
	}
	return ""
}
