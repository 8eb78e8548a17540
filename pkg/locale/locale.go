// Package locale defines the closed set of supported locales and the
// per-locale text mapping used by catalog records and message templates.
package locale

// Locale is a supported UI/search locale.
type Locale string

const (
	JA Locale = "ja" // default
	EN Locale = "en"
	ZH Locale = "zh"
	KO Locale = "ko"
)

// Default is the fallback locale for every Text resolution.
const Default = JA

// All lists the supported locales in a stable order.
var All = []Locale{JA, EN, ZH, KO}

// Parse maps a locale code to a Locale, falling back to the default for
// unknown codes. Unknown codes are not an error: callers come from URL
// params and tool arguments.
func Parse(code string) Locale {
	switch Locale(code) {
	case JA, EN, ZH, KO:
		return Locale(code)
	default:
		return Default
	}
}

// Text is a per-locale string mapping. YAML form:
//
//	name:
//	  ja: 生ごみ
//	  en: Food Waste
type Text map[Locale]string

// Resolve returns the value for loc, falling back to the default locale,
// then to any non-empty value. Empty Text resolves to "".
func (t Text) Resolve(loc Locale) string {
	if v := t[loc]; v != "" {
		return v
	}
	if v := t[Default]; v != "" {
		return v
	}
	for _, l := range All {
		if v := t[l]; v != "" {
			return v
		}
	}
	return ""
}
