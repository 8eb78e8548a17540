// CLAUDE:SUMMARY Localized notification text: titles, tomorrow/today body templates, and category-name joining.
package notify

import (
	"fmt"
	"strings"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/locale"
)

var notificationTitles = locale.Text{
	locale.JA: "ごみ収集のお知らせ",
	locale.EN: "Waste Collection Reminder",
	locale.ZH: "垃圾收集提醒",
	locale.KO: "쓰레기 수거 알림",
}

var tomorrowTemplates = locale.Text{
	locale.JA: "明日は%sの収集日です",
	locale.EN: "Tomorrow is %s collection day",
	locale.ZH: "明天是%s收集日",
	locale.KO: "내일은 %s 수거일입니다",
}

var todayTemplates = locale.Text{
	locale.JA: "今日は%sの収集日です",
	locale.EN: "Today is %s collection day",
	locale.ZH: "今天是%s收集日",
	locale.KO: "오늘은 %s 수거일입니다",
}

// joinCategoryNames renders the localized category names with the
// locale's list separator. CJK locales use the interpunct, as the city's
// own notices do.
func joinCategoryNames(cats []catalog.Category, loc locale.Locale) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.DisplayName(loc)
	}
	sep := ", "
	if loc == locale.JA || loc == locale.ZH || loc == locale.KO {
		sep = "・"
	}
	return strings.Join(names, sep)
}

// buildContent renders the notification for a set of categories. Evening
// notifications announce tomorrow's collection, morning ones today's.
// Missing locale entries fall back to the default locale's template.
func buildContent(cats []catalog.Category, loc locale.Locale, evening bool) Content {
	templates := todayTemplates
	if evening {
		templates = tomorrowTemplates
	}
	return Content{
		Title: notificationTitles.Resolve(loc),
		Body:  fmt.Sprintf(templates.Resolve(loc), joinCategoryNames(cats, loc)),
	}
}
