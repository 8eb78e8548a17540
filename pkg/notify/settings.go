// CLAUDE:SUMMARY Notification settings persisted as JSON in the key-value store; read failures degrade to defaults.
package notify

import (
	"encoding/json"
	"log/slog"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/store"
)

const (
	settingsKey     = "notification_settings"
	selectedAreaKey = "selected_area"
)

// ClockTime is a wall-clock trigger time.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Settings is the user's notification profile. The scheduler reads it on
// every reschedule and never mutates it.
type Settings struct {
	Enabled     bool               `json:"enabled"`
	EveningTime ClockTime          `json:"evening_time"`
	MorningTime ClockTime          `json:"morning_time"`
	Categories  []catalog.Category `json:"categories"`
}

// DefaultSettings enables both daily reminders for every collectible
// category.
func DefaultSettings() Settings {
	cats := make([]catalog.Category, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if c != catalog.Oversized {
			cats = append(cats, c)
		}
	}
	return Settings{
		Enabled:     true,
		EveningTime: ClockTime{Hour: 19, Minute: 0},
		MorningTime: ClockTime{Hour: 7, Minute: 0},
		Categories:  cats,
	}
}

// categoryEnabled reports whether cat is in the enabled set.
func (s Settings) categoryEnabled(cat catalog.Category) bool {
	for _, c := range s.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// LoadSettings reads settings from the store. Any failure — missing key,
// store error, corrupt JSON — degrades to defaults with a log line, never
// an error: saved fields overlay the defaults, so settings written by
// older versions keep working.
func LoadSettings(kv store.KV, logger *slog.Logger) Settings {
	settings := DefaultSettings()

	raw, ok, err := kv.Get(settingsKey)
	if err != nil {
		logger.Warn("settings read failed, using defaults", "error", err)
		return settings
	}
	if !ok {
		return settings
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		logger.Warn("settings corrupt, using defaults", "error", err)
		return DefaultSettings()
	}
	return settings
}

// SaveSettings writes settings to the store. Failures are logged and
// swallowed: losing a settings write degrades to defaults on next load.
func SaveSettings(kv store.KV, logger *slog.Logger, s Settings) {
	raw, err := json.Marshal(s)
	if err != nil {
		logger.Warn("settings encode failed", "error", err)
		return
	}
	if err := kv.Set(settingsKey, string(raw)); err != nil {
		logger.Warn("settings write failed", "error", err)
	}
}

// LoadSelectedArea returns the persisted area id, or "" when none is
// saved or the store fails.
func LoadSelectedArea(kv store.KV, logger *slog.Logger) string {
	id, ok, err := kv.Get(selectedAreaKey)
	if err != nil {
		logger.Warn("selected area read failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

// SaveSelectedArea persists the area id. Failures are logged and
// swallowed.
func SaveSelectedArea(kv store.KV, logger *slog.Logger, id string) {
	if err := kv.Set(selectedAreaKey, id); err != nil {
		logger.Warn("selected area write failed", "error", err)
	}
}
