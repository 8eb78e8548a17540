// Package store provides the persistent key-value store backing user
// settings. The core treats every store failure as "no saved value":
// callers log and fall back to defaults, they never propagate.
package store

// KV is a minimal persistent key-value store.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores the value under key, replacing any previous value.
	Set(key, value string) error
}
