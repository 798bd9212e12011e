// Package storage defines the durable string key/value store shared by the
// cache and the watchlist. The two owners use disjoint key prefixes, so a
// single database serves both without contention.
package storage

// KV is a synchronous string-keyed store.
type KV interface {
	// Get returns the value for key, or false if the key is absent.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	// Close releases resources.
	Close() error
}
