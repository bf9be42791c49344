package port

// Cache is a bounded key-value store placed in front of a slower port.
// Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value and true, or the zero value and false when the
	// key is missing or expired.
	Get(key K) (V, bool)

	// Set stores a value, possibly evicting the least recently used entry.
	Set(key K, value V)

	// Remove deletes a key.
	Remove(key K)

	// Len returns the number of stored entries.
	Len() int
}
