// Package sequence discards superseded responses. Each list refresh takes a
// number from Begin; when it finishes, Latest reports whether a newer refresh
// for the same key has started meanwhile, and Done releases the key.
package sequence

import "sync"

// Tracker hands out sequence numbers per key. Numbers are unique across
// keys, so a key released by Done never hands out a number twice.
type Tracker struct {
	mu   sync.Mutex
	next uint64
	last map[string]uint64
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]uint64)}
}

// Begin starts a request for key and returns its number
func (t *Tracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.last[key] = t.next
	return t.next
}

// Latest reports whether seq is still the newest request for key
func (t *Tracker) Latest(key string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last[key] == seq
}

// Done ends request seq. The key is dropped when no newer request for it
// is in flight; otherwise the newer one releases it.
func (t *Tracker) Done(key string, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last[key] == seq {
		delete(t.last, key)
	}
}

// Forget drops the state for key, e.g. on logout
func (t *Tracker) Forget(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, key)
}

// Len is the number of keys with a request in flight
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}
