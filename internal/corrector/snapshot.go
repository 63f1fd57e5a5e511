package corrector

import (
	"sync"
	"sync/atomic"

	"corrector/pkg/guard"
	"corrector/pkg/lexicon"
)

// snapshot is the immutable (Lexicon Index, Protected Set, Pattern List,
// config) tuple of spec §3. It is built once and never mutated.
type snapshot struct {
	index    *lexicon.Index
	guard    *guard.Guard
	config   Config
	stats    Stats
	loadedAt int64
}

// holder is the State Holder of spec §4.5: an atomic-publish,
// wait-free-acquire container for at most one snapshot. acquire is
// constant-time and never blocks; publish serializes against other
// publishers but never blocks an in-flight reader.
type holder struct {
	publishMu sync.Mutex
	current   atomic.Pointer[snapshot]
}

// publish installs s as the current snapshot. A successful publish
// happens-before any subsequent acquire, by the Go memory model's
// guarantee for atomic.Pointer stores and loads.
func (h *holder) publish(s *snapshot) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()
	h.current.Store(s)
}

// acquire returns the currently published snapshot, or nil if none has
// ever been published.
func (h *holder) acquire() *snapshot {
	return h.current.Load()
}
