package history

import "context"

// Store is the narrow persistence interface for the duplicate history.
// Callers load once at the start of an invocation, accumulate admitted
// entries in memory, and save once at the end.
//
// The store is deliberately non-atomic best effort: two concurrent
// invocations can both observe a stale history and both admit the same
// summary. Callers needing exactly-once semantics must add an external
// locking layer; the store does not provide a transactional guarantee.
type Store interface {
	Load(ctx context.Context) (*History, error)
	Save(ctx context.Context, h *History) error
	// Reset clears all entries and stamps the history with a fresh identifier.
	Reset(ctx context.Context) error
}
