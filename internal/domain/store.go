package domain

// Store is the durable adapter between process memory and disk.
// Reads are synchronous and never fail: an absent or corrupt payload is
// reported as (zero value, false), not an error. Writes are best-effort;
// callers log and swallow failures by policy.
type Store interface {
	// LoadEntries reads the persisted watchlist, in insertion order
	LoadEntries() ([]WatchlistEntry, bool)

	// SaveEntries writes the full watchlist
	SaveEntries(entries []WatchlistEntry) error

	// LoadBrowseCount reads the persisted browse counter
	LoadBrowseCount() (int64, bool)

	// SaveBrowseCount writes the browse counter
	SaveBrowseCount(count int64) error

	Close() error
}
