// Package watchlist owns the canonical watchlist state: every mutation
// goes through the Service, persists synchronously, and is visible to
// subsequent snapshots. Persistence is best-effort by contract - a failed
// write is logged and swallowed, the in-memory state stands.
package watchlist

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rgray/cinelog/internal/domain"
)

// Service is the sole writer of the watchlist state. It is constructed
// once per session and handed to every consumer; reads come back as
// copies, never as references into the canonical slice.
type Service struct {
	store  domain.Store
	logger *slog.Logger

	mu          sync.RWMutex
	entries     []domain.WatchlistEntry
	browseCount int64
	onChange    []func()

	// Injectable clock for AddedAt stamping
	now func() time.Time
}

// NewService loads persisted state from the store. Absent or corrupt
// payloads yield an empty watchlist, never an error.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, logger: logger, now: time.Now}

	if entries, ok := store.LoadEntries(); ok {
		s.entries = entries
	}
	if count, ok := store.LoadBrowseCount(); ok {
		s.browseCount = count
	}
	logger.Debug("loaded watchlist", "entries", len(s.entries), "browseCount", s.browseCount)
	return s
}

// OnChange registers a callback fired after every completed mutation.
// Callbacks run outside the state lock.
func (s *Service) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state in insertion order.
func (s *Service) Snapshot() domain.WatchlistState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.WatchlistEntry, len(s.entries))
	copy(entries, s.entries)
	return domain.WatchlistState{Entries: entries, BrowseCount: s.browseCount}
}

// Contains reports whether an entry with the given id is present.
func (s *Service) Contains(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// Len returns the number of entries.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add appends the entry and stamps AddedAt. Adding an id that is already
// present is a no-op: the existing entry, including any user rating and
// status, is preserved.
func (s *Service) Add(entry domain.WatchlistEntry) {
	s.mu.Lock()
	if s.indexOf(entry.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	entry.AddedAt = s.now().Unix()
	s.entries = append(s.entries, entry)
	s.persistEntriesLocked()
	s.mu.Unlock()

	s.logger.Info("added to watchlist", "id", entry.ID, "title", entry.Title)
	s.notify()
}

// Remove deletes the entry with the given id. Unknown ids are a silent
// no-op.
func (s *Service) Remove(id int64) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.persistEntriesLocked()
	s.mu.Unlock()

	s.logger.Info("removed from watchlist", "id", id)
	s.notify()
}

// SetRating stores the user rating on the matching entry. The value is
// stored as given; range and step are the caller's constraint. Unknown
// ids are a silent no-op.
func (s *Service) SetRating(id int64, rating float64) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.entries[i].Rating = rating
	s.persistEntriesLocked()
	s.mu.Unlock()

	s.logger.Debug("set rating", "id", id, "rating", rating)
	s.notify()
}

// SetStatus stores the status on the matching entry. The value is not
// validated against the recognized set; aggregation folds unknown values
// into plan. Unknown ids are a silent no-op.
func (s *Service) SetStatus(id int64, status domain.Status) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.entries[i].Status = status
	s.persistEntriesLocked()
	s.mu.Unlock()

	s.logger.Debug("set status", "id", id, "status", status)
	s.notify()
}

// IncrementBrowseCount bumps the browse counter by one. Callers invoke it
// once per logical view event; the counter itself does not deduplicate.
func (s *Service) IncrementBrowseCount() {
	s.mu.Lock()
	s.browseCount++
	if err := s.store.SaveBrowseCount(s.browseCount); err != nil {
		s.logger.Error("failed to persist browse count", "error", err)
	}
	s.mu.Unlock()

	s.notify()
}

// indexOf returns the position of id in the entries, or -1. Caller holds
// at least a read lock.
func (s *Service) indexOf(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persistEntriesLocked writes the full list. Caller holds the write lock.
// Failure does not roll back the mutation.
func (s *Service) persistEntriesLocked() {
	if err := s.store.SaveEntries(s.entries); err != nil {
		s.logger.Error("failed to persist watchlist", "error", err, "entries", len(s.entries))
	}
}

func (s *Service) notify() {
	s.mu.RLock()
	callbacks := make([]func(), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.RUnlock()
	for _, fn := range callbacks {
		fn()
	}
}
