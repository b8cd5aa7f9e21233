package watchlist

import (
	"errors"
	"testing"
	"time"

	"github.com/rgray/cinelog/internal/adapter"
	"github.com/rgray/cinelog/internal/domain"
)

// fakeStore is an in-memory domain.Store with switchable failure
type fakeStore struct {
	entries     []domain.WatchlistEntry
	entriesOK   bool
	browseCount int64
	browseOK    bool

	failWrites bool
	saveCalls  int
}

func (f *fakeStore) LoadEntries() ([]domain.WatchlistEntry, bool) {
	return f.entries, f.entriesOK
}

func (f *fakeStore) SaveEntries(entries []domain.WatchlistEntry) error {
	f.saveCalls++
	if f.failWrites {
		return errors.New("disk full")
	}
	f.entries = append([]domain.WatchlistEntry(nil), entries...)
	f.entriesOK = true
	return nil
}

func (f *fakeStore) LoadBrowseCount() (int64, bool) {
	return f.browseCount, f.browseOK
}

func (f *fakeStore) SaveBrowseCount(count int64) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	f.browseCount = count
	f.browseOK = true
	return nil
}

func (f *fakeStore) Close() error { return nil }

func newTestService(store domain.Store) *Service {
	return NewService(store, adapter.NullLogger())
}

func entry(id int64, title string) domain.WatchlistEntry {
	return domain.WatchlistEntry{ID: id, Title: title}
}

func TestAddStampsAddedAt(t *testing.T) {
	svc := newTestService(&fakeStore{})
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	svc.Add(entry(1, "X"))

	state := svc.Snapshot()
	if len(state.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(state.Entries))
	}
	if state.Entries[0].AddedAt != 1700000000 {
		t.Fatalf("unexpected AddedAt %d", state.Entries[0].AddedAt)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc := newTestService(&fakeStore{})

	svc.Add(entry(2, "X"))
	svc.SetRating(2, 7.5)
	svc.SetStatus(2, domain.StatusWatching)

	// Second add of the same id must not touch the existing entry
	svc.Add(domain.WatchlistEntry{ID: 2, Title: "Different Title"})

	state := svc.Snapshot()
	if len(state.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(state.Entries))
	}
	e := state.Entries[0]
	if e.Title != "X" || e.Rating != 7.5 || e.Status != domain.StatusWatching {
		t.Fatalf("existing entry was modified: %+v", e)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	svc.Add(entry(1, "X"))
	saves := store.saveCalls

	svc.Remove(99)

	if got := svc.Len(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
	if store.saveCalls != saves {
		t.Fatalf("no-op remove should not persist")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	svc := newTestService(&fakeStore{})
	svc.Add(entry(1, "A"))
	svc.Add(entry(2, "B"))
	svc.Add(entry(3, "C"))

	svc.Remove(2)

	state := svc.Snapshot()
	if len(state.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(state.Entries))
	}
	if state.Entries[0].ID != 1 || state.Entries[1].ID != 3 {
		t.Fatalf("unexpected order: %+v", state.Entries)
	}
}

func TestRateAndStatus(t *testing.T) {
	svc := newTestService(&fakeStore{})
	svc.Add(entry(1, "X"))

	svc.SetRating(1, 8.5)
	svc.SetStatus(1, domain.StatusWatched)

	e := svc.Snapshot().Entries[0]
	if e.Rating != 8.5 {
		t.Fatalf("expected rating 8.5, got %v", e.Rating)
	}
	if e.Status != domain.StatusWatched {
		t.Fatalf("expected status watched, got %q", e.Status)
	}

	// Unknown ids are silent no-ops
	svc.SetRating(42, 1.0)
	svc.SetStatus(42, domain.StatusPlan)
	if got := svc.Len(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
}

func TestStatusPassesThroughUnvalidated(t *testing.T) {
	svc := newTestService(&fakeStore{})
	svc.Add(entry(1, "X"))

	svc.SetStatus(1, domain.Status("binging"))

	if got := svc.Snapshot().Entries[0].Status; got != "binging" {
		t.Fatalf("expected status to pass through, got %q", got)
	}
}

func TestBrowseCountPersistsAndResumes(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	svc.IncrementBrowseCount()
	svc.IncrementBrowseCount()
	svc.IncrementBrowseCount()

	if store.browseCount != 3 {
		t.Fatalf("expected persisted count 3, got %d", store.browseCount)
	}

	// A new session resumes from the persisted value
	resumed := newTestService(&fakeStore{browseCount: 5, browseOK: true})
	resumed.IncrementBrowseCount()
	if got := resumed.Snapshot().BrowseCount; got != 6 {
		t.Fatalf("expected 6 after reload, got %d", got)
	}
}

func TestLoadsPersistedEntries(t *testing.T) {
	store := &fakeStore{
		entries:   []domain.WatchlistEntry{entry(7, "Saved"), entry(8, "Also Saved")},
		entriesOK: true,
	}
	svc := newTestService(store)

	state := svc.Snapshot()
	if len(state.Entries) != 2 || state.Entries[0].ID != 7 {
		t.Fatalf("unexpected loaded state: %+v", state.Entries)
	}
}

func TestCorruptStoreYieldsEmptyState(t *testing.T) {
	svc := newTestService(&fakeStore{entriesOK: false, browseOK: false})

	state := svc.Snapshot()
	if len(state.Entries) != 0 || state.BrowseCount != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
}

func TestWriteFailureDoesNotRollBack(t *testing.T) {
	store := &fakeStore{failWrites: true}
	svc := newTestService(store)

	svc.Add(entry(1, "X"))
	svc.IncrementBrowseCount()

	state := svc.Snapshot()
	if len(state.Entries) != 1 {
		t.Fatalf("mutation should survive a failed persist")
	}
	if state.BrowseCount != 1 {
		t.Fatalf("counter should survive a failed persist")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	svc := newTestService(&fakeStore{})
	svc.Add(entry(1, "X"))

	state := svc.Snapshot()
	state.Entries[0].Title = "mutated"

	if got := svc.Snapshot().Entries[0].Title; got != "X" {
		t.Fatalf("snapshot mutation leaked into canonical state")
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	svc := newTestService(&fakeStore{})
	fired := 0
	svc.OnChange(func() { fired++ })

	svc.Add(entry(1, "X"))
	svc.SetRating(1, 5)
	svc.Remove(1)
	svc.IncrementBrowseCount()

	if fired != 4 {
		t.Fatalf("expected 4 notifications, got %d", fired)
	}
}
