package store

import (
	"testing"

	"github.com/rgray/cinelog/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	entries := []domain.WatchlistEntry{
		{ID: 603, Title: "The Matrix", Status: domain.StatusWatched, Rating: 9, AddedAt: 1700000000},
		{ID: 1396, Title: "Breaking Bad", Status: domain.StatusWatching, GenreIDs: []int64{18}},
	}
	if err := s.SaveEntries(entries); err != nil {
		t.Fatalf("save entries: %v", err)
	}
	if err := s.SaveBrowseCount(42); err != nil {
		t.Fatalf("save count: %v", err)
	}

	got, ok := s.LoadEntries()
	if !ok {
		t.Fatalf("expected entries to load")
	}
	if len(got) != 2 || got[0].Title != "The Matrix" || got[1].Status != domain.StatusWatching {
		t.Fatalf("unexpected entries: %+v", got)
	}
	count, ok := s.LoadBrowseCount()
	if !ok || count != 42 {
		t.Fatalf("unexpected count: %d ok=%v", count, ok)
	}
}

func TestReopenSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.SaveEntries([]domain.WatchlistEntry{{ID: 11, Title: "Dune"}}); err != nil {
		t.Fatalf("save entries: %v", err)
	}
	if err := s.SaveBrowseCount(7); err != nil {
		t.Fatalf("save count: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()

	entries, ok := s2.LoadEntries()
	if !ok || len(entries) != 1 || entries[0].ID != 11 {
		t.Fatalf("unexpected entries after reopen: %+v ok=%v", entries, ok)
	}
	count, ok := s2.LoadBrowseCount()
	if !ok || count != 7 {
		t.Fatalf("unexpected count after reopen: %d ok=%v", count, ok)
	}
}

func TestEmptyStoreReportsNoData(t *testing.T) {
	s, err := NewBoltStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if entries, ok := s.LoadEntries(); ok {
		t.Fatalf("expected no entries, got %+v", entries)
	}
	if count, ok := s.LoadBrowseCount(); ok {
		t.Fatalf("expected no count, got %d", count)
	}
}

func TestCorruptPayloadReadsAsNoData(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Plant garbage directly in the bucket, bypassing the store.
	db, err := bolt.Open(dir+"/cinelog.db", 0600, nil)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWatchlist).Put([]byte(keyEntries), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("plant garbage: %v", err)
	}
	db.Close()

	s2, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()

	if entries, ok := s2.LoadEntries(); ok {
		t.Fatalf("expected corrupt payload to read as no data, got %+v", entries)
	}
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewBoltStore("")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if err := s.SaveEntries([]domain.WatchlistEntry{{ID: 1, Title: "Heat"}}); err != nil {
		t.Fatalf("save entries: %v", err)
	}
	entries, ok := s.LoadEntries()
	if !ok || len(entries) != 1 || entries[0].Title != "Heat" {
		t.Fatalf("unexpected entries: %+v ok=%v", entries, ok)
	}

	// A second memory-only store shares nothing with the first.
	s2, _ := NewBoltStore("")
	if _, ok := s2.LoadEntries(); ok {
		t.Fatalf("memory-only stores must be independent")
	}
}
