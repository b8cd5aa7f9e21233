package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rgray/cinelog/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketWatchlist = []byte("watchlist")

// Keys within the watchlist bucket
const (
	keyEntries     = "watchlist"
	keyBrowseCount = "browseCount"
)

// BoltStore implements domain.Store using BoltDB. Values are JSON: an
// array of entries under one key, a bare integer under the other. A
// corrupt payload reads as "no data" so a bad disk state can never take
// the watchlist down.
type BoltStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of the last written/read payloads
	cache map[string][]byte
}

// NewBoltStore opens (or creates) the database under dataDir. An empty
// dataDir selects memory-only mode with no persistence.
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if dataDir == "" {
		return &BoltStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "cinelog.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWatchlist)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *BoltStore) get(key string, dest interface{}) bool {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWatchlist)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *BoltStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWatchlist)
		return b.Put([]byte(key), data)
	})
}

// === Watchlist ===

func (s *BoltStore) LoadEntries() ([]domain.WatchlistEntry, bool) {
	var entries []domain.WatchlistEntry
	ok := s.get(keyEntries, &entries)
	return entries, ok
}

func (s *BoltStore) SaveEntries(entries []domain.WatchlistEntry) error {
	return s.set(keyEntries, entries)
}

// === Browse counter ===

func (s *BoltStore) LoadBrowseCount() (int64, bool) {
	var count int64
	ok := s.get(keyBrowseCount, &count)
	return count, ok
}

func (s *BoltStore) SaveBrowseCount(count int64) error {
	return s.set(keyBrowseCount, count)
}
