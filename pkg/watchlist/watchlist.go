// Package watchlist is the durable, deduplicated store of saved movies.
// The whole collection lives under one storage key and is rewritten after
// every mutation, so persisted and in-memory state never diverge.
package watchlist

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/cinepick/cinepick/pkg/models"
	"github.com/cinepick/cinepick/pkg/storage"
)

const storageKey = "movie_watchlist_v1"

// SortOrder selects a display order for Sort.
type SortOrder string

const (
	// SortByAdded orders newest additions first (the default display order).
	SortByAdded SortOrder = "added"
	// SortByRating orders highest rating first.
	SortByRating SortOrder = "rating"
	// SortByTitle orders titles lexicographically.
	SortByTitle SortOrder = "title"
)

// Store holds the watchlist. It is loaded once at construction; corrupt or
// non-array stored data degrades to an empty list, never an error.
type Store struct {
	kv storage.KV

	mu    sync.Mutex
	items []models.WatchlistItem

	now func() time.Time
}

// New loads the watchlist from kv.
func New(kv storage.KV) *Store {
	s := &Store{kv: kv, now: time.Now}
	s.items = s.load()
	return s
}

func (s *Store) load() []models.WatchlistItem {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		log.Printf("watchlist: load: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var items []models.WatchlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// Items returns a snapshot of the collection in newest-first order.
func (s *Store) Items() []models.WatchlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WatchlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsSaved reports whether a movie with the given id is in the watchlist.
func (s *Store) IsSaved(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Add prepends movie to the watchlist, stamping the time it was added.
// Adding an already-saved id is a no-op.
func (s *Store) Add(movie models.MovieSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(movie.ID) >= 0 {
		return
	}
	item := models.WatchlistItem{
		MovieSummary: movie,
		AddedAt:      s.now().UTC().Format(time.RFC3339),
	}
	s.items = append([]models.WatchlistItem{item}, s.items...)
	s.persistLocked()
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persistLocked()
}

func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("watchlist: marshal: %v", err)
		return
	}
	if err := s.kv.Set(storageKey, string(raw)); err != nil {
		log.Printf("watchlist: persist: %v", err)
	}
}

// Sort returns items in the given display order without mutating the
// input.
func Sort(items []models.WatchlistItem, order SortOrder) []models.WatchlistItem {
	out := make([]models.WatchlistItem, len(items))
	copy(out, items)
	switch order {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt > out[j].AddedAt })
	}
	return out
}
