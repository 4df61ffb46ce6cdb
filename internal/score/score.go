// Package score persists the top-5 leaderboard as a JSON file.
package score

import (
	"encoding/json"
	"os"
	"sort"
)

// MaxEntries caps the leaderboard length.
const MaxEntries = 5

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store reads and writes the leaderboard file. A missing or corrupt file
// degrades to an empty leaderboard - persistence problems are never fatal
// to a game session.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted entries sorted descending by score, capped
// at MaxEntries. Any read or decode error yields an empty list.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return normalize(entries)
}

// Save writes the entries to disk, sorted and capped.
func (s *Store) Save(entries []Entry) error {
	data, err := json.Marshal(normalize(entries))
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Qualifies reports whether the score would enter the leaderboard:
// either there is room, or it beats the current lowest entry.
func (s *Store) Qualifies(score int) bool {
	entries := s.Load()
	if len(entries) < MaxEntries {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// Submit inserts the entry, re-sorts descending, truncates to the top
// MaxEntries and persists the result.
func (s *Store) Submit(name string, score int) error {
	entries := append(s.Load(), Entry{Name: name, Score: score})
	return s.Save(entries)
}

// normalize sorts descending by score and truncates to MaxEntries.
// The sort is stable so equal scores keep their insertion order.
func normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
