// Package lifecycle tracks each animal's lifecycle status (Active, Pregnant,
// On Sell, Sold, Dead) in animal_status.json, one entry per animal.
package lifecycle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var StatusOptions = []string{"Active", "Pregnant", "On Sell", "Sold", "Dead"}

func validStatus(s string) bool {
	for _, opt := range StatusOptions {
		if opt == s {
			return true
		}
	}
	return false
}

type StatusEntry struct {
	AnimalID  uint   `json:"animal_id"`
	TagNumber string `json:"tag_number"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	UpdatedOn string `json:"updated_on"` // "2006-01-02"
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "animal_status.json")}
}

func (s *Store) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return os.WriteFile(s.path, []byte("[]"), 0o644)
	}
	return nil
}

func (s *Store) All() ([]StatusEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// ByAnimal returns the stored entry for the animal, or false when none exists
// (the animal is then treated as "Active").
func (s *Store) ByAnimal(animalID uint) (StatusEntry, bool, error) {
	all, err := s.All()
	if err != nil {
		return StatusEntry{}, false, err
	}
	for _, e := range all {
		if e.AnimalID == animalID {
			return e, true, nil
		}
	}
	return StatusEntry{}, false, nil
}

// UpsertMany replaces or inserts one entry per animal and rewrites the file
// sorted by tag number. A blank status falls back to "Active".
func (s *Store) UpsertMany(entries []StatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}

	for _, e := range entries {
		e.Status = strings.TrimSpace(e.Status)
		if e.Status == "" {
			e.Status = "Active"
		}

		idx := -1
		for i, existing := range all {
			if existing.AnimalID == e.AnimalID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			all[idx] = e
		} else {
			all = append(all, e)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].TagNumber < all[j].TagNumber
	})
	return s.write(all)
}

func (s *Store) read() ([]StatusEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []StatusEntry{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []StatusEntry{}, nil
	}

	var entries []StatusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) write(entries []StatusEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
