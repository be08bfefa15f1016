// Package healthlog keeps the daily health tracker entries in a JSON file
// store (health_logs.json), one entry per (date, animal) pair.
package healthlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Entry struct {
	Date          string  `json:"date"` // "2006-01-02"
	AnimalID      uint    `json:"animal_id"`
	TagNumber     string  `json:"tag_number"`
	WeightKg      float64 `json:"weight_kg"`
	MilkLiters    float64 `json:"milk_liters"`
	HealthChecked bool    `json:"health_checked"`
	MedicineGiven bool    `json:"medicine_given"`
	MedicineName  string  `json:"medicine_name"`
	Dose          string  `json:"dose"`
	Notes         string  `json:"notes"`
}

// IsEmpty reports whether the entry carries no observation at all. Empty
// entries are never stored; upserting one removes any existing record for the
// same day and animal.
func (e Entry) IsEmpty() bool {
	return e.MilkLiters <= 0 &&
		!e.HealthChecked &&
		!e.MedicineGiven &&
		strings.TrimSpace(e.Notes) == ""
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, "health_logs.json")}
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

func (s *Store) All() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// ByDate returns every entry logged on the given "2006-01-02" day.
func (s *Store) ByDate(date string) ([]Entry, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0)
	for _, e := range all {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// ByMonth returns every entry whose date falls inside the given calendar
// month.
func (s *Store) ByMonth(year, month int) ([]Entry, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	prefix := monthPrefix(year, month)
	out := make([]Entry, 0)
	for _, e := range all {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out, nil
}

// UpsertMany saves a batch of tracker rows in one write. An entry replaces the
// existing record for its (date, animal) pair; an empty entry deletes it.
func (s *Store) UpsertMany(entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.MedicineName == "" {
			e.MedicineName = "None"
		}
		if !e.MedicineGiven {
			e.MedicineName = "None"
			e.Dose = ""
		}

		idx := -1
		for i, existing := range all {
			if existing.Date == e.Date && existing.AnimalID == e.AnimalID {
				idx = i
				break
			}
		}

		if e.IsEmpty() {
			if idx >= 0 {
				all = append(all[:idx], all[idx+1:]...)
			}
			continue
		}

		if idx >= 0 {
			all[idx] = e
		} else {
			all = append(all, e)
		}
	}

	return s.write(all)
}

func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}

func (s *Store) read() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
