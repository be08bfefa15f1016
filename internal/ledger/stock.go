package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// StockLedger tracks per-product quantities in a single JSON file
// ({productKey: quantity}). Every operation takes the ledger mutex for the
// whole read-validate-write sequence: checkout must decrement against a value
// that is still correct at write time. One process, one lock; a multi-instance
// deployment would need a transactional store instead.
type StockLedger struct {
	mu   sync.Mutex
	path string
}

func NewStockLedger(dataDir string) *StockLedger {
	return &StockLedger{path: filepath.Join(dataDir, "stock.json")}
}

// EnsureInitialized seeds every catalog key with defaultQty on first run and
// backfills keys added to the catalog later, leaving existing quantities
// untouched.
func (l *StockLedger) EnsureInitialized(keys []string, defaultQty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	stock, err := l.read()
	if err != nil {
		return err
	}

	changed := false
	for _, key := range keys {
		if _, ok := stock[key]; !ok {
			stock[key] = defaultQty
			changed = true
		}
	}

	if changed {
		return l.write(stock)
	}
	return nil
}

// Get returns the current quantity, or 0 for an unknown key.
func (l *StockLedger) Get(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	stock, err := l.read()
	if err != nil {
		return 0
	}
	return stock[key]
}

// All returns a copy of the whole mapping.
func (l *StockLedger) All() (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Set overwrites a key's quantity. Negative input is clamped to 0.
func (l *StockLedger) Set(key string, qty int) error {
	if qty < 0 {
		qty = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stock, err := l.read()
	if err != nil {
		return err
	}
	stock[key] = qty
	return l.write(stock)
}

// Increase adds amount to a key. No-op when amount <= 0.
func (l *StockLedger) Increase(key string, amount int) error {
	if amount <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stock, err := l.read()
	if err != nil {
		return err
	}
	stock[key] += amount
	return l.write(stock)
}

// DecreaseBulk subtracts every requested amount, all-or-nothing. Phase one
// validates each line against the current quantities without mutating; phase
// two applies every subtraction and persists once. A checkout can therefore
// never be partially fulfilled.
func (l *StockLedger) DecreaseBulk(requests map[string]int) error {
	if len(requests) == 0 {
		return ErrInvalidRequest
	}
	for key, need := range requests {
		if key == "" || need <= 0 {
			return ErrInvalidRequest
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stock, err := l.read()
	if err != nil {
		return err
	}

	// 1) validate all
	for key, need := range requests {
		if available := stock[key]; available < need {
			return &InsufficientStockError{Key: key, Available: available}
		}
	}

	// 2) apply all
	for key, need := range requests {
		stock[key] -= need
	}

	return l.write(stock)
}

func (l *StockLedger) read() (map[string]int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return map[string]int{}, nil
	}

	var stock map[string]int
	if err := json.Unmarshal(data, &stock); err != nil {
		return nil, err
	}
	if stock == nil {
		stock = map[string]int{}
	}
	return stock, nil
}

func (l *StockLedger) write(stock map[string]int) error {
	data, err := json.MarshalIndent(stock, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
