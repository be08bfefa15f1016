package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest: a bulk decrement contained an empty product key or a
// non-positive quantity. Nothing is mutated.
var ErrInvalidRequest = errors.New("invalid stock request")

// InsufficientStockError: at least one line of a bulk decrement asked for more
// than is available. The whole call is rejected and the ledger is unchanged.
type InsufficientStockError struct {
	Key       string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s, only %d left", e.Key, e.Available)
}
