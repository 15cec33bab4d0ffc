package taxlot

import (
	"cmp"
	"fmt"
)

// Strategy defines the lot consumption order used by a sale.
type Strategy int

const (
	// FIFO (First-In, First-Out) consumes the oldest lots first.
	FIFO Strategy = iota
	// HIFO (Highest-In, First-Out) consumes the highest cost-basis lots first.
	HIFO
)

func (s Strategy) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case HIFO:
		return "hifo"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy.
func ParseStrategy(str string) (Strategy, error) {
	switch str {
	case "fifo":
		return FIFO, nil
	case "hifo":
		return HIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, str)
	}
}

// order returns the comparison that sorts lots into the strategy's
// consumption order, or nil for an unrecognized strategy.
//
// Validation and commit are strategy-independent: adding a strategy (LIFO,
// specific identification) only requires a new ordering rule here.
func (s Strategy) order() func(a, b Lot) int {
	switch s {
	case FIFO:
		// creation order, ascending id
		return func(a, b Lot) int { return cmp.Compare(a.ID, b.ID) }
	case HIFO:
		// descending price, ties broken by ascending id to stay deterministic
		return func(a, b Lot) int {
			if c := b.Price.Compare(a.Price); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		}
	default:
		return nil
	}
}
