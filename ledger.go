package taxlot

import (
	"errors"
	"fmt"
	"slices"
)

// Error kinds reported by ledger operations. All of them are recoverable:
// a failed operation never leaves the ledger partially mutated, and the
// caller decides whether to abort or skip.
var (
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("negative price or quantity")
	ErrUnknownStrategy      = errors.New("unknown strategy")
	ErrEmptyLedger          = errors.New("no lots available for sale")
	ErrInsufficientQuantity = errors.New("insufficient lots for sale")
)

// Ledger owns the ordered collection of tax lots for a single asset.
//
// Lots are kept in creation order (ascending id). Buy and Sell are the only
// mutators; a ledger instance expects a strictly sequential stream of
// operations from a single goroutine.
type Ledger struct {
	lots    lots
	created int64 // lots ever created; ids come from here and are never reused
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{lots: make(lots, 0)}
}

// Buy records an acquisition of 'quantity' at 'price' per unit on 'day'.
//
// When a lot already exists for that date, the buy merges into it: the
// quantity adds up and the price becomes the weighted average, computed on
// the pre-update values (total cost first, one division). Otherwise a new
// lot is appended with the next id.
//
// Zero price or quantity is accepted; negative values fail with
// ErrInvalidAmount before any lot is touched.
func (l *Ledger) Buy(day Date, price Money, quantity Quantity) error {
	if price.IsNegative() || quantity.IsNegative() {
		return fmt.Errorf("%w: price %s, quantity %s", ErrInvalidAmount, price, quantity)
	}

	if lot := l.lots.byDate(day); lot != nil {
		total := lot.Quantity.Add(quantity)
		if !total.IsZero() {
			cost := lot.Price.Mul(lot.Quantity).Add(price.Mul(quantity))
			lot.Price = cost.Div(total)
		}
		// total can only be zero when both quantities are zero: the
		// existing price stands.
		lot.Quantity = total
		return nil
	}

	l.created++
	l.lots = append(l.lots, Lot{ID: l.created, Date: day, Price: price, Quantity: quantity})
	return nil
}

// Sell depletes 'quantity' from the lots, consuming them in the strategy's
// order: each lot gives up min(lot.quantity, remaining) until the sale is
// satisfied.
//
// The sale is all-or-nothing. It runs against a working copy of the lots and
// commits only when the full quantity could be consumed; on any error the
// ledger is byte-for-byte unchanged. On commit the lots return to ascending
// id order and lots depleted to exactly zero are removed.
func (l *Ledger) Sell(strategy Strategy, quantity Quantity) error {
	if quantity.IsNegative() {
		return fmt.Errorf("%w: quantity %s", ErrInvalidAmount, quantity)
	}
	order := strategy.order()
	if order == nil {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if len(l.lots) == 0 {
		return ErrEmptyLedger
	}

	working := l.lots.clone()
	slices.SortFunc(working, order)

	remaining := quantity
	for i := range working {
		if remaining.IsZero() {
			break
		}
		lot := &working[i]
		if lot.Quantity.GreaterThan(remaining) {
			lot.Quantity = lot.Quantity.Sub(remaining)
			remaining = Q(0)
		} else {
			remaining = remaining.Sub(lot.Quantity)
			lot.Quantity = Q(0)
		}
	}
	if remaining.IsPositive() {
		return fmt.Errorf("%w: short by %s", ErrInsufficientQuantity, remaining)
	}

	// The consumption order was a temporary view; the persisted order is
	// always ascending id.
	slices.SortFunc(working, FIFO.order())
	l.lots = slices.DeleteFunc(working, func(lot Lot) bool { return lot.Quantity.IsZero() })
	return nil
}

// Holdings returns the surviving lots (quantity > 0) in ascending id order.
func (l *Ledger) Holdings() []Lot {
	out := make([]Lot, 0, len(l.lots))
	for _, lot := range l.lots {
		if lot.Quantity.IsPositive() {
			out = append(out, lot)
		}
	}
	return out
}

// Len returns the number of lots currently in the ledger.
func (l *Ledger) Len() int { return len(l.lots) }

// TotalQuantity returns the sum of all remaining lot quantities.
func (l *Ledger) TotalQuantity() Quantity { return l.lots.total() }

// CostBasis returns the total remaining cost basis across all lots.
func (l *Ledger) CostBasis() Money {
	var sum Money
	for _, lot := range l.lots {
		sum = sum.Add(lot.Cost())
	}
	return sum
}
