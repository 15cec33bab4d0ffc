package taxlot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Action is a typed string for identifying event kinds.
type Action string

// Actions recognized on the event feed.
const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// Event is one entry of the input feed: an acquisition or a sale.
//
// The date travels as the raw feed string because date validation belongs to
// the buy operation (a sale never looks at it). Sell events carry a price
// field on the wire too; the allocator ignores it.
type Event struct {
	Date     string
	Action   Action
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// ParseEvent parses one feed line of the form "date,action,price,quantity".
//
// Amounts are parsed as exact decimals; non-finite values like NaN are
// rejected here at the boundary.
func ParseEvent(line string) (Event, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Event{}, fmt.Errorf("event %q: want 4 comma-separated fields, got %d", line, len(fields))
	}

	action := Action(strings.TrimSpace(fields[1]))
	switch action {
	case ActionBuy, ActionSell:
	default:
		return Event{}, fmt.Errorf("event %q: unsupported action %q", line, action)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return Event{}, fmt.Errorf("event %q: invalid price: %w", line, err)
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return Event{}, fmt.Errorf("event %q: invalid quantity: %w", line, err)
	}

	return Event{
		Date:     strings.TrimSpace(fields[0]),
		Action:   action,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Apply routes one event to the ledger.
//
// For buys the date is validated before the ledger is touched; prices are
// denominated in 'currency'. The strategy is fixed for a whole processing
// session, not per event.
func (l *Ledger) Apply(ev Event, strategy Strategy, currency string) error {
	switch ev.Action {
	case ActionBuy:
		day, err := ParseDate(ev.Date)
		if err != nil {
			return err
		}
		return l.Buy(day, M(ev.Price, currency), Q(ev.Quantity))
	case ActionSell:
		return l.Sell(strategy, Q(ev.Quantity))
	default:
		return fmt.Errorf("unsupported action %q", ev.Action)
	}
}
