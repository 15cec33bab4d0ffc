package taxlot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeEvents reads a line-oriented event feed from r.
//
// Blank lines are skipped; a malformed line aborts the decode. Semantic
// validation (dates, negative amounts) happens later, when the event is
// applied.
func DecodeEvents(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	var events []Event
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

// EncodeHoldings writes the surviving lots as "id,date,price,quantity"
// records, price with 2 decimal places and quantity with 8, in ascending id
// order.
func EncodeHoldings(w io.Writer, ledger *Ledger) error {
	for _, lot := range ledger.Holdings() {
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s\n", lot.ID, lot.Date, lot.Price, lot.Quantity.StringFixed(8))
		if err != nil {
			return fmt.Errorf("writing holdings: %w", err)
		}
	}
	return nil
}

// EncodeHoldingsJSON writes the surviving lots as JSONL, one object per lot,
// in ascending id order.
func EncodeHoldingsJSON(w io.Writer, ledger *Ledger) error {
	enc := json.NewEncoder(w)
	for _, lot := range ledger.Holdings() {
		if err := enc.Encode(lot); err != nil {
			return fmt.Errorf("writing holdings: %w", err)
		}
	}
	return nil
}
