package renderer

import "github.com/etnz/taxlot"

// Holdings is the view model for the holdings report.
// Numbers arrive pre-formatted so the templates stay purely structural.
type Holdings struct {
	// Strategy used for the processing session (fifo, hifo).
	Strategy string
	// Lots surviving after all events, ascending id.
	Lots []HoldingLot
	// TotalQuantity is the sum of remaining quantities, 8 decimal places.
	TotalQuantity string
	// CostBasis is the total remaining cost basis, currency formatted.
	CostBasis string
}

// HoldingLot represents a single surviving lot row.
type HoldingLot struct {
	ID       int64
	Date     string
	Price    string // per-unit cost basis, currency formatted
	Quantity string // 8 decimal places
}

// NewHoldings builds the report view from the ledger state.
func NewHoldings(ledger *taxlot.Ledger, strategy taxlot.Strategy) *Holdings {
	h := &Holdings{
		Strategy:      strategy.String(),
		Lots:          make([]HoldingLot, 0, ledger.Len()),
		TotalQuantity: ledger.TotalQuantity().StringFixed(8),
		CostBasis:     ledger.CostBasis().Display(),
	}
	for _, lot := range ledger.Holdings() {
		h.Lots = append(h.Lots, HoldingLot{
			ID:       lot.ID,
			Date:     lot.Date.String(),
			Price:    lot.Price.Display(),
			Quantity: lot.Quantity.StringFixed(8),
		})
	}
	return h
}
