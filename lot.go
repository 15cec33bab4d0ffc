package taxlot

import "slices"

// Lot represents a discrete acquisition of the asset still (partially)
// unconsumed, tracked for cost basis calculations.
type Lot struct {
	ID       int64    // assigned at creation, stable across mutations, never reused
	Date     Date     // acquisition date, the aggregation key for buys
	Price    Money    // cost basis per unit, weighted average across same-date buys
	Quantity Quantity // amount still held
}

// Cost returns the remaining cost basis of the lot (price times quantity).
func (l Lot) Cost() Money { return l.Price.Mul(l.Quantity) }

// MarshalJSON keeps a stable field order for line-oriented consumers.
func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("date", l.Date)
	w.Append("price", l.Price)
	w.Append("quantity", l.Quantity)
	return w.MarshalJSON()
}

// lots is the ordered collection owned by a Ledger, ascending id.
type lots []Lot

// byDate returns the lot acquired on 'day', or nil.
// The ledger invariant guarantees at most one match.
func (l lots) byDate(day Date) *Lot {
	for i := range l {
		if l[i].Date == day {
			return &l[i]
		}
	}
	return nil
}

// total returns the sum of all remaining quantities.
func (l lots) total() Quantity {
	var sum Quantity
	for _, lot := range l {
		sum = sum.Add(lot.Quantity)
	}
	return sum
}

// clone returns a working copy safe to mutate during a sale simulation.
func (l lots) clone() lots { return slices.Clone(l) }
