// Package taxlot maintains a cost-basis ledger for a single financial asset.
//
// Buy events aggregate into tax lots, one lot per acquisition date with a
// weighted-average cost basis. Sell events deplete lots under a selectable
// accounting strategy (FIFO or HIFO) with all-or-nothing semantics: a sale
// that cannot be fully satisfied leaves the ledger untouched.
//
// All amounts are exact decimals; no arithmetic goes through float64.
package taxlot
