package cgt

import "slices"

// FilterTaxYear returns the sub-ledger of securities whose most recent sell
// falls inside the window.
//
// Only the most recent sell decides relevance: earlier sells are not
// considered even if they fall inside the window. A relevant security keeps
// its full, unmodified history so that cost basis carries over from lots
// bought before the window. The sub-ledger shares the Transaction values with
// the receiver (the per-security slice is copied, the records are not), so
// matching on the sub-ledger mutates the remaining-share state both see.
func (l *Ledger) FilterTaxYear(window Range) *Ledger {
	filtered := NewLedger()

	for _, code := range l.Securities() {
		txs := l.entries[code]
		for i := len(txs) - 1; i >= 0; i-- {
			if txs[i].Type != Sell {
				continue
			}
			if window.Contains(txs[i].Date) {
				filtered.entries[code] = slices.Clone(txs)
			}
			break
		}
	}
	return filtered
}
