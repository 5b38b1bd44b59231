package cgt

// Holdings computes the residual position of every security in the ledger:
// the sum of remaining shares over all transactions still typed Buy.
//
// Computed after matching it is a read-only verification artifact, meant to
// be compared against the actual brokerage portfolio; it plays no part in the
// gain computation.
func (l *Ledger) Holdings() map[string]int64 {
	holdings := make(map[string]int64, len(l.entries))
	for code, txs := range l.entries {
		var shares int64
		for _, tx := range txs {
			if tx.Type == Buy {
				shares += tx.Remaining
			}
		}
		holdings[code] = shares
	}
	return holdings
}
