package cgt

// helpers shared by the package tests.

// D is a shorthand to build a date from its ISO representation.
func D(s string) Date { return MustParse(s) }

// buy builds a buy transaction from compact literals.
func buy(day string, quantity int64, value float64) *Transaction {
	return NewBuy(D(day), quantity, M(value))
}

// sell builds a sell transaction from compact literals.
func sell(day string, quantity int64, value float64) *Transaction {
	return NewSell(D(day), quantity, M(value))
}

// ledgerOf builds a single-security ledger.
func ledgerOf(security string, txs ...*Transaction) *Ledger {
	l := NewLedger()
	l.Append(security, txs...)
	return l
}
