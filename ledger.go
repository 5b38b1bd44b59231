package cgt

import (
	"fmt"
	"sort"
)

// Ledger holds the transaction history of every security, keyed by the
// security code.
//
// Transactions of one security are kept in a slice ordered ascending by date
// (stable: input order breaks ties). The matching engine consumes the ledger
// destructively: exhausted buy lots and fully matched sells are removed from
// the slice in place.
type Ledger struct {
	entries map[string][]*Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string][]*Transaction)}
}

// Append adds transactions to a security's history, in input order.
func (l *Ledger) Append(security string, txs ...*Transaction) {
	l.entries[security] = append(l.entries[security], txs...)
}

// Transactions returns the current transaction sequence of a security.
// The returned slice is the ledger's own storage.
func (l *Ledger) Transactions(security string) []*Transaction {
	return l.entries[security]
}

// set replaces a security's transaction sequence after the engine has
// consumed lots from it.
func (l *Ledger) set(security string, txs []*Transaction) {
	l.entries[security] = txs
}

// Securities returns all security codes in lexical order.
func (l *Ledger) Securities() []string {
	codes := make([]string, 0, len(l.entries))
	for code := range l.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of securities in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// IsEmpty reports whether the ledger holds no securities at all.
func (l *Ledger) IsEmpty() bool { return len(l.entries) == 0 }

// SortByDate stably sorts every security's transactions ascending by date.
// The input contract does not guarantee chronological order, and matching
// requires it.
func (l *Ledger) SortByDate() {
	for _, txs := range l.entries {
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.Before(txs[j].Date)
		})
	}
}

// Validate checks every transaction against the input contract and fails on
// the first malformed one, before any matching has mutated the ledger.
func (l *Ledger) Validate() error {
	for _, code := range l.Securities() {
		for _, tx := range l.entries[code] {
			if err := tx.Validate(); err != nil {
				return fmt.Errorf("security %s: %w", code, err)
			}
		}
	}
	return nil
}
