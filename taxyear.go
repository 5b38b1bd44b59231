package cgt

import "time"

// TaxYearOf returns the Australian financial year containing d: 1 July to
// 30 June.
func TaxYearOf(d Date) Range {
	if d.Month() >= time.July {
		return Range{From: NewDate(d.Year(), time.July, 1), To: NewDate(d.Year()+1, time.June, 30)}
	}
	return Range{From: NewDate(d.Year()-1, time.July, 1), To: NewDate(d.Year(), time.June, 30)}
}

// LatestTaxYear resolves the reporting window: the financial year containing
// the most recent sell across all securities.
//
// For each security only the most recent sell is considered (the transactions
// are scanned newest to oldest and the scan stops at the first sell found).
// Returns ErrNoSales when no security has ever sold anything.
func (l *Ledger) LatestTaxYear() (Range, error) {
	var latest Date
	found := false

	for _, code := range l.Securities() {
		txs := l.entries[code]
		for i := len(txs) - 1; i >= 0; i-- {
			if txs[i].Type != Sell {
				continue
			}
			if !found || txs[i].Date.After(latest) {
				latest = txs[i].Date
				found = true
			}
			break
		}
	}

	if !found {
		return Range{}, ErrNoSales
	}
	return TaxYearOf(latest), nil
}
