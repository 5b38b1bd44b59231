package cgt

import "fmt"

// Report contains the results of a capital gains calculation. It is the
// whole output contract: reporting collaborators render it to text, tabular
// or terminal form without ever touching the engine.
type Report struct {
	Window          Range
	Strategy        MatchingStrategy
	DiscountApplied bool
	Securities      []SecurityGains // sorted by security code
	Total           Money           // grand total, discounted when the rule applies
	Events          []Event         // ordered transaction narrative
	Holdings        map[string]int64
}

// Calculate computes the realized capital gains of the most recent financial
// year found in the ledger.
//
// The pipeline: validate and date-sort the ledger, resolve the reporting
// window from the latest sell, filter the securities with a relevant sell,
// match every sell against its prior buy lots, then aggregate and snapshot
// the residual holdings.
//
// The ledger is consumed destructively and must not be reused afterwards.
// Calculate returns ErrNoSales when the ledger never sells, and
// ErrNoRelevantActivity when no security sold inside the resolved window
// (a valid empty outcome). An *OversellError aborts the run with no report.
func Calculate(ledger *Ledger, opts Options) (*Report, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}
	ledger.SortByDate()

	window, err := ledger.LatestTaxYear()
	if err != nil {
		return nil, err
	}

	filtered := ledger.FilterTaxYear(window)
	if filtered.IsEmpty() {
		return nil, fmt.Errorf("%w (%s)", ErrNoRelevantActivity, window)
	}

	report := &Report{
		Window:          window,
		Strategy:        opts.Strategy,
		DiscountApplied: opts.ApplyDiscount,
	}

	for _, code := range filtered.Securities() {
		list, totals, events, err := matchSecurity(code, filtered.Transactions(code), window, opts)
		if err != nil {
			return nil, err
		}
		filtered.set(code, list)
		report.Securities = append(report.Securities, SecurityGains{
			Security:  code,
			ShortTerm: totals.ShortTerm,
			LongTerm:  totals.LongTerm,
		})
		report.Events = append(report.Events, events...)
	}

	report.Total = totalGains(report.Securities, opts.ApplyDiscount)
	report.Holdings = filtered.Holdings()
	return report, nil
}
