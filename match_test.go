package cgt

import (
	"errors"
	"testing"
)

var fy25 = Range{From: D("2024-07-01"), To: D("2025-06-30")}

// run matches a single security and returns the consumed list alongside the results.
func run(t *testing.T, txs []*Transaction, window Range, opts Options) ([]*Transaction, GainTotals, []Event) {
	t.Helper()
	list, totals, events, err := matchSecurity("XYZ", txs, window, opts)
	if err != nil {
		t.Fatalf("matchSecurity() error = %v", err)
	}
	return list, totals, events
}

func TestMatchFIFOAcrossTwoLots(t *testing.T) {
	// 150 sold: 100 from a long-term lot, 50 from a short-term one.
	txs := []*Transaction{
		buy("2023-01-15", 100, 1000.00),
		buy("2024-01-15", 100, 1200.00),
		sell("2024-08-20", 150, 3000.00),
	}

	list, totals, events := run(t, txs, fy25, Options{Strategy: FIFO, ApplyDiscount: true})

	if !totals.LongTerm.Equal(M(1000.00)) {
		t.Errorf("long-term total = %s, want 1000.00", totals.LongTerm.Fixed())
	}
	if !totals.ShortTerm.Equal(M(400.00)) {
		t.Errorf("short-term total = %s, want 400.00", totals.ShortTerm.Fixed())
	}

	// Sequence: the sale opening, then one match per lot.
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	first, ok := events[1].(LotMatchEvent)
	if !ok {
		t.Fatalf("events[1] is %T, want LotMatchEvent", events[1])
	}
	if first.Shares != 100 || !first.Cost.Equal(M(1000.00)) || !first.Proceeds.Equal(M(2000.00)) || !first.Gain.Equal(M(1000.00)) || !first.LongTerm {
		t.Errorf("first match = %+v, want 100 shares, cost 1000.00, proceeds 2000.00, gain 1000.00, long-term", first)
	}
	second := events[2].(LotMatchEvent)
	if second.Shares != 50 || !second.Cost.Equal(M(600.00)) || !second.Proceeds.Equal(M(1000.00)) || !second.Gain.Equal(M(400.00)) || second.LongTerm {
		t.Errorf("second match = %+v, want 50 shares, cost 600.00, proceeds 1000.00, gain 400.00, short-term", second)
	}

	// The first lot and the sell are gone; the second lot survives split.
	if len(list) != 1 {
		t.Fatalf("got %d surviving transactions, want 1", len(list))
	}
	if list[0].Type != Buy || list[0].Remaining != 50 || list[0].Quantity != 100 {
		t.Errorf("surviving lot = %s remaining %d of %d, want buy with 50 of 100", list[0].Type, list[0].Remaining, list[0].Quantity)
	}
}

func TestMatchOutOfWindowSellConsumesSilently(t *testing.T) {
	// The first sell predates the window: it must consume lots without
	// contributing gains or narrative, so the second sell matches against
	// what is actually left.
	txs := []*Transaction{
		buy("2022-01-10", 100, 1000.00),
		sell("2024-06-30", 50, 900.00), // one day before the window
		sell("2024-07-01", 50, 900.00), // exactly on the boundary: included
	}

	list, totals, events := run(t, txs, fy25, Options{Strategy: FIFO})

	// Only the in-window sell is reported: proceeds 900, cost 500, gain 400.
	if !totals.Combined().Equal(M(400.00)) {
		t.Errorf("combined total = %s, want 400.00", totals.Combined().Fixed())
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (one sale, one match)", len(events))
	}
	if len(list) != 0 {
		t.Errorf("got %d surviving transactions, want 0", len(list))
	}
}

func TestMatchStrategyEquivalenceOnSingleLot(t *testing.T) {
	// With exactly one candidate lot, every strategy must produce the same gain.
	optsList := []Options{
		{Strategy: FIFO},
		{Strategy: MinimizeGain, ApplyDiscount: false},
		{Strategy: MinimizeGain, ApplyDiscount: true},
	}
	for _, opts := range optsList {
		t.Run(opts.Strategy.String(), func(t *testing.T) {
			txs := []*Transaction{
				buy("2023-01-15", 100, 1000.00),
				sell("2024-08-20", 100, 1500.00),
			}
			_, totals, _ := run(t, txs, fy25, opts)
			if !totals.Combined().Equal(M(500.00)) {
				t.Errorf("opts %+v: combined = %s, want 500.00", opts, totals.Combined().Fixed())
			}
		})
	}
}

func TestMatchMinimizeConsumesHighestCostFirst(t *testing.T) {
	// Two lots at $1.00 and $2.00 a unit; minimizing (without discount)
	// consumes the expensive one first.
	txs := []*Transaction{
		buy("2024-08-01", 100, 100.00),
		buy("2024-09-01", 100, 200.00),
		sell("2024-10-01", 100, 300.00),
	}

	list, totals, _ := run(t, txs, fy25, Options{Strategy: MinimizeGain})

	if !totals.Combined().Equal(M(100.00)) {
		t.Errorf("combined = %s, want 100.00 (300 proceeds - 200 cost)", totals.Combined().Fixed())
	}
	// The cheap lot survives untouched.
	if len(list) != 1 || !list[0].Value.Equal(M(100.00)) || list[0].Remaining != 100 {
		t.Errorf("surviving lot = %+v, want the $100 lot intact", list[0])
	}
}

func TestMatchMinimizeWithDiscountPrefersDiscountedGain(t *testing.T) {
	// Candidate A: long-term, raw gain $2.00/unit, effective $1.00 after the
	// discount. Candidate B: short-term, raw gain $1.50/unit. A is consumed
	// first even though its raw gain is larger.
	txs := []*Transaction{
		buy("2023-01-01", 100, 100.00), // A
		buy("2024-08-01", 100, 150.00), // B
		sell("2025-01-02", 100, 300.00),
	}

	list, totals, _ := run(t, txs, fy25, Options{Strategy: MinimizeGain, ApplyDiscount: true})

	if !totals.LongTerm.Equal(M(200.00)) || !totals.ShortTerm.IsZero() {
		t.Errorf("totals = %+v, want long-term 200.00 only", totals)
	}
	if len(list) != 1 || !list[0].Value.Equal(M(150.00)) {
		t.Errorf("surviving lot = %+v, want candidate B intact", list[0])
	}
}

func TestMatchMinimizeWithDiscountRealizesLossesFirst(t *testing.T) {
	// A loss-making lot sorts before any gain-making one.
	txs := []*Transaction{
		buy("2024-08-01", 100, 100.00), // gain lot
		buy("2024-09-01", 100, 400.00), // loss lot
		sell("2024-10-01", 100, 300.00),
	}

	list, totals, _ := run(t, txs, fy25, Options{Strategy: MinimizeGain, ApplyDiscount: true})

	if !totals.Combined().Equal(M(-100.00)) {
		t.Errorf("combined = %s, want -100.00", totals.Combined().Fixed())
	}
	if len(list) != 1 || !list[0].Value.Equal(M(100.00)) {
		t.Errorf("surviving lot = %+v, want the gain lot intact", list[0])
	}
}

func TestMatchOversell(t *testing.T) {
	txs := []*Transaction{
		buy("2023-01-15", 50, 500.00),
		sell("2024-08-20", 100, 2000.00),
	}

	_, _, _, err := matchSecurity("XYZ", txs, fy25, Options{})
	var oversell *OversellError
	if !errors.As(err, &oversell) {
		t.Fatalf("matchSecurity() error = %v, want *OversellError", err)
	}
	if oversell.Security != "XYZ" || oversell.Remaining != 50 {
		t.Errorf("OversellError = %+v, want security XYZ with 50 unmatched", oversell)
	}
}

func TestMatchConservation(t *testing.T) {
	// Total bought == total sold + remaining shares of surviving lots, with
	// lots split across several sells.
	txs := []*Transaction{
		buy("2022-01-10", 100, 1000.00),
		buy("2022-06-10", 75, 900.00),
		sell("2023-01-10", 30, 450.00),
		buy("2023-06-10", 50, 800.00),
		sell("2024-08-10", 120, 2400.00),
	}
	var bought, sold int64
	for _, tx := range txs {
		if tx.Type == Buy {
			bought += tx.Quantity
		} else {
			sold += tx.Quantity
		}
	}

	for _, strategy := range []MatchingStrategy{FIFO, MinimizeGain} {
		t.Run(strategy.String(), func(t *testing.T) {
			clone := make([]*Transaction, 0, len(txs))
			for _, tx := range txs {
				c := *tx
				clone = append(clone, &c)
			}
			list, _, _ := run(t, clone, fy25, Options{Strategy: strategy, ApplyDiscount: true})

			var remaining int64
			for _, tx := range list {
				if tx.Type != Buy {
					t.Fatalf("a non-buy transaction survived matching: %+v", tx)
				}
				if tx.Remaining < 0 {
					t.Fatalf("negative remaining shares: %+v", tx)
				}
				remaining += tx.Remaining
			}
			if bought != sold+remaining {
				t.Errorf("conservation broken: bought %d, sold %d, remaining %d", bought, sold, remaining)
			}
		})
	}
}

func TestMatchRoundingDirection(t *testing.T) {
	// 1 of 3 shares bought for $100: the exact cost is 33.333..., the floored
	// cost must not exceed it; proceeds round the other way.
	b := buy("2023-01-15", 3, 100.00)
	s := sell("2024-08-20", 1, 50.00)
	ev := matchLot("XYZ", b, s, 1, false)

	if !ev.Cost.Equal(M(33.33)) {
		t.Errorf("cost = %s, want 33.33 (floored)", ev.Cost.Fixed())
	}
	if !ev.Proceeds.Equal(M(50.00)) {
		t.Errorf("proceeds = %s, want 50.00", ev.Proceeds.Fixed())
	}
	if !ev.Gain.Equal(M(16.67)) {
		t.Errorf("gain = %s, want 16.67", ev.Gain.Fixed())
	}

	// Uneven proceeds: 1 of 3 shares sold for $100 rounds up.
	b2 := buy("2023-01-15", 1, 10.00)
	s2 := sell("2024-08-20", 3, 100.00)
	ev2 := matchLot("XYZ", b2, s2, 1, false)
	if !ev2.Proceeds.Equal(M(33.34)) {
		t.Errorf("proceeds = %s, want 33.34 (ceiled)", ev2.Proceeds.Fixed())
	}
	if !ev2.Gain.Equal(M(23.34)) {
		t.Errorf("gain = %s, want 23.34", ev2.Gain.Fixed())
	}
}

func TestMatchApproxFlag(t *testing.T) {
	// The cost is exact only when a never-split lot is consumed whole; any
	// split, past or present, makes it a fractional approximation.
	txs := []*Transaction{
		buy("2022-01-10", 40, 400.00),
		buy("2022-06-10", 60, 900.00),
		sell("2024-08-10", 40, 800.00), // consumes the first lot exactly
		sell("2024-09-10", 30, 600.00), // splits the second lot
		sell("2024-10-10", 30, 600.00), // consumes the split remainder
	}
	_, _, events := run(t, txs, fy25, Options{Strategy: FIFO})

	var matches []LotMatchEvent
	for _, ev := range events {
		if m, ok := ev.(LotMatchEvent); ok {
			matches = append(matches, m)
		}
	}
	if len(matches) != 3 {
		t.Fatalf("got %d lot matches, want 3", len(matches))
	}
	if matches[0].Approx {
		t.Error("exact whole-lot consumption should not be approximate")
	}
	if !matches[1].Approx {
		t.Error("splitting a lot should be approximate")
	}
	if !matches[2].Approx {
		t.Error("consuming a previously split lot should be approximate")
	}
}
