package cgt

import (
	"slices"
	"sort"
)

// Options configures a calculation run. The zero value is FIFO matching with
// no long-term discount.
type Options struct {
	Strategy      MatchingStrategy
	ApplyDiscount bool // apply the 12 month 50% CGT discount to long-term gains
}

// GainTotals accumulates the realized gains of one security, split by holding
// period. Both figures are pre-discount.
type GainTotals struct {
	ShortTerm Money // lots held under one year
	LongTerm  Money // lots held one whole year or more
}

// Combined returns the undiscounted sum of both holding buckets.
func (g GainTotals) Combined() Money { return g.ShortTerm.Add(g.LongTerm) }

// matchSecurity runs the lot matching engine over one security's transaction
// sequence, left to right.
//
// For every sell it reorders the preceding buy candidates per the strategy,
// then consumes them until the sell is covered. Exhausted lots and fully
// matched sells are removed from the sequence. Gains are recorded only for
// sells dated inside the window, but lot consumption proceeds for every sell
// so the remaining-share bookkeeping stays correct across the window
// boundary. The consumed sequence is returned alongside the gain totals and
// the narrative events.
func matchSecurity(security string, list []*Transaction, window Range, opts Options) ([]*Transaction, GainTotals, []Event, error) {
	var totals GainTotals
	var events []Event

	i := 0
	for i < len(list) {
		if list[i].Type != Sell {
			i++
			continue
		}
		sell := list[i]
		remaining := sell.Remaining

		// The candidates change shape sell to sell (earlier sells consume
		// lots, and the key depends on this sell's price), so the reorder
		// happens before each sell, not once globally.
		if opts.Strategy == MinimizeGain {
			reorderCandidates(list[:i], sell, opts.ApplyDiscount)
		}

		inWindow := window.Contains(sell.Date)
		if inWindow {
			events = append(events, SaleEvent{Security: security, Shares: remaining, Date: sell.Date, Proceeds: sell.Value})
		}

		j := 0
		for j < i && remaining > 0 {
			buy := list[j]
			if buy.Type != Buy || buy.Remaining <= 0 {
				j++
				continue
			}

			diff := buy.Remaining - remaining
			if diff < 0 {
				// The lot is smaller than the remaining sell need: consume it
				// entirely and keep matching.
				matched := buy.Remaining
				if inWindow {
					ev := matchLot(security, buy, sell, matched, buy.Remaining != buy.Quantity)
					events = append(events, ev)
					totals = totals.add(ev)
				}
				remaining = -diff
				sell.Remaining = remaining
				list = slices.Delete(list, j, j+1)
				i--
			} else {
				// The lot covers the remainder of the sell: split it (or
				// consume it exactly) and retire the sell.
				matched := remaining
				if inWindow {
					approx := buy.Remaining != buy.Quantity || buy.Remaining != matched
					ev := matchLot(security, buy, sell, matched, approx)
					events = append(events, ev)
					totals = totals.add(ev)
				}
				remaining = 0
				sell.Remaining = 0
				buy.Remaining = diff
				list = slices.Delete(list, i, i+1)
				if diff == 0 {
					list = slices.Delete(list, j, j+1)
					i--
				}
			}
		}

		if remaining > 0 {
			return list, totals, events, &OversellError{Security: security, Date: sell.Date, Remaining: remaining}
		}
	}

	return list, totals, events, nil
}

// matchLot computes the amounts of one (sell, lot) pairing.
//
// The rounding is deliberately conservative: the cost is floored to the cent,
// the proceeds are ceiled, and the difference is ceiled again, so the
// computed gain is never understated against the unrounded value.
func matchLot(security string, buy, sell *Transaction, shares int64, approx bool) LotMatchEvent {
	cost := buy.Value.Mul(shares).Div(buy.Quantity).FloorCents()
	proceeds := sell.Value.Mul(shares).Div(sell.Quantity).CeilCents()
	gain := proceeds.Sub(cost).CeilCents()
	return LotMatchEvent{
		Security: security,
		Shares:   shares,
		BuyDate:  buy.Date,
		Cost:     cost,
		Proceeds: proceeds,
		Gain:     gain,
		LongTerm: buy.Date.WholeYearsUntil(sell.Date) >= 1,
		Approx:   approx,
	}
}

func (g GainTotals) add(ev LotMatchEvent) GainTotals {
	if ev.LongTerm {
		g.LongTerm = g.LongTerm.Add(ev.Gain)
	} else {
		g.ShortTerm = g.ShortTerm.Add(ev.Gain)
	}
	return g
}

// reorderCandidates stably re-sorts the buy candidates preceding a sell.
//
// Without the discount the highest-cost lots come first, maximizing the cost
// basis consumed. With the discount each candidate is keyed by its effective
// per-unit gain against this sell: a genuine long-term gain (held a whole
// year or more and positive) counts at half, and candidates are consumed
// ascending by that key. This prefers a discounted long-term gain over a
// larger undiscounted one, and loss-making lots before gain-making ones. The
// key is a per-lot heuristic, not a provably optimal selection.
func reorderCandidates(candidates []*Transaction, sell *Transaction, applyDiscount bool) {
	if !applyDiscount {
		sort.SliceStable(candidates, func(x, y int) bool {
			return candidates[x].UnitPrice().GreaterThan(candidates[y].UnitPrice())
		})
		return
	}

	sellUnit := sell.UnitPrice()
	key := func(buy *Transaction) Money {
		raw := sellUnit.Sub(buy.UnitPrice())
		if buy.Date.WholeYearsUntil(sell.Date) >= 1 && raw.IsPositive() {
			return raw.Half()
		}
		return raw
	}
	sort.SliceStable(candidates, func(x, y int) bool {
		return key(candidates[x]).LessThan(key(candidates[y]))
	})
}
