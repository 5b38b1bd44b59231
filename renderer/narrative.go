// Package renderer turns a cgt.Report into its presentation forms: the
// transaction narrative, the summary text document, the tabular CSV export,
// and a markdown view for the terminal. The engine never formats anything
// itself.
package renderer

import (
	"fmt"
	"strings"

	"github.com/robertmieta/cgt"
)

// Narrative renders the ordered narrative events to the text block embedded
// in the summary document. The wording follows the broker-statement
// reconciliation style: one paragraph per sale, one indented line per matched
// lot.
func Narrative(events []cgt.Event) string {
	var b strings.Builder
	for _, event := range events {
		switch ev := event.(type) {
		case cgt.SaleEvent:
			fmt.Fprintf(&b, "\n%d shares of %s sold on %s for %s (brokerage fee not included).\n",
				ev.Shares, ev.Security, ev.Date.Broker(), ev.Proceeds.Ledger())
		case cgt.LotMatchEvent:
			fmt.Fprintf(&b, "  %d shares of which were bought on %s for ", ev.Shares, ev.BuyDate.Broker())
			if ev.Approx {
				fmt.Fprintf(&b, "approx %s (fractional cost including brokerage fee).", ev.Cost.Ledger())
			} else {
				fmt.Fprintf(&b, "%s (cost including brokerage fee).", ev.Cost.Ledger())
			}
			if ev.Gain.IsNegative() {
				fmt.Fprintf(&b, " Capital Loss: %s\n", ev.Gain.Ledger())
				continue
			}
			fmt.Fprintf(&b, " Capital Gain: %s", ev.Gain.Ledger())
			if ev.LongTerm {
				// Informational: shown whenever the holding qualifies, even
				// when the discount is not enabled for the totals.
				fmt.Fprintf(&b, " (or %s after 12 month 50%% discount for tax purposes)\n", ev.Gain.Half().Ledger())
			} else {
				fmt.Fprintln(&b)
			}
		}
	}
	return b.String()
}
