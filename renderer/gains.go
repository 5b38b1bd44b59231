package renderer

import (
	"fmt"
	"strings"

	"github.com/robertmieta/cgt"
)

// GainsMarkdown renders the report as markdown for the terminal.
func GainsMarkdown(report *cgt.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report from %s to %s\n\n", report.Window.From.String(), report.Window.To.String())
	fmt.Fprintf(&b, "Strategy: %s", report.Strategy)
	if report.DiscountApplied {
		fmt.Fprint(&b, ", 12 month 50% discount applied to the total")
	}
	fmt.Fprint(&b, "\n\n")

	fmt.Fprint(&b, "## Gains per Security\n\n")
	fmt.Fprintln(&b, "| Security | Short Term | Long Term | Combined |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, s := range report.Securities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			s.Security,
			s.ShortTerm.SignedString(),
			s.LongTerm.SignedString(),
			s.Combined().SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | **%s** |\n", "Total", report.Total.SignedString())

	fmt.Fprint(&b, "\n## Current Holdings\n\n")
	fmt.Fprintln(&b, "| Security | Shares |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, code := range sortedCodes(report.Holdings) {
		fmt.Fprintf(&b, "| %s | %d |\n", code, report.Holdings[code])
	}
	fmt.Fprint(&b, "\nVerify the holdings against your actual portfolio; only securities sold in the reported year are shown.\n")

	return b.String()
}

// HoldingsMarkdown renders only the residual holdings table.
func HoldingsMarkdown(report *cgt.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings after sales of %s to %s\n\n", report.Window.From.String(), report.Window.To.String())
	fmt.Fprintln(&b, "| Security | Shares |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, code := range sortedCodes(report.Holdings) {
		fmt.Fprintf(&b, "| %s | %d |\n", code, report.Holdings[code])
	}
	return b.String()
}
