package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robertmieta/cgt"
)

// ExportBasename is the stem of the files a calculation run exports, e.g.
// "capital_gains_summary_01072024-30062025".
func ExportBasename(window cgt.Range) string {
	return "capital_gains_summary_" + window.Identifier()
}

// SummaryText renders the full summary document: the holdings verification
// block, the narrative of the relevant transactions, the per-security
// breakdown and the grand total.
func SummaryText(report *cgt.Report) string {
	var b strings.Builder

	b.WriteString("Use the below to verify it matches your portfolio.\n")
	b.WriteString("Current portfolio - number of shares held\n")
	b.WriteString("(only displaying stocks sold in last financial year):\n")
	for _, code := range sortedCodes(report.Holdings) {
		fmt.Fprintf(&b, "    %s: %d\n", code, report.Holdings[code])
	}

	fmt.Fprintf(&b, "\nTransactions relevant to tax year: %s to %s\n",
		report.Window.From.Broker(), report.Window.To.Broker())
	b.WriteString(Narrative(report.Events))

	b.WriteString("\nCapital Gains per Stock Breakdown:\n")
	for _, s := range report.Securities {
		fmt.Fprintf(&b, "    %s: %s\n", s.Security, s.Combined().Ledger())
	}

	fmt.Fprintf(&b, "\nTotal Capital Gains (for tax purposes): %s", report.Total.Ledger())
	if report.DiscountApplied {
		b.WriteString(" (includes 12 month 50% CGT reductions)")
	}
	return b.String()
}

// SummaryCSV renders the tabular export: one row per security with its
// combined (pre-discount) gain, and the discounted grand total last.
func SummaryCSV(report *cgt.Report) string {
	var b strings.Builder
	b.WriteString("Stock Name,Capital Gain ($)\n")
	for _, s := range report.Securities {
		fmt.Fprintf(&b, "%s,%s\n", s.Security, s.Combined().Fixed())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total,%s", report.Total.Fixed())
	return b.String()
}

func sortedCodes(holdings map[string]int64) []string {
	codes := make([]string, 0, len(holdings))
	for code := range holdings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
