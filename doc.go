// Package cgt computes realized capital gains and losses for security sales
// within an Australian financial year, by matching sells against prior buy
// lots.
//
// The core functionalities include:
//   - Ledger Model: per-security transaction histories, date-ordered and
//     destructively consumed during a single matching pass.
//   - Tax Year Resolution: the reporting window (1 July to 30 June) is the
//     financial year containing the most recent sell across the ledger.
//   - Lot Matching: sells are matched against prior buys under a choice of
//     strategies (FIFO, or gain-minimizing reordering with or without the
//     12 month discount rule), splitting lots as needed.
//   - Conservative Rounding: purchase costs are floored to the cent, sale
//     proceeds ceiled, so the reported gain is never understated.
//   - Aggregation: per-security short/long-term accumulators and a grand
//     total with the 50% long-term discount applied once at the total level.
//   - Portfolio Snapshot: residual holdings after matching, for verification
//     against the actual brokerage portfolio.
//
// This package serves as the foundational logic for the `ccgt` command-line
// tool. Ingestion of broker CSV exports lives in the commsec sub-package and
// rendering of reports in the renderer sub-package; the engine itself does no
// I/O and holds no ambient state.
package cgt
