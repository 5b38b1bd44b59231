package cgt

import (
	"errors"
	"fmt"
)

// ErrNoSales is reported when the ledger contains no sell transaction at all,
// so no tax year can be resolved.
var ErrNoSales = errors.New("no sell transactions found in the ledger")

// ErrNoRelevantActivity is reported when no security has a sell inside the
// resolved tax year. It is a valid empty-result outcome, not a failure:
// callers distinguish it with errors.Is.
var ErrNoRelevantActivity = errors.New("no capital gains to report for this financial year")

// OversellError reports a sell whose demand exceeds the cumulative prior buy
// lots of its security. The whole calculation is aborted: partial output
// would misstate remaining holdings.
type OversellError struct {
	Security  string
	Date      Date  // date of the offending sell
	Remaining int64 // shares that could not be matched
}

func (e *OversellError) Error() string {
	return fmt.Sprintf("sold more shares of %s than owned: sell on %s leaves %d shares unmatched",
		e.Security, e.Date, e.Remaining)
}
