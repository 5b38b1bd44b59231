package cgt

// Event is one entry of the transaction narrative. Events are produced by the
// matching engine in the order the matches happened and rendered to text by a
// separate reporting collaborator, so the engine stays free of presentation
// concerns.
type Event interface{ narrativeEvent() }

// SaleEvent opens the narrative for one sell transaction that falls inside
// the reporting window.
type SaleEvent struct {
	Security string
	Shares   int64 // shares to be matched for this sale
	Date     Date
	Proceeds Money // total sale value, brokerage fee excluded
}

// LotMatchEvent records shares of a sale matched against one buy lot.
type LotMatchEvent struct {
	Security string
	Shares   int64 // shares matched against this lot
	BuyDate  Date
	Cost     Money // purchase cost of the matched shares, floored to the cent
	Proceeds Money // sale proceeds of the matched shares, ceiled to the cent
	Gain     Money // signed, ceiled to the cent
	LongTerm bool  // held for one whole year or more
	Approx   bool  // the lot was split, so the cost is a fractional approximation
}

func (SaleEvent) narrativeEvent()     {}
func (LotMatchEvent) narrativeEvent() {}
