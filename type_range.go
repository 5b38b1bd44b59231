package cgt

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.From, r.To)
}

// Identifier computes a compact identifier for the range, used to name
// exported report files.
func (r Range) Identifier() string {
	return fmt.Sprintf("%s-%s", r.From.Format("02012006"), r.To.Format("02012006"))
}
