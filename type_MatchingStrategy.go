package cgt

import "fmt"

// MatchingStrategy defines how buy lots are selected when matching a sale.
type MatchingStrategy int

const (
	// FIFO (First-In, First-Out) matches sales against the oldest lots first.
	FIFO MatchingStrategy = iota
	// MinimizeGain reorders the candidate lots before each sale so that the
	// lots with the smallest tax impact are consumed first.
	MinimizeGain
)

func (s MatchingStrategy) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case MinimizeGain:
		return "minimize"
	default:
		return "unknown"
	}
}

// ParseMatchingStrategy parses a string into a MatchingStrategy.
func ParseMatchingStrategy(s string) (MatchingStrategy, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "minimize":
		return MinimizeGain, nil
	default:
		return 0, fmt.Errorf("unknown matching strategy: %q", s)
	}
}
