package cgt

// SecurityGains holds the realized gains for a single security.
type SecurityGains struct {
	Security  string
	ShortTerm Money
	LongTerm  Money
}

// Combined returns the security's reported figure: short-term plus long-term,
// always pre-discount. The discount is informational at the per-security
// level and only reduces the grand total.
func (s SecurityGains) Combined() Money { return s.ShortTerm.Add(s.LongTerm) }

// totalGains rolls the per-security figures up into the grand total. When the
// discount applies, the summed long-term total is halved once here, at the
// total level, not per lot.
func totalGains(securities []SecurityGains, applyDiscount bool) Money {
	var short, long Money
	for _, s := range securities {
		short = short.Add(s.ShortTerm)
		long = long.Add(s.LongTerm)
	}
	if applyDiscount {
		long = long.Half()
	}
	return short.Add(long)
}
