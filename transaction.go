package cgt

import (
	"fmt"
	"strings"
)

// TransactionType identifies the side of a transaction.
type TransactionType int

const (
	// Buy is a purchase of shares; its total value includes the brokerage fee.
	Buy TransactionType = iota
	// Sell is a disposal of shares; its total value excludes the brokerage fee.
	Sell
)

func (t TransactionType) String() string {
	switch t {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTransactionType parses a string like "Buy" or "sell" into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single buy or sell of one security.
//
// Remaining is the matching engine's working state: it starts equal to
// Quantity and only ever decreases. A buy with Remaining zero is an exhausted
// lot; a sell must reach Remaining zero or the ledger is overselling.
type Transaction struct {
	Date      Date
	Type      TransactionType
	Quantity  int64 // original size of the lot or sale
	Value     Money // total consideration for the whole original quantity
	Remaining int64
}

// NewBuy creates a buy transaction. The value is the total cost of the
// purchase including the brokerage fee.
func NewBuy(day Date, quantity int64, value Money) *Transaction {
	return &Transaction{Date: day, Type: Buy, Quantity: quantity, Value: value, Remaining: quantity}
}

// NewSell creates a sell transaction. The value is the total sale proceeds
// excluding the brokerage fee.
func NewSell(day Date, quantity int64, value Money) *Transaction {
	return &Transaction{Date: day, Type: Sell, Quantity: quantity, Value: value, Remaining: quantity}
}

// UnitPrice returns the per-share price of the original transaction. Partial
// consumption of a lot never changes its unit price, so the original quantity
// is always the divisor.
func (t *Transaction) UnitPrice() Money { return t.Value.Div(t.Quantity) }

// Validate checks the transaction fields against the input contract.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("%s transaction has no date", t.Type)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%s transaction on %s: quantity must be positive, got %d", t.Type, t.Date, t.Quantity)
	}
	if t.Value.IsNegative() {
		return fmt.Errorf("%s transaction on %s: total value must not be negative, got %s", t.Type, t.Date, t.Value)
	}
	if t.Remaining < 0 || t.Remaining > t.Quantity {
		return fmt.Errorf("%s transaction on %s: remaining shares %d out of range [0,%d]", t.Type, t.Date, t.Remaining, t.Quantity)
	}
	return nil
}
