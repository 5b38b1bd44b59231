// Package commsec ingests CommSec transaction CSV exports into a cgt.Ledger.
//
// The broker's export carries a preamble of account information before the
// actual table, quotes fields inconsistently, and reports every amount as an
// unsigned magnitude. All of that format variance is absorbed here; the
// engine only ever sees an already-typed ledger.
package commsec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robertmieta/cgt"
)

// ErrMalformed is wrapped in every parse error: a statement field is missing
// or cannot be coerced to its type.
var ErrMalformed = errors.New("malformed commsec csv")

// The export table has eleven columns. Only four carry transaction data; the
// others (order id, price, brokerage, ...) are ignored.
const columns = 11

const (
	colCode     = 0
	colDate     = 2
	colType     = 3
	colQuantity = 4
	colValue    = 10
)

// expected holds the normalized header names of the columns we read.
var expected = map[int]string{
	colDate:     "date",
	colType:     "type",
	colQuantity: "quantity",
	colValue:    "total_value",
}

// Import reads one CSV export and appends its transactions to the ledger.
func Import(r io.Reader, ledger *cgt.Ledger) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // preamble rows have fewer fields than the table
	reader.LazyQuotes = true

	// Scan past the preamble: the first record with a full set of columns
	// and a parseable date is the first data row, the record right before it
	// is the header.
	var header, first []string
	var previous []string
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return fmt.Errorf("%w: no transaction table found", ErrMalformed)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line++
		if isDataRow(record) {
			header, first = previous, record
			break
		}
		previous = record
	}

	if len(header) < columns {
		return fmt.Errorf("%w: incorrect column format, want %d columns got %d", ErrMalformed, columns, len(header))
	}
	for col, want := range expected {
		if got := normalizeHeader(header[col]); got != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrMalformed, col, got, want)
		}
	}

	record := first
	for {
		// The table ends at the first empty or short row.
		if len(record) != columns || strings.TrimSpace(record[colCode]) == "" {
			return nil
		}
		if err := appendRow(ledger, record); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		var err error
		record, err = reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line++
	}
}

// ImportFiles reads a set of statement files into a fresh ledger. Files that
// are not CSV, and summaries previously exported by this tool, are skipped.
func ImportFiles(paths ...string) (*cgt.Ledger, error) {
	ledger := cgt.NewLedger()
	for _, path := range paths {
		name := strings.ToLower(filepath.Base(path))
		if !strings.HasSuffix(name, ".csv") || strings.Contains(name, "capital_gains_summary") {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = Import(f, ledger)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return ledger, nil
}

// appendRow coerces one table row and appends it to the ledger.
func appendRow(ledger *cgt.Ledger, record []string) error {
	code := strings.TrimSpace(record[colCode])

	day, err := cgt.ParseDate(cell(record[colDate]))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	txType, err := cgt.ParseTransactionType(cell(record[colType]))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	quantity, err := strconv.ParseInt(cell(record[colQuantity]), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid quantity %q", ErrMalformed, record[colQuantity])
	}

	value, err := cgt.ParseMoney(cell(record[colValue]))
	if err != nil {
		return fmt.Errorf("%w: invalid total value %q", ErrMalformed, record[colValue])
	}

	var tx *cgt.Transaction
	switch txType {
	case cgt.Buy:
		tx = cgt.NewBuy(day, quantity, value)
	case cgt.Sell:
		tx = cgt.NewSell(day, quantity, value)
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	ledger.Append(code, tx)
	return nil
}

// cell trims a field and strips any minus sign: the statements report
// magnitudes, the transaction type carries the direction.
func cell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "-", ""))
}

// normalizeHeader normalizes header text by removing "($)", replacing "+"
// with "_", then lowercasing, trimming, and replacing spaces with
// underscores.
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "($)", "")
	h = strings.ReplaceAll(h, "+", "_")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

// isDataRow reports whether a record looks like the first row of the
// transaction table: full width, and a broker-formatted date in the date
// column.
func isDataRow(record []string) bool {
	if len(record) != columns {
		return false
	}
	_, err := cgt.ParseDate(strings.TrimSpace(record[colDate]))
	return err == nil
}
