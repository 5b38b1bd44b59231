package cgt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// readDateFormat is the broker's statement date format (dd/mm/yyyy, single digits allowed).
const readDateFormat = "2/1/2006"

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// isoReadFormat is a permissive ISO read format (allows single-digit month/day).
const isoReadFormat = "2006-1-2"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Broker formats the date the way the broker's statements do (dd/mm/yyyy).
func (d Date) Broker() string { return d.time().Format("02/01/2006") }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// WholeYearsUntil returns the number of whole calendar years elapsed from d to
// x. The count only ticks over once the anniversary of d has been reached, so
// a holding from 15/01/2024 to 14/01/2025 is still 0 whole years.
func (d Date) WholeYearsUntil(x Date) int {
	years := x.y - d.y
	if x.m < d.m || (x.m == d.m && x.d < d.d) {
		// anniversary not reached yet that year
		years--
	}
	return years
}

// ParseDate parses a Date from a string. It accepts the broker's dd/mm/yyyy
// format as well as ISO-8601 (leniently, "2025-7-1" works).
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if strings.Contains(str, "/") {
		on, err := time.Parse(readDateFormat, str)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q want format dd/mm/yyyy: %w", str, err)
		}
		return NewDate(on.Date()), nil
	}
	on, err := time.Parse(isoReadFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
