package fundwatch

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames is the fixed table of accepted month names. Labels are matched
// against this table only, never against a locale, so that the same label
// parses the same way everywhere.
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Month identifies one imported snapshot, e.g. "September 2024".
// It is the sole temporal key of the book.
type Month struct {
	year int
	m    time.Month
}

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, m time.Month) Month { return Month{year: year, m: m} }

// ParseMonth parses a canonical "Month Year" label. The month must be a full
// name from the fixed table and the year exactly four digits; anything else
// (abbreviations, extra tokens, reversed order) is rejected.
func ParseMonth(label string) (Month, error) {
	parts := strings.Split(label, " ")
	if len(parts) != 2 {
		return Month{}, fmt.Errorf("invalid month %q: %w", label, ErrInvalidPeriod)
	}
	m, ok := monthByName(parts[0])
	if !ok {
		return Month{}, fmt.Errorf("invalid month %q: unknown month name %q: %w", label, parts[0], ErrInvalidPeriod)
	}
	if len(parts[1]) != 4 {
		return Month{}, fmt.Errorf("invalid month %q: want a 4-digit year: %w", label, ErrInvalidPeriod)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1000 {
		return Month{}, fmt.Errorf("invalid month %q: want a 4-digit year: %w", label, ErrInvalidPeriod)
	}
	return Month{year: year, m: m}, nil
}

// MustParseMonth is like ParseMonth but panics on error. For tests.
func MustParseMonth(label string) Month {
	m, err := ParseMonth(label)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// IsValidMonth reports whether label is a canonical "Month Year" label.
func IsValidMonth(label string) bool {
	_, err := ParseMonth(label)
	return err == nil
}

func monthByName(name string) (time.Month, bool) {
	for i, n := range monthNames {
		if n == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// Year returns the calendar year of the month.
func (m Month) Year() int { return m.year }

// Month returns the calendar month.
func (m Month) Month() time.Month { return m.m }

// String formats the month in its canonical label form, round-tripping
// with ParseMonth.
func (m Month) String() string {
	return monthNames[m.m-1] + " " + strconv.Itoa(m.year)
}

// Before reports whether m is chronologically before x. Label strings do
// not sort chronologically (month names sort alphabetically), so any
// ordered listing must go through this comparison.
func (m Month) Before(x Month) bool {
	if m.year != x.year {
		return m.year < x.year
	}
	return m.m < x.m
}

// MarshalJSON encodes the month as its canonical label.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a canonical label.
func (m *Month) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseMonth(label)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
