package fundwatch

import "errors"

// Sentinel errors returned by extraction, lookup and analysis. Call sites
// wrap them with context using fmt.Errorf and %w; callers test with
// errors.Is.
var (
	// ErrInvalidPeriod indicates a month label that is not a canonical
	// "Month Year" string. It is returned before any I/O is attempted.
	ErrInvalidPeriod = errors.New("invalid month label")

	// ErrSourceNotFound indicates the disclosure file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrBadStructure indicates the spreadsheet does not follow the
	// disclosure template (required columns are missing).
	ErrBadStructure = errors.New("unexpected sheet structure")

	// ErrNoData indicates extraction produced zero holdings.
	ErrNoData = errors.New("no holdings found")

	// ErrPeriodNotFound indicates a month absent from the book.
	ErrPeriodNotFound = errors.New("month not found in book")
)
