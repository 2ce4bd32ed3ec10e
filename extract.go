package fundwatch

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fund house disclosures follow a fixed template: the first rows carry the
// title and header block, and the holdings live in six consecutive columns
// starting at the third one.
const (
	headerRows      = 6
	firstDataColumn = 2 // zero-based; column C
)

// holdingFields are the canonical names bound, in order, to the six data
// columns of the template.
var holdingFields = []string{"Name", "ISIN", "Industry", "Quantity", "MarketValue", "PercentNAV"}

// ExtractHoldings normalizes an already-parsed disclosure sheet into typed
// holdings. The input is the raw 2-D cell table as the spreadsheet reader
// produced it; rows may have ragged widths (readers trim trailing empty
// cells).
//
// It returns ErrBadStructure when the sheet does not expose all six data
// columns, and ErrNoData when no holding survives the row filters.
func ExtractHoldings(table [][]string) ([]Holding, error) {
	fields := boundFields(table)
	if !hasRequiredFields(fields, holdingFields) {
		missing := missingFields(fields, holdingFields)
		return nil, fmt.Errorf("missing columns %s: %w", strings.Join(missing, ", "), ErrBadStructure)
	}

	var holdings []Holding
	for i, row := range table {
		if i < headerRows {
			continue
		}
		cells := make([]string, len(holdingFields))
		empty := true
		for j := range holdingFields {
			cells[j] = strings.TrimSpace(cell(row, firstDataColumn+j))
			if cells[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		// A holding without an identity cannot be joined across months:
		// silently skip it, like the subtotal and footer rows of the template.
		isin := cells[1]
		if isin == "" {
			continue
		}
		holdings = append(holdings, Holding{
			Fund: FundDetails{
				Name:     cells[0],
				ISIN:     isin,
				Industry: cells[2],
			},
			Data: MonthData{
				Quantity:    coerceNumber(cells[3]),
				MarketValue: coerceNumber(cells[4]),
				PercentNAV:  coerceNumber(cells[5]),
			},
		})
	}
	if len(holdings) == 0 {
		return nil, fmt.Errorf("no valid holdings in sheet: %w", ErrNoData)
	}
	return holdings, nil
}

// boundFields returns the canonical field names actually covered by the
// table's widest row. The header block spans the full template width, so a
// sheet missing a trailing column binds fewer than six fields.
func boundFields(table [][]string) []string {
	width := 0
	for _, row := range table {
		if len(row) > width {
			width = len(row)
		}
	}
	n := width - firstDataColumn
	if n < 0 {
		n = 0
	}
	if n > len(holdingFields) {
		n = len(holdingFields)
	}
	return holdingFields[:n]
}

// cell returns the i-th cell of a ragged row, or "" past its end.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// coerceNumber converts a cell to a float. Disclosure sheets are noisy
// (thousand separators, percent signs, dashes for nil), so anything that
// does not parse coerces to zero rather than failing the import.
func coerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ReadHoldingsFile reads the disclosure spreadsheet at path and extracts
// its holdings. When sheet is empty the first sheet of the workbook is
// used. The file's existence is checked before any parsing, so a missing
// file reports ErrSourceNotFound rather than a parser error.
func ReadHoldingsFile(path, sheet string) ([]Holding, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("could not stat %q: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q of %q: %w", sheet, path, err)
	}
	return ExtractHoldings(rows)
}

// ImportFile extracts the disclosure at path and replaces the holdings
// recorded for the labelled month. The label is validated first, so a bad
// label never triggers any file I/O; on any error the book is left
// untouched. Persisting the book afterwards is the caller's step.
func (b *Book) ImportFile(label, path, sheet string) (Month, []Holding, error) {
	m, err := ParseMonth(label)
	if err != nil {
		return Month{}, nil, err
	}
	holdings, err := ReadHoldingsFile(path, sheet)
	if err != nil {
		return Month{}, nil, err
	}
	b.Put(m, holdings)
	return m, holdings, nil
}
