package fundwatch

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the strict codec for the book file. The file is a
// single JSON object mapping month labels to holding lists:
//
//	{
//	  "September 2024": [
//	    {
//	      "MutualFundDetails": {"Name": "...", "ISIN": "...", "Industry": "..."},
//	      "MonthData": {"Quantity": 100, "MarketValueInLakhs": 50, "%ToNAV": 1.0}
//	    }
//	  ]
//	}
//
// This shape is the compatibility contract: book files written by earlier
// versions of the tool must keep loading, so the codec round-trips it
// verbatim. Lenient loading (missing or corrupt file) is layered on top in
// loader.go; this codec itself fails fast.

// DecodeBook reads a book from its persisted JSON form. Month labels are
// validated on the way in: a key that is not a canonical label is a format
// error.
func DecodeBook(r io.Reader) (*Book, error) {
	var raw map[string][]Holding
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("format error in book: %w", err)
	}

	b := NewBook()
	for label, holdings := range raw {
		m, err := ParseMonth(label)
		if err != nil {
			return nil, fmt.Errorf("format error in book: %w", err)
		}
		b.Put(m, holdings)
	}
	return b, nil
}

// EncodeBook writes the book in its persisted JSON form, indented to stay
// readable and diff-friendly.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(b.months); err != nil {
		return fmt.Errorf("could not encode book: %w", err)
	}
	return nil
}
