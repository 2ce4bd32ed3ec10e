package fundwatch

import "sort"

// Book is the keyed store of monthly snapshots: one ordered holding list
// per month label. It is an explicit object constructed once per run and
// threaded through every operation; there is no ambient global state.
//
// The book is single-writer: each import or report fully completes before
// the next begins, so no locking is needed.
type Book struct {
	months map[string][]Holding
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{months: make(map[string][]Holding)}
}

// Put replaces (or inserts) the holding list for the given month. There is
// no merge with prior content: a re-import fully supersedes the old list.
func (b *Book) Put(m Month, holdings []Holding) {
	b.months[m.String()] = holdings
}

// Holdings returns the holding list recorded for the given month.
func (b *Book) Holdings(m Month) ([]Holding, bool) {
	hs, ok := b.months[m.String()]
	return hs, ok
}

// Has reports whether the given month has been imported.
func (b *Book) Has(m Month) bool {
	_, ok := b.months[m.String()]
	return ok
}

// Len returns the number of imported months.
func (b *Book) Len() int { return len(b.months) }

// Months returns the imported months in chronological order. The label
// strings themselves sort alphabetically by month name, so the listing
// goes through Month.Before instead.
func (b *Book) Months() []Month {
	months := make([]Month, 0, len(b.months))
	for label := range b.months {
		// keys are canonical labels, written by Put
		months = append(months, MustParseMonth(label))
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

// byISIN builds an ISIN-keyed lookup over a holding list. On duplicate
// ISINs the last record wins, matching the uniqueness invariant of a
// monthly snapshot.
func byISIN(holdings []Holding) map[string]Holding {
	m := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		m[h.Fund.ISIN] = h
	}
	return m
}
