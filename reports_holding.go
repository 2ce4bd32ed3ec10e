package fundwatch

import (
	"fmt"
	"time"
)

// HoldingReport is a detailed view of one month's imported holdings.
type HoldingReport struct {
	Month    Month
	Time     time.Time // Generation time
	Holdings []Holding
	// TotalValue sums the market value of all holdings of the month.
	TotalValue Lakhs
	// TotalPercentNAV sums the %-to-NAV column; close to 100 for a full
	// disclosure, lower when the template carries only a subset.
	TotalPercentNAV float64
}

// NewHoldingReport builds the holding view for one imported month.
func NewHoldingReport(b *Book, label string) (*HoldingReport, error) {
	m, err := ParseMonth(label)
	if err != nil {
		return nil, err
	}
	holdings, ok := b.Holdings(m)
	if !ok {
		return nil, fmt.Errorf("%q: %w", m, ErrPeriodNotFound)
	}

	report := &HoldingReport{
		Month:    m,
		Time:     time.Now(),
		Holdings: holdings,
	}
	for _, h := range holdings {
		report.TotalValue += Lakhs(h.Data.MarketValue)
		report.TotalPercentNAV += h.Data.PercentNAV
	}
	return report, nil
}

// MarketValue returns the holding's market value as a typed lakh amount.
func (h Holding) MarketValue() Lakhs { return Lakhs(h.Data.MarketValue) }
