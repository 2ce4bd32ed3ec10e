package fundwatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies a fund in a change report relative to the start month.
type Status string

const (
	// Existing marks a fund present in both months.
	Existing Status = "Existing"
	// NewAddition marks a fund present in the end month only.
	NewAddition Status = "New Addition"
)

// MetricChange describes how one metric of a holding moved between the two
// months of a report.
type MetricChange struct {
	Metric string
	Start  float64
	End    float64
	// Change is the relative move in percent. It is meaningless when
	// NoBaseline is set: a start value of zero leaves nothing to compare
	// against, which is a signal, not an error.
	Change     Percent
	NoBaseline bool
}

// FundChange is the report entry for one fund matching the name query.
type FundChange struct {
	Fund    FundDetails
	Status  Status
	Changes []MetricChange // empty for new additions
}

// IsNew reports whether the fund was not held in the start month.
func (f FundChange) IsNew() bool { return f.Status == NewAddition }

// ChangeReport describes how holdings matching a fund name query moved
// between two imported months.
type ChangeReport struct {
	Query string
	Start Month
	End   Month
	Time  time.Time // Generation time
	Funds []FundChange
}

// metricNames are the reported metrics, in their persisted-field spelling
// and report order.
var metricNames = [...]string{"Quantity", "MarketValueInLakhs", "%ToNAV"}

// NewChangeReport joins the holdings of two imported months by ISIN and
// computes per-metric changes for every end-month holding whose fund name
// contains query (case-insensitive).
//
// Funds appear in the order of the end month's holding list (first
// occurrence of each ISIN; on duplicate ISINs the last record wins). The
// report is a pure computation: the book is not modified.
func NewChangeReport(b *Book, query, startLabel, endLabel string) (*ChangeReport, error) {
	start, err := ParseMonth(startLabel)
	if err != nil {
		return nil, err
	}
	end, err := ParseMonth(endLabel)
	if err != nil {
		return nil, err
	}

	startHoldings, ok := b.Holdings(start)
	if !ok {
		return nil, fmt.Errorf("%q: %w", start, ErrPeriodNotFound)
	}
	endHoldings, ok := b.Holdings(end)
	if !ok {
		return nil, fmt.Errorf("%q: %w", end, ErrPeriodNotFound)
	}

	startByISIN := byISIN(startHoldings)
	endByISIN := byISIN(endHoldings)

	report := &ChangeReport{
		Query: query,
		Start: start,
		End:   end,
		Time:  time.Now(),
	}

	query = strings.ToLower(query)
	seen := make(map[string]struct{}, len(endByISIN))
	for _, h := range endHoldings {
		isin := h.Fund.ISIN
		if _, done := seen[isin]; done {
			continue
		}
		seen[isin] = struct{}{}

		endHolding := endByISIN[isin]
		if !strings.Contains(strings.ToLower(endHolding.Fund.Name), query) {
			continue
		}

		fc := FundChange{Fund: endHolding.Fund, Status: Existing}
		startHolding, held := startByISIN[isin]
		if !held {
			fc.Status = NewAddition
			report.Funds = append(report.Funds, fc)
			continue
		}

		sd, ed := startHolding.Data, endHolding.Data
		starts := [...]float64{sd.Quantity, sd.MarketValue, sd.PercentNAV}
		ends := [...]float64{ed.Quantity, ed.MarketValue, ed.PercentNAV}
		for i, metric := range metricNames {
			fc.Changes = append(fc.Changes, newMetricChange(metric, starts[i], ends[i]))
		}
		report.Funds = append(report.Funds, fc)
	}
	return report, nil
}

func newMetricChange(metric string, start, end float64) MetricChange {
	mc := MetricChange{Metric: metric, Start: start, End: end}
	if start == 0 {
		mc.NoBaseline = true
		return mc
	}
	s := decimal.NewFromFloat(start)
	e := decimal.NewFromFloat(end)
	change := e.Sub(s).Div(s).Mul(decimal.NewFromInt(100))
	mc.Change = Percent(change.InexactFloat64())
	return mc
}
