package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/rsarin/fundwatch"
)

func sampleChangeReport() *fundwatch.ChangeReport {
	return &fundwatch.ChangeReport{
		Query: "fund",
		Start: fundwatch.MustParseMonth("September 2024"),
		End:   fundwatch.MustParseMonth("October 2024"),
		Time:  time.Now(),
		Funds: []fundwatch.FundChange{
			{
				Fund:   fundwatch.FundDetails{Name: "Alpha Bluechip Fund", ISIN: "INF000000001", Industry: "Banking"},
				Status: fundwatch.Existing,
				Changes: []fundwatch.MetricChange{
					{Metric: "Quantity", Start: 100, End: 120, Change: 20},
					{Metric: "MarketValueInLakhs", Start: 50, End: 66, Change: 32},
					{Metric: "%ToNAV", Start: 0, End: 1.2, NoBaseline: true},
				},
			},
			{
				Fund:   fundwatch.FundDetails{Name: "Beta Fund", ISIN: "INF000000002", Industry: "Energy"},
				Status: fundwatch.NewAddition,
			},
		},
	}
}

func TestChanges(t *testing.T) {
	md := Changes(sampleChangeReport())

	// The rendering must preserve fund identity, status and every metric's
	// start/end/percent-or-no-baseline.
	for _, want := range []string{
		"September 2024", "October 2024",
		"Alpha Bluechip Fund", "INF000000001", "Banking", "Existing",
		"Quantity", "100.00", "120.00", "+20.00%",
		"MarketValueInLakhs", "+32.00%",
		"%ToNAV", "N/A (starting value was 0)",
		"Beta Fund", "INF000000002", "New Addition",
		"no change calculations available",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Changes() output does not contain %q:\n%s", want, md)
		}
	}
}

func TestChangesEmpty(t *testing.T) {
	r := sampleChangeReport()
	r.Funds = nil
	md := Changes(r)
	if !strings.Contains(md, "No fund held in October 2024 matches the query.") {
		t.Errorf("Changes() with no matches should say so:\n%s", md)
	}
}

func TestHoldings(t *testing.T) {
	r := &fundwatch.HoldingReport{
		Month: fundwatch.MustParseMonth("October 2024"),
		Time:  time.Now(),
		Holdings: []fundwatch.Holding{
			{
				Fund: fundwatch.FundDetails{Name: "Alpha Bluechip Fund", ISIN: "INF000000001", Industry: "Banking"},
				Data: fundwatch.MonthData{Quantity: 120, MarketValue: 66, PercentNAV: 1.2},
			},
		},
		TotalValue:      66,
		TotalPercentNAV: 1.2,
	}
	md := Holdings(r)
	for _, want := range []string{
		"Holdings for October 2024",
		"Alpha Bluechip Fund", "INF000000001", "Banking",
		"120.00", "66.00 L", "1.20",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Holdings() output does not contain %q:\n%s", want, md)
		}
	}
}
