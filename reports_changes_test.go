package fundwatch

import (
	"errors"
	"testing"
)

func twoMonthBook() *Book {
	b := NewBook()
	b.Put(MustParseMonth("September 2024"), []Holding{
		hold("Alpha Bluechip Fund", "X1", "Banking", 100, 50, 1.0),
		hold("Gamma Fund", "X3", "IT", 10, 5, 0),
	})
	b.Put(MustParseMonth("October 2024"), []Holding{
		hold("Alpha Bluechip Fund", "X1", "Banking", 120, 66, 1.2),
		hold("Beta Fund", "X2", "Energy", 7, 3, 0.05),
		hold("Gamma Fund", "X3", "IT", 20, 10, 0.2),
	})
	return b
}

func TestNewChangeReportExisting(t *testing.T) {
	b := twoMonthBook()
	report, err := NewChangeReport(b, "bluechip", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	if len(report.Funds) != 1 {
		t.Fatalf("len(Funds) = %d, want 1", len(report.Funds))
	}

	fc := report.Funds[0]
	if fc.Status != Existing {
		t.Errorf("Status = %q, want %q", fc.Status, Existing)
	}
	if len(fc.Changes) != 3 {
		t.Fatalf("len(Changes) = %d, want 3", len(fc.Changes))
	}

	want := []struct {
		metric     string
		start, end float64
		change     Percent
	}{
		{"Quantity", 100, 120, 20},
		{"MarketValueInLakhs", 50, 66, 32},
		{"%ToNAV", 1.0, 1.2, 20},
	}
	for i, w := range want {
		got := fc.Changes[i]
		if got.Metric != w.metric || got.Start != w.start || got.End != w.end {
			t.Errorf("Changes[%d] = %+v, want %+v", i, got, w)
		}
		if got.NoBaseline {
			t.Errorf("Changes[%d].NoBaseline = true, want false", i)
		}
		if !got.Change.Equal(w.change) {
			t.Errorf("Changes[%d].Change = %v, want %v", i, got.Change, w.change)
		}
	}
}

func TestNewChangeReportNewAddition(t *testing.T) {
	b := twoMonthBook()
	report, err := NewChangeReport(b, "beta", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	if len(report.Funds) != 1 {
		t.Fatalf("len(Funds) = %d, want 1", len(report.Funds))
	}
	fc := report.Funds[0]
	if fc.Status != NewAddition {
		t.Errorf("Status = %q, want %q", fc.Status, NewAddition)
	}
	if len(fc.Changes) != 0 {
		t.Errorf("a new addition must carry no change entries, got %d", len(fc.Changes))
	}
}

func TestNewChangeReportNoBaseline(t *testing.T) {
	b := twoMonthBook()
	// Gamma's %ToNAV starts at 0: no baseline, not a division error.
	report, err := NewChangeReport(b, "gamma", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	fc := report.Funds[0]
	for _, mc := range fc.Changes {
		switch mc.Metric {
		case "%ToNAV":
			if !mc.NoBaseline {
				t.Errorf("%s: NoBaseline = false, want true", mc.Metric)
			}
		default:
			if mc.NoBaseline {
				t.Errorf("%s: NoBaseline = true, want false", mc.Metric)
			}
		}
	}
}

func TestNewChangeReportErrors(t *testing.T) {
	b := twoMonthBook()

	if _, err := NewChangeReport(b, "", "Sept 2024", "October 2024"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("bad start label: error = %v, want ErrInvalidPeriod", err)
	}
	if _, err := NewChangeReport(b, "", "September 2024", "Oct 2024"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("bad end label: error = %v, want ErrInvalidPeriod", err)
	}
	if _, err := NewChangeReport(b, "", "August 2024", "October 2024"); !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("missing start month: error = %v, want ErrPeriodNotFound", err)
	}
	if _, err := NewChangeReport(b, "", "September 2024", "November 2024"); !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("missing end month: error = %v, want ErrPeriodNotFound", err)
	}
}

func TestNewChangeReportFilterIsCaseInsensitive(t *testing.T) {
	b := twoMonthBook()
	report, err := NewChangeReport(b, "ALPHA BLUE", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	if len(report.Funds) != 1 {
		t.Errorf("len(Funds) = %d, want 1 (substring match is case-insensitive)", len(report.Funds))
	}
}

func TestNewChangeReportEmptyQueryMatchesAll(t *testing.T) {
	b := twoMonthBook()
	report, err := NewChangeReport(b, "", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	if len(report.Funds) != 3 {
		t.Fatalf("len(Funds) = %d, want 3", len(report.Funds))
	}
	// Funds follow the order of the end month's holding list.
	want := []string{"X1", "X2", "X3"}
	for i, w := range want {
		if report.Funds[i].Fund.ISIN != w {
			t.Errorf("Funds[%d].ISIN = %q, want %q", i, report.Funds[i].Fund.ISIN, w)
		}
	}
}

func TestNewChangeReportDuplicateISIN(t *testing.T) {
	b := NewBook()
	b.Put(MustParseMonth("September 2024"), []Holding{
		hold("Alpha Fund", "X1", "Banking", 100, 50, 1.0),
	})
	b.Put(MustParseMonth("October 2024"), []Holding{
		hold("Alpha Fund", "X1", "Banking", 110, 55, 1.1),
		hold("Alpha Fund", "X1", "Banking", 120, 66, 1.2),
	})

	report, err := NewChangeReport(b, "alpha", "September 2024", "October 2024")
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	if len(report.Funds) != 1 {
		t.Fatalf("len(Funds) = %d, want 1 (duplicates collapse)", len(report.Funds))
	}
	// Last write wins when building the lookup.
	if got := report.Funds[0].Changes[0].End; got != 120 {
		t.Errorf("Quantity end = %v, want 120", got)
	}
}
