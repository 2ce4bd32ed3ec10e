package fundwatch

// FundDetails identifies one fund within a monthly snapshot. The ISIN is
// the identity key: it is what joins holdings across months.
type FundDetails struct {
	Name     string `json:"Name"`
	ISIN     string `json:"ISIN"`
	Industry string `json:"Industry"`
}

// MonthData carries the three tracked metrics of a holding for one month.
type MonthData struct {
	Quantity    float64 `json:"Quantity"`
	MarketValue float64 `json:"MarketValueInLakhs"`
	PercentNAV  float64 `json:"%ToNAV"`
}

// Holding is one fund position within a month's snapshot. Holdings are
// created by extraction and never mutated afterwards; re-importing a month
// replaces its whole list.
//
// The JSON field names are the compatibility contract of the book file and
// must not change: existing book files round-trip through this shape.
type Holding struct {
	Fund FundDetails `json:"MutualFundDetails"`
	Data MonthData   `json:"MonthData"`
}
