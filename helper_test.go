package fundwatch

// hold is a helper for tests to build a holding from its fields.
func hold(name, isin, industry string, qty, value, pct float64) Holding {
	return Holding{
		Fund: FundDetails{Name: name, ISIN: isin, Industry: industry},
		Data: MonthData{Quantity: qty, MarketValue: value, PercentNAV: pct},
	}
}
