package fundwatch

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Lakhs is a market value expressed in lakhs (1 lakh = 100,000 rupees),
// the unit used in fund house disclosures.
type Lakhs float64

// String renders the value in lakh units.
func (l Lakhs) String() string {
	return fmt.Sprintf("%.2f L", float64(l))
}

// INR renders the full rupee amount using the INR currency formatting rules.
func (l Lakhs) INR() string {
	return money.NewFromFloat(float64(l)*100000, money.INR).Display()
}
