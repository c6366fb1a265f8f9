package money

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in minor units (pence/cents). All stored and
// compared amounts in the system use this type; conversion to major units
// happens exactly once, at the boundary where an amount is rendered to a
// human or sent to a non-financial external channel.
type Cents int64

// minorPerMajor is the minor-unit factor for the configured currency.
const minorPerMajor = 100

// FromMajor converts a decimal major-unit amount (e.g. a human-entered or
// provider-reported price) to minor units, rounding half up.
func FromMajor(amount float64) Cents {
	return Cents(math.Round(amount * minorPerMajor))
}

// Major converts a minor-unit amount to its decimal major-unit value.
func (c Cents) Major() float64 {
	return float64(c) / minorPerMajor
}

// String renders the amount with two fractional digits, e.g. "49.99".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/minorPerMajor, v%minorPerMajor)
}
