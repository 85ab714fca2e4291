package fundview

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 14.47 means 14.47%.
type Percent float64

// Round returns p rounded half away from zero to 'places' decimals.
// Non-finite values are returned unchanged.
func (p Percent) Round(places int32) Percent {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return p
	}
	return Percent(decimal.NewFromFloat(f).Round(places).InexactFloat64())
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
