package fundview

import (
	"math"

	"github.com/etnz/fundview/date"
)

// DefaultBasePrice is the value every series starts from after normalization.
const DefaultBasePrice = 1000

// Anchor returns the earliest date on which every series of c has a non-zero
// value. A zero price cannot be rebased and counts as missing.
func Anchor(c Collection) (date.Date, bool) {
	for _, day := range c.Days() {
		all := true
		for _, s := range c {
			if v, ok := present(s, day); !ok || v == 0 {
				all = false
				break
			}
		}
		if all {
			return day, true
		}
	}
	return date.Date{}, false
}

// Normalize rebases every series of c so that it is worth base on the anchor
// date (see Anchor).
//
// The result has a point for each date of the collection, from the anchor on:
// dates before the anchor are dropped, missing values after it stay missing
// (NaN). If there is no anchor, c is returned unchanged.
func Normalize(c Collection, base float64) Collection {
	on, ok := Anchor(c)
	if !ok {
		return c
	}

	days := c.Days()
	res := make(Collection, len(c))
	for ticker, s := range c {
		ref, refOK := present(s, on)
		out := new(Series)
		for _, day := range days {
			if day.Before(on) {
				continue
			}
			v, ok := present(s, day)
			if !refOK || !ok {
				out.Append(day, math.NaN())
				continue
			}
			out.Append(day, v/ref*base)
		}
		res[ticker] = out
	}
	return res
}
