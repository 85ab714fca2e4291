package fundview

import (
	"fmt"
	"math"

	"github.com/etnz/fundview/date"
)

const monthsInYear = 12

// CAGR returns the compound annual growth rate between the first and the last
// date of s, in percent.
//
// The elapsed time counts calendar months between the two dates, the day of
// month is ignored. It fails with ErrInvalidInput if s has fewer than two dates,
// ErrPeriodTooShort if both dates fall in the same month, and ErrDivisionByZero
// if the initial value is zero or missing.
func CAGR(s *Series) (Percent, error) {
	if s == nil || s.Len() < 2 {
		n := 0
		if s != nil {
			n = s.Len()
		}
		return 0, fmt.Errorf("%w: CAGR needs at least 2 dates, got %d", ErrInvalidInput, n)
	}

	start, initial := s.First()
	end, final := s.Latest()

	years := float64(date.MonthsBetween(start, end)) / monthsInYear
	if years <= 0 {
		return 0, fmt.Errorf("%w: from %s to %s", ErrPeriodTooShort, start, end)
	}
	if initial == 0 || IsMissing(initial) {
		return 0, fmt.Errorf("%w: initial value on %s is %v", ErrDivisionByZero, start, initial)
	}
	if IsMissing(final) {
		return 0, fmt.Errorf("%w: final value on %s is missing", ErrInvalidInput, end)
	}

	return Percent((math.Pow(final/initial, 1/years) - 1) * 100), nil
}

// AnnualizedReturn returns the annualized total return of the valid values of
// s, in percent.
//
// Unlike CAGR, the period is the count of valid observations taken as months:
// ((last/first)^(12/n) - 1) * 100. Missing values are skipped. It fails with
// ErrInvalidInput if fewer than two values are valid, and ErrDivisionByZero if
// the first valid value is zero.
func AnnualizedReturn(s *Series) (Percent, error) {
	var first, last float64
	n := 0
	if s != nil {
		for _, v := range s.Values() {
			if IsMissing(v) {
				continue
			}
			if n == 0 {
				first = v
			}
			last = v
			n++
		}
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: annualized return needs at least 2 valid values, got %d", ErrInvalidInput, n)
	}
	if first == 0 {
		return 0, fmt.Errorf("%w: first valid value is 0", ErrDivisionByZero)
	}
	return Percent((math.Pow(last/first, monthsInYear/float64(n)) - 1) * 100), nil
}
