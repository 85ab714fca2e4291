package fundview

import "errors"

var (
	// ErrInvalidInput reports a series with too few data points.
	ErrInvalidInput = errors.New("invalid data")
	// ErrPeriodTooShort reports a series spanning less than a calendar month.
	ErrPeriodTooShort = errors.New("time period too short")
	// ErrDivisionByZero reports a zero or missing initial value.
	ErrDivisionByZero = errors.New("division by zero")
)
