package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Span returns the range covered by the given dates, in any order.
// It returns false if there is no date.
func Span(days ...Date) (Range, bool) {
	if len(days) == 0 {
		return Range{}, false
	}
	r := Range{From: days[0], To: days[0]}
	for _, d := range days[1:] {
		if d.Before(r.From) {
			r.From = d
		}
		if d.After(r.To) {
			r.To = d
		}
	}
	return r, true
}

// String returns the range as "from ~ to".
func (r Range) String() string { return fmt.Sprintf("%s ~ %s", r.From, r.To) }
