package fundview

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/etnz/fundview/date"
)

// Series is a chronological series of prices.
//
// A date that is absent, or holds NaN, is missing.
type Series = date.History[float64]

// Collection maps a ticker to its price series.
type Collection map[string]*Series

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// present reports whether s holds a non-missing value on day.
func present(s *Series, day date.Date) (float64, bool) {
	if s == nil {
		return math.NaN(), false
	}
	v, ok := s.Get(day)
	if !ok || IsMissing(v) {
		return math.NaN(), false
	}
	return v, true
}

// NewSeries builds a series from date strings. Missing values are written as NaN.
func NewSeries(values map[string]float64) (*Series, error) {
	s := new(Series)
	for str, v := range values {
		day, err := date.Parse(str)
		if err != nil {
			return nil, err
		}
		if _, exists := s.Get(day); exists {
			return nil, fmt.Errorf("duplicated date %q", str)
		}
		s.Append(day, v)
	}
	return s, nil
}

// Tickers returns the collection tickers in alphabetical order.
func (c Collection) Tickers() []string { return slices.Sorted(maps.Keys(c)) }

// histories returns the series in ticker order, skipping nil ones.
func (c Collection) histories() []*Series {
	hs := make([]*Series, 0, len(c))
	for _, ticker := range c.Tickers() {
		if s := c[ticker]; s != nil {
			hs = append(hs, s)
		}
	}
	return hs
}

// Days returns the union of all dates in the collection, sorted.
func (c Collection) Days() []date.Date { return slices.Collect(date.Iterate(c.histories()...)) }

// MarshalJSON encodes the collection as {ticker: {date: price}}, tickers sorted and
// dates in chronological order. Missing and non-finite prices are encoded as null.
func (c Collection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, ticker := range c.Tickers() {
		w.Append(ticker, seriesJSON{c[ticker]})
	}
	return w.MarshalJSON()
}

// UnmarshalJSON decodes the collection format written by MarshalJSON.
func (c *Collection) UnmarshalJSON(b []byte) error {
	var raw map[string]map[date.Date]*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	res := make(Collection, len(raw))
	for ticker, values := range raw {
		s := new(Series)
		for day, v := range values {
			if v == nil {
				s.Append(day, math.NaN())
				continue
			}
			s.Append(day, *v)
		}
		res[ticker] = s
	}
	*c = res
	return nil
}

type seriesJSON struct{ s *Series }

func (j seriesJSON) MarshalJSON() ([]byte, error) {
	if j.s == nil {
		return []byte("{}"), nil
	}
	var w jsonObjectWriter
	for day, v := range j.s.Values() {
		w.Append(day.String(), v)
	}
	return w.MarshalJSON()
}

// Valid returns a copy of s without its missing values.
func Valid(s *Series) *Series {
	res := new(Series)
	if s == nil {
		return res
	}
	for day, v := range s.Values() {
		if !IsMissing(v) {
			res.Append(day, v)
		}
	}
	return res
}
