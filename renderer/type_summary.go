package renderer

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/etnz/fundview"
	"github.com/etnz/fundview/date"
)

// Summary is a struct to represent the summary of a group of funds in json.
type Summary struct {
	// Group of funds, usually their target year.
	Group int `json:"group"`
	// Column is the price flavour of the summary.
	Column string `json:"column"`
	// Period covered by the prices.
	Period string `json:"period,omitempty"`
	// Funds ordered by decreasing annualized return.
	Funds []SummaryFund `json:"funds"`
}

// SummaryFund is the summary of a single fund.
type SummaryFund struct {
	Name   string            `json:"name"`
	Latest fundview.Money    `json:"latest"`
	On     date.Date         `json:"on"`
	CAGR   *fundview.Percent `json:"cagr,omitempty"`
	Return *fundview.Percent `json:"return,omitempty"`
}

func (f SummaryFund) CAGRString() string   { return percentString(f.CAGR) }
func (f SummaryFund) ReturnString() string { return percentString(f.Return) }

func percentString(p *fundview.Percent) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

// NewSummary summarizes the prices of a group for one price column.
//
// Latest prices and CAGR come from the unrounded prices, CAGR is rounded to two decimals.
func NewSummary(group int, g *fundview.GroupData, column, currency string) (*Summary, error) {
	if g == nil {
		return nil, errors.New("no data")
	}
	v, ok := g.Default[column]
	if !ok {
		return nil, fmt.Errorf("unknown price column %q, want one of %q", column, g.Columns)
	}

	s := &Summary{Group: group, Column: column}
	if span, ok := v.Span(); ok {
		s.Period = span.String()
	}
	for _, name := range v.Tickers {
		prices := fundview.Valid(v.Prices(name))
		if prices.Len() == 0 {
			continue
		}
		on, latest := prices.Latest()
		f := SummaryFund{Name: name, Latest: fundview.M(latest, currency), On: on}
		if cagr, err := fundview.CAGR(prices); err == nil {
			cagr = cagr.Round(2)
			f.CAGR = &cagr
		} else {
			log.Printf("warning: no CAGR for %q: %v", name, err)
		}
		if r, ok := v.Returns[name]; ok {
			f.Return = &r
		}
		s.Funds = append(s.Funds, f)
	}

	slices.SortStableFunc(s.Funds, func(a, b SummaryFund) int {
		switch {
		case a.Return == nil && b.Return == nil:
			return 0
		case a.Return == nil:
			return 1
		case b.Return == nil:
			return -1
		}
		return cmp.Compare(*b.Return, *a.Return)
	})
	return s, nil
}
