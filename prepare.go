package fundview

import (
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/etnz/fundview/date"
	"github.com/shopspring/decimal"
)

// View is one chart dataset of a group: the price history of every fund and
// their annualized returns.
type View struct {
	Index   []date.Date        `json:"index"`   // all dates, sorted
	History Collection         `json:"history"` // prices by fund name
	Returns map[string]Percent `json:"return"`  // annualized returns by fund name
	Tickers []string           `json:"ticker"`  // fund names, sorted

	raw Collection // unrounded prices
}

// GroupData holds the dashboard datasets of one group.
//
// Default views hold raw prices, Compare views hold prices normalized to a common base.
// Both are keyed by price column.
type GroupData struct {
	Columns []string         `json:"columns"`
	Default map[string]*View `json:"default"`
	Compare map[string]*View `json:"compare"`
}

// Prepare builds the dashboard datasets of every group of p.
//
// Funds are presented by their name, a ticker with no name keeps its ticker.
// Prices are rounded to whole units and returns to one decimal, both half to even.
func Prepare(p *Prices, names map[string]string, base float64) (map[int]*GroupData, error) {
	res := make(map[int]*GroupData)
	for _, group := range p.Groups() {
		g := &GroupData{
			Columns: p.Columns(),
			Default: make(map[string]*View),
			Compare: make(map[string]*View),
		}
		for _, column := range p.Columns() {
			c, err := rename(p.Collection(group, column), names)
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", group, err)
			}
			g.Default[column] = newView(c)
			g.Compare[column] = newView(Normalize(c, base))
		}
		res[group] = g
	}
	return res, nil
}

// rename keys c by fund name.
func rename(c Collection, names map[string]string) (Collection, error) {
	res := make(Collection, len(c))
	for _, ticker := range c.Tickers() {
		name, ok := names[ticker]
		if !ok || name == "" {
			log.Printf("warning: ticker %q has no name", ticker)
			name = ticker
		}
		if _, exists := res[name]; exists {
			return nil, fmt.Errorf("tickers with the same name %q", name)
		}
		res[name] = c[ticker]
	}
	return res, nil
}

func newView(c Collection) *View {
	v := &View{
		Index:   c.Days(),
		History: make(Collection, len(c)),
		Returns: make(map[string]Percent, len(c)),
		Tickers: c.Tickers(),
		raw:     c,
	}
	for name, s := range c {
		rounded := new(Series)
		for day, price := range s.Values() {
			rounded.Append(day, roundBank(price, 0))
		}
		v.History[name] = rounded

		r, err := AnnualizedReturn(s)
		if err != nil {
			log.Printf("warning: no return for %q: %v", name, err)
			continue
		}
		if !isFinite(float64(r)) {
			log.Printf("warning: no return for %q: %v", name, r)
			continue
		}
		v.Returns[name] = Percent(roundBank(float64(r), 1))
	}
	return v
}

// Prices returns the unrounded prices of a fund, or nil if the view has no such fund.
func (v *View) Prices(name string) *Series { return v.raw[name] }

// Span returns the date range covered by the view.
func (v *View) Span() (date.Range, bool) { return date.Span(v.Index...) }

// roundBank rounds half to even, non-finite values are kept.
func roundBank(f float64, places int32) float64 {
	if !isFinite(f) {
		return f
	}
	return decimal.NewFromFloat(f).RoundBank(places).InexactFloat64()
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Names returns the fund names of a view ordered for display: SelectTickers in
// mode among the ranked funds, or every fund when ranks is empty.
func (v *View) Names(mode Mode, ranks Ranks, count int) []string {
	if len(ranks) == 0 {
		return slices.Clone(v.Tickers)
	}
	return SelectTickers(mode, v.Tickers, ranks, count)
}
