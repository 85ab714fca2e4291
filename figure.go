package fundview

import (
	"fmt"

	"github.com/etnz/fundview/date"
)

// Trace is one chart trace, as consumed by the dashboard charting library.
type Trace map[string]any

// Figure is a chart: its traces and its layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// FigureOptions selects what a figure shows.
type FigureOptions struct {
	Cost     bool     // after fees prices, from the second price column
	Compare  bool     // normalized prices instead of raw ones
	Width    int      // viewport width in pixels
	Viewport Viewport // narrow viewport settings
	Names    []string // funds to show, all of them if nil
}

// NoData is the figure shown when there is nothing to plot.
func NoData() Figure {
	return Figure{
		Data:   []Trace{},
		Layout: Layout{"title": "No Data Available", "height": 300},
	}
}

const (
	columnPrice = iota
	columnPriceAfterFees
)

// views returns the views of g selected by compare.
func (o FigureOptions) views(g *GroupData) map[string]*View {
	if o.Compare {
		return g.Compare
	}
	return g.Default
}

// names returns the funds to show, an empty selection shows none.
func (o FigureOptions) names(v *View) []string {
	if o.Names == nil {
		return v.Tickers
	}
	return o.Names
}

// PriceFigure returns the price history chart of a group, one line per fund.
func PriceFigure(g *GroupData, o FigureOptions) Figure {
	selected := columnPrice
	if o.Cost {
		selected = columnPriceAfterFees
	}
	if g == nil || len(g.Columns) <= selected {
		return NoData()
	}
	column := g.Columns[selected]
	v := o.views(g)[column]
	if v == nil || len(v.Index) == 0 {
		return NoData()
	}

	x := dateStrings(v.Index)
	traces := make([]Trace, 0, len(v.Tickers))
	for _, name := range o.names(v) {
		s, ok := v.History[name]
		if !ok {
			continue
		}
		y := make([]any, len(v.Index))
		for i, day := range v.Index {
			if price, ok := present(s, day); ok && isFinite(price) {
				y[i] = price
			}
		}
		traces = append(traces, Trace{
			"x":          x,
			"y":          y,
			"type":       "scatter",
			"mode":       "lines",
			"name":       name,
			"showlegend": true,
		})
	}

	kind := "펀드별 최근 결산 기준가격"
	if o.Compare {
		kind = "상대 가격"
	}
	title := "펀드 가격 추이 (" + kind
	if o.Cost {
		title += ", 수수료 적용"
	}
	title += ")"

	layout := Layout{
		"title":     map[string]any{"text": title, "x": 0},
		"hovermode": "x",
		"yaxis":     map[string]any{"title": "가격"},
		"xaxis": map[string]any{
			"rangeselector": map[string]any{
				"buttons": []any{
					map[string]any{"count": 3, "label": "3y", "step": "year", "stepmode": "backward"},
					map[string]any{"step": "all", "label": "All"},
				},
			},
			"rangeslider": map[string]any{"visible": true},
			"type":        "date",
		},
		"responsive": true,
	}
	return Figure{Data: traces, Layout: UpdateLayoutForViewport(layout, o.Width, o.Viewport)}
}

// ReturnFigure returns the annualized returns chart of a group: one bar per
// fund and price column, the selected column stands out.
func ReturnFigure(g *GroupData, o FigureOptions) Figure {
	if g == nil || len(g.Columns) <= columnPriceAfterFees {
		return NoData()
	}
	views := o.views(g)
	columns := g.Columns[:columnPriceAfterFees+1]
	for _, column := range columns {
		if views[column] == nil {
			return NoData()
		}
	}
	first := views[columns[columnPrice]]
	names := o.names(first)

	opacity := map[bool][2]float64{false: {0.6, 0.3}, true: {0.3, 0.6}}[o.Cost]
	traces := make([]Trace, 0, len(columns))
	for i, column := range columns {
		v := views[column]
		y := make([]any, len(names))
		for j, name := range names {
			if r, ok := v.Returns[name]; ok {
				y[j] = float64(r)
			}
		}
		traces = append(traces, Trace{
			"x":       names,
			"y":       y,
			"type":    "bar",
			"name":    column,
			"opacity": opacity[i],
			"marker":  map[string]any{"line": map[string]any{"color": "black", "width": 1}},
		})
	}

	title := "펀드 연평균 수익률 (펀드별 설정일 이후)"
	if o.Compare {
		selected := views[columns[columnPrice]]
		if o.Cost {
			selected = views[columns[columnPriceAfterFees]]
		}
		if span, ok := selected.Span(); ok {
			title = fmt.Sprintf("펀드 연평균 수익률 (%s)", span)
		}
	}

	layout := Layout{
		"title":      map[string]any{"text": title, "x": 0},
		"yaxis":      map[string]any{"title": "연평균 수익률 (%)"},
		"barmode":    "group",
		"hovermode":  "x",
		"responsive": true,
	}
	return Figure{Data: traces, Layout: UpdateLayoutForViewport(layout, o.Width, o.Viewport)}
}

func dateStrings(days []date.Date) []string {
	res := make([]string, len(days))
	for i, d := range days {
		res[i] = d.String()
	}
	return res
}
