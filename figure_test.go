package fundview

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPriceFigure(t *testing.T) {
	g := preparedGroup(t)

	testCases := []struct {
		name  string
		o     FigureOptions
		title string
	}{
		{"default", FigureOptions{Width: 1024, Viewport: DefaultViewport}, "펀드 가격 추이 (펀드별 최근 결산 기준가격)"},
		{"compare", FigureOptions{Compare: true, Width: 1024, Viewport: DefaultViewport}, "펀드 가격 추이 (상대 가격)"},
		{"cost", FigureOptions{Cost: true, Compare: true, Width: 1024, Viewport: DefaultViewport}, "펀드 가격 추이 (상대 가격, 수수료 적용)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := PriceFigure(g, tc.o)
			if len(f.Data) != 2 {
				t.Fatalf("PriceFigure() = %d traces, want 2", len(f.Data))
			}
			title := f.Layout["title"].(map[string]any)["text"]
			if title != tc.title {
				t.Errorf("PriceFigure() title = %q, want %q", title, tc.title)
			}
			if _, ok := f.Layout["legend"]; ok {
				t.Errorf("PriceFigure() on a wide viewport has a legend: %v", f.Layout["legend"])
			}
		})
	}

	f := PriceFigure(g, FigureOptions{Width: 1024, Viewport: DefaultViewport})
	// K2 has no price on the first date.
	y := f.Data[1]["y"].([]any)
	if f.Data[1]["name"] != "K2" || y[0] != nil || y[1] != 500.0 {
		t.Errorf("PriceFigure() K2 trace = %v, want a first null price then 500", f.Data[1])
	}
}

func TestPriceFigureSelection(t *testing.T) {
	g := preparedGroup(t)
	v := g.Default["price"]

	testCases := []struct {
		name  string
		names []string
		want  int
	}{
		{"all", nil, 2},
		{"empty", []string{}, 0},
		{"no ranked fund", v.Names(Top, Ranks{"Z": 1}, 10), 0},
		{"zero count", v.Names(Top, Ranks{"K2": 1}, 0), 0},
		{"ranked", v.Names(Top, Ranks{"K2": 1}, 10), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := FigureOptions{Width: 1024, Viewport: DefaultViewport, Names: tc.names}
			if got := len(PriceFigure(g, o).Data); got != tc.want {
				t.Errorf("PriceFigure(Names: %q) = %d traces, want %d", tc.names, got, tc.want)
			}
			if got := len(ReturnFigure(g, o).Data[0]["x"].([]string)); got != tc.want {
				t.Errorf("ReturnFigure(Names: %q) = %d bars, want %d", tc.names, got, tc.want)
			}
		})
	}
}

func TestPriceFigureNonFinite(t *testing.T) {
	c := Collection{"A": series(t, map[string]float64{"2020-01": 1, "2020-02": math.Inf(1), "2020-03": 3})}
	g := &GroupData{Columns: []string{"price"}, Default: map[string]*View{"price": newView(c)}}

	f := PriceFigure(g, FigureOptions{Width: 1024, Viewport: DefaultViewport})
	y := f.Data[0]["y"].([]any)
	if y[0] != 1.0 || y[1] != nil || y[2] != 3.0 {
		t.Errorf("PriceFigure() y = %v, want [1 <nil> 3]", y)
	}
	if _, err := json.Marshal(f); err != nil {
		t.Errorf("json.Marshal(PriceFigure()) unexpected error: %v", err)
	}
}

func TestPriceFigureNarrow(t *testing.T) {
	g := preparedGroup(t)
	f := PriceFigure(g, FigureOptions{Width: 400, Viewport: DefaultViewport, Names: []string{"K2", "unknown"}})
	if len(f.Data) != 1 || f.Data[0]["name"] != "K2" {
		t.Errorf("PriceFigure(Names: K2) = %v, want the K2 trace only", f.Data)
	}
	legend, ok := f.Layout["legend"].(map[string]any)
	if !ok || legend["orientation"] != "h" {
		t.Errorf("PriceFigure() on a narrow viewport legend = %v, want horizontal", f.Layout["legend"])
	}
	if yaxis := f.Layout["yaxis"].(map[string]any); yaxis["title"] != "가격" || yaxis["automargin"] != true {
		t.Errorf("PriceFigure() yaxis = %v, want title kept and automargin", yaxis)
	}
}

func TestReturnFigure(t *testing.T) {
	g := preparedGroup(t)

	f := ReturnFigure(g, FigureOptions{Cost: true, Width: 1024, Viewport: DefaultViewport})
	if len(f.Data) != 2 {
		t.Fatalf("ReturnFigure() = %d traces, want 2", len(f.Data))
	}
	if f.Data[0]["opacity"] != 0.3 || f.Data[1]["opacity"] != 0.6 {
		t.Errorf("ReturnFigure(Cost) opacities = %v, %v, want 0.3, 0.6", f.Data[0]["opacity"], f.Data[1]["opacity"])
	}
	if title := f.Layout["title"].(map[string]any)["text"]; title != "펀드 연평균 수익률 (펀드별 설정일 이후)" {
		t.Errorf("ReturnFigure() title = %q", title)
	}
	if y := f.Data[1]["y"].([]any); y[1] != 58.7 {
		t.Errorf("ReturnFigure() K2 after fees return = %v, want 58.7", y[1])
	}

	f = ReturnFigure(g, FigureOptions{Compare: true, Width: 1024, Viewport: DefaultViewport})
	if title := f.Layout["title"].(map[string]any)["text"]; title != "펀드 연평균 수익률 (2020-02-29 ~ 2020-03-31)" {
		t.Errorf("ReturnFigure(Compare) title = %q", title)
	}
}

func TestNoData(t *testing.T) {
	g := &GroupData{Columns: []string{"price"}}
	for name, f := range map[string]Figure{
		"nil group":      PriceFigure(nil, FigureOptions{}),
		"missing column": PriceFigure(g, FigureOptions{Cost: true}),
		"missing view":   PriceFigure(g, FigureOptions{}),
		"single column":  ReturnFigure(g, FigureOptions{}),
	} {
		if f.Layout["title"] != "No Data Available" || len(f.Data) != 0 {
			t.Errorf("%s: figure = %v, want NoData()", name, f)
		}
	}
}
