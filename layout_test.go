package fundview

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestUpdateLayoutForViewportWide(t *testing.T) {
	layout := Layout{"legend": map[string]any{"font": map[string]any{"size": 10}}}
	for _, width := range []int{768, 1024} {
		got := UpdateLayoutForViewport(layout, width, DefaultViewport)
		if reflect.ValueOf(got).UnsafePointer() != reflect.ValueOf(layout).UnsafePointer() {
			t.Errorf("UpdateLayoutForViewport(%d) did not return the input layout", width)
		}
	}
}

func TestUpdateLayoutForViewportNarrow(t *testing.T) {
	font := map[string]any{"size": 10}
	layout := Layout{
		"title":  "prices",
		"legend": map[string]any{"font": font, "orientation": "v"},
		"yaxis":  map[string]any{"title": "price", "automargin": false},
		"margin": map[string]any{"t": 40, "b": 20, "l": 80},
	}

	got := UpdateLayoutForViewport(layout, 500, DefaultViewport)

	legend := got["legend"].(map[string]any)
	want := map[string]any{
		"font":        font,
		"orientation": "h",
		"x":           0.0,
		"y":           -0.5,
		"xanchor":     "left",
		"yanchor":     "top",
	}
	if !reflect.DeepEqual(legend, want) {
		t.Errorf("legend = %v, want %v", legend, want)
	}

	yaxis := got["yaxis"].(map[string]any)
	if yaxis["automargin"] != true || yaxis["title"] != "price" {
		t.Errorf("yaxis = %v, want automargin true and the title kept", yaxis)
	}

	margin := got["margin"].(map[string]any)
	if margin["l"] != 0 || margin["r"] != 0 || margin["t"] != 40 || margin["b"] != 20 {
		t.Errorf("margin = %v, want l=0 r=0 t=40 b=20", margin)
	}
	if got["title"] != "prices" {
		t.Errorf("title = %v, want %q", got["title"], "prices")
	}

	// the input is left untouched.
	if layout["legend"].(map[string]any)["orientation"] != "v" || layout["margin"].(map[string]any)["l"] != 80 {
		t.Errorf("UpdateLayoutForViewport() modified its input: %v", layout)
	}
}

func TestUpdateLayoutForViewportOptions(t *testing.T) {
	v := Viewport{X: 0.1, Y: -0.2, Breakpoint: 1000}
	got := UpdateLayoutForViewport(nil, 900, v)

	legend := got["legend"].(map[string]any)
	if legend["x"] != 0.1 || legend["y"] != -0.2 {
		t.Errorf("legend position = (%v, %v), want (0.1, -0.2)", legend["x"], legend["y"])
	}
	if _, ok := got["margin"].(map[string]any); !ok {
		t.Errorf("margin = %v, want a new record", got["margin"])
	}
}

func TestUpdateLayoutForViewportJSON(t *testing.T) {
	var layout Layout
	if err := json.Unmarshal([]byte(`{"legend":{"font":{"size":10}},"margin":{"t":5}}`), &layout); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(UpdateLayoutForViewport(layout, 320, DefaultViewport))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"legend":{"font":{"size":10},"orientation":"h","x":0,"xanchor":"left","y":-0.5,"yanchor":"top"},"margin":{"l":0,"r":0,"t":5},"yaxis":{"automargin":true}}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
