package fundview

import "maps"

// Layout is a chart layout, as consumed by the dashboard charting library.
// Sub-records are map[string]any values.
type Layout map[string]any

// Viewport holds the narrow viewport settings of UpdateLayoutForViewport.
type Viewport struct {
	X, Y       float64 // legend position
	Breakpoint int     // viewports narrower than Breakpoint are narrow
}

// DefaultViewport puts the legend under the plot below 768 pixels.
var DefaultViewport = Viewport{X: 0, Y: -0.5, Breakpoint: 768}

// UpdateLayoutForViewport returns layout adjusted for a viewport of the given width.
//
// For narrow viewports, the legend gets horizontal and moves to (v.X, v.Y)
// anchored at its top left corner, the y axis gets automatic margins and the
// left and right margins are removed. Other fields of these records are kept.
// The result is a new layout, layout itself is not modified.
//
// Viewports at least v.Breakpoint wide return layout unchanged.
func UpdateLayoutForViewport(layout Layout, viewportWidth int, v Viewport) Layout {
	if viewportWidth >= v.Breakpoint {
		return layout
	}

	res := make(Layout, len(layout)+3)
	maps.Copy(res, layout)
	res["legend"] = overlay(layout["legend"], map[string]any{
		"orientation": "h",
		"x":           v.X,
		"y":           v.Y,
		"xanchor":     "left",
		"yanchor":     "top",
	})
	res["yaxis"] = overlay(layout["yaxis"], map[string]any{"automargin": true})
	res["margin"] = overlay(layout["margin"], map[string]any{"l": 0, "r": 0})
	return res
}

// overlay returns a new record with the fields of rec, overwritten by fields.
// A rec that is not a record is ignored.
func overlay(rec any, fields map[string]any) map[string]any {
	var base map[string]any
	switch r := rec.(type) {
	case map[string]any:
		base = r
	case Layout:
		base = r
	}
	res := make(map[string]any, len(base)+len(fields))
	maps.Copy(res, base)
	maps.Copy(res, fields)
	return res
}
