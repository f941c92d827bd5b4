// Package render draws computed layouts as static plots and debug charts.
//
// # Overview
//
// This package turns a [layout.Context] into visual output. It provides:
//
//   - Static plot files via [WritePlot] (PNG, SVG, PDF)
//   - Interactive HTML scatter charts via [WriteChart]
//
// # Static Plots
//
// [WritePlot] renders panels as filled rectangles, rafters as dashed
// vertical lines, mounts as black circles, and joints as dark gray
// squares on an 8x6 inch canvas. The y axis is inverted so the drawing
// matches roof coordinates, where y grows downward from the ridge.
//
//	ctx, _ := calc.CalculateDetailed(specs)
//	err := render.WritePlot(ctx, "layout.png")
//
// The output format follows the file extension. Anything other than
// .png, .svg, or .pdf is rejected before a file is written.
//
// # Debug Charts
//
// [WriteChart] emits a self-contained HTML page with a scatter chart of
// mounts and joints, used by the HTTP server's debug endpoint.
//
// [layout.Context]: github.com/matzehuels/rackplan/pkg/layout#Context
package render
