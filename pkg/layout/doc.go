// Package layout computes mechanical layouts for residential solar
// installations: rafter grids, mount points, and seam joints for a set of
// uniform rectangular panels on a single roof plane.
//
// # Overview
//
// Panels are placed by their top-left corner in roof coordinates, where x
// grows to the right and y grows downward. All lengths share one working
// unit (typically inches); the engine never converts units. From validated
// placements the engine derives:
//
//   - a rafter grid: the vertical structural lines panels attach to,
//     anchored near the leftmost panel edge and extended past both extremes
//     ([GridBuilder])
//   - mount points: attachment hardware wherever a panel crosses a usable
//     rafter, one row along the top edge and one along the bottom
//     ([MountCalculator])
//   - seam joints: hardware centered in narrow horizontal gaps between
//     side-by-side panels of the same row ([JointCalculator])
//
// # Basic Usage
//
// Build a [Calculator] from settings and feed it raw placements:
//
//	calc, err := layout.NewCalculator(config.Default())
//	if err != nil {
//	    return err
//	}
//	result, err := calc.Calculate([]layout.Spec{
//	    {"x": 0, "y": 0},
//	    {"x": 45.05, "y": 0},
//	})
//
// [Calculator.CalculateDetailed] additionally returns the validated panels
// and the rafter grid, which the render package uses to draw the layout.
//
// # Validation
//
// Input passes through strict checks before any geometry is computed:
// missing or negative coordinates, duplicates (after quantizing by the
// coordinate tolerance), and pairwise overlaps all fail with structured
// errors from the errors package. The structural checks reject layouts
// where a panel has no rafter inside its mounting window, hangs too far
// past its outermost mount, or spans too far between adjacent mounts.
// Each check can be relaxed through [config.ValidationSettings].
//
// # Determinism
//
// The engine is pure and synchronous: no I/O, no logging, no goroutines.
// Equal inputs and settings always produce equal outputs. Panels and
// joints are sorted by (y, x); mounts keep panel order, top row then
// bottom row per panel, and are intentionally never deduplicated, since
// every mount is a physical piece of hardware belonging to one panel.
// A Calculator is safe for concurrent use.
//
// [config.ValidationSettings]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/config#ValidationSettings
package layout
