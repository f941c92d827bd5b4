package layout

import "math"

// epsilon pads range and span comparisons so positions produced by repeated
// float addition still count when they land exactly on a boundary.
const epsilon = 1e-6

// Spec is a raw panel placement as supplied by callers: a mapping expected
// to contain numeric "x" and "y" keys. Extra keys are ignored.
type Spec map[string]float64

// Panel is a validated panel placement. X and Y locate the top-left corner;
// y grows downward in roof coordinates.
type Panel struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RightEdge returns the x coordinate of the panel's right edge.
func (p Panel) RightEdge() float64 { return p.X + p.Width }

// BottomEdge returns the y coordinate of the panel's bottom edge.
func (p Panel) BottomEdge() float64 { return p.Y + p.Height }

// Mount is an attachment hardware position where a panel crosses a rafter.
type Mount struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Joint is a seam hardware position between side-by-side panels.
type Joint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is the computed hardware set for a layout run. Counts are derived
// from the slices, never stored.
type Result struct {
	Mounts []Mount `json:"mounts"`
	Joints []Joint `json:"joints"`
}

// MountCount returns the number of mount points.
func (r Result) MountCount() int { return len(r.Mounts) }

// JointCount returns the number of seam joints.
func (r Result) JointCount() int { return len(r.Joints) }

// Context is the detailed outcome of a layout run: the result plus the
// validated panels and rafter grid that produced it. Rendering consumes a
// Context rather than a bare [Result] so it can draw the full scene.
type Context struct {
	Result  Result
	Panels  []Panel
	Rafters []float64
}

// roundCoord rounds v to four decimal places, the engine's output precision.
func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
