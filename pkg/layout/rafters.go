package layout

import (
	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/errors"
)

// Grid is an immutable ascending sequence of rafter x positions.
type Grid struct {
	positions []float64
}

// Positions returns a copy of all rafter positions in ascending order.
func (g Grid) Positions() []float64 {
	out := make([]float64, len(g.positions))
	copy(out, g.positions)
	return out
}

// PositionsInRange returns the rafters within [start, end]. The bounds are
// padded by a small epsilon so a rafter landing exactly on a window edge
// still counts.
func (g Grid) PositionsInRange(start, end float64) []float64 {
	var out []float64
	for _, value := range g.positions {
		if value >= start-epsilon && value <= end+epsilon {
			out = append(out, value)
		}
	}
	return out
}

// GridBuilder generates rafter grids from the rafter settings.
//
// The grid anchors at the leftmost panel edge plus the edge clearance, then
// walks back in whole spacings until it covers at least one spacing before
// the extent, and generates positions up to one spacing past the right
// extent. Edge panels therefore always see candidate rafters on both sides.
type GridBuilder struct {
	Settings config.RafterSettings
}

// Build returns the grid covering the panel extent [minX, maxX].
// Every position is rounded to the engine's output precision.
func (b GridBuilder) Build(minX, maxX float64) (Grid, error) {
	if minX > maxX {
		return Grid{}, errors.New(errors.ErrCodeInvalidExtent, "min_x cannot exceed max_x")
	}

	spacing := b.Settings.Spacing
	first := minX + b.Settings.EdgeClearance
	for first-spacing > minX-spacing*2 {
		first -= spacing
	}

	var positions []float64
	limit := maxX + spacing*2
	for current := first; current <= limit; current += spacing {
		positions = append(positions, roundCoord(current))
	}
	return Grid{positions: positions}, nil
}
