package layout

import (
	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/errors"
)

// MountCalculator places attachment hardware where panels cross rafters and
// enforces the structural span and cantilever limits.
type MountCalculator struct {
	Settings config.MountSettings
}

// Place computes mounts for the given panels against the rafter grid.
//
// Panels are processed in order; each contributes one mount per usable
// rafter along its top edge, then one per rafter along its bottom edge.
// Mounts are never deduplicated: each is a physical piece of hardware owned
// by exactly one panel, even when neighboring panels share a rafter line.
func (m MountCalculator) Place(panels []Panel, grid Grid) ([]Mount, error) {
	mounts := make([]Mount, 0, len(panels)*6)
	for _, panel := range panels {
		panelMounts, err := m.panelMounts(panel, grid)
		if err != nil {
			return nil, err
		}
		mounts = append(mounts, panelMounts...)
	}
	return mounts, nil
}

func (m MountCalculator) panelMounts(panel Panel, grid Grid) ([]Mount, error) {
	allowedStart := panel.X + m.Settings.EdgeClearance
	allowedEnd := panel.RightEdge() - m.Settings.EdgeClearance
	rafters := grid.PositionsInRange(allowedStart, allowedEnd)

	if len(rafters) == 0 {
		return nil, errors.New(errors.ErrCodeNoRafterInSpan,
			"No rafters available inside panel spanning from %v to %v.", allowedStart, allowedEnd)
	}
	if rafters[0]-panel.X-m.Settings.EdgeClearance > m.Settings.CantileverLimit {
		return nil, errors.New(errors.ErrCodeLeftCantilever,
			"Left cantilever limit exceeded for panel at x=%v.", panel.X)
	}
	if panel.RightEdge()-m.Settings.EdgeClearance-rafters[len(rafters)-1] > m.Settings.CantileverLimit {
		return nil, errors.New(errors.ErrCodeRightCantilever,
			"Right cantilever limit exceeded for panel at x=%v.", panel.X)
	}
	for i := 1; i < len(rafters); i++ {
		if rafters[i]-rafters[i-1] > m.Settings.SpanLimit+epsilon {
			return nil, errors.New(errors.ErrCodeSpanExceeded,
				"Span limit exceeded inside panel at x=%v.", panel.X)
		}
	}

	out := make([]Mount, 0, len(rafters)*2)
	for _, value := range rafters {
		out = append(out, Mount{X: value, Y: panel.Y})
	}
	for _, value := range rafters {
		out = append(out, Mount{X: value, Y: panel.BottomEdge()})
	}
	return out, nil
}
