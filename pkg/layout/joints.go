package layout

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/rackplan/pkg/config"
)

// JointCalculator finds seam joints: hardware centered in narrow horizontal
// gaps between side-by-side panels of the same row.
type JointCalculator struct {
	Settings config.JointSettings
}

// Detect returns the deduplicated joints for all narrow seams, sorted by
// (Y, X). The slice is never nil, so an empty result marshals as [].
//
// The gap threshold is a maximum seam width: pairs whose gap is at or above
// it are treated as intentional walkways and receive no hardware. Each seam
// produces a joint at the row's top edge and one at the bottom edge of the
// left panel; joints falling on identical coordinates after rounding (such
// as a shared edge between two stacked rows) collapse into one.
func (j JointCalculator) Detect(panels []Panel) []Joint {
	rows := groupIntoRows(panels, j.Settings.VerticalTolerance)

	seen := make(map[Joint]struct{})
	joints := make([]Joint, 0)
	for _, row := range rows {
		sort.Slice(row.panels, func(a, b int) bool { return row.panels[a].X < row.panels[b].X })
		for i := 0; i+1 < len(row.panels); i++ {
			left, right := row.panels[i], row.panels[i+1]
			gap := right.X - left.RightEdge()
			if gap >= j.Settings.HorizontalGapThreshold {
				continue
			}
			seamX := roundCoord((left.RightEdge() + right.X) / 2)
			for _, joint := range []Joint{
				{X: seamX, Y: roundCoord(row.key)},
				{X: seamX, Y: roundCoord(row.key + left.Height)},
			} {
				if _, dup := seen[joint]; dup {
					continue
				}
				seen[joint] = struct{}{}
				joints = append(joints, joint)
			}
		}
	}

	sort.Slice(joints, func(a, b int) bool {
		if joints[a].Y != joints[b].Y {
			return joints[a].Y < joints[b].Y
		}
		return joints[a].X < joints[b].X
	})
	return joints
}

// panelRow buckets panels sharing a top edge within the vertical tolerance.
// The first panel seen fixes the row key permanently; later panels match
// against that key, not against each other.
type panelRow struct {
	key    float64
	panels []Panel
}

func groupIntoRows(panels []Panel, tolerance float64) []*panelRow {
	var rows []*panelRow
	for _, panel := range panels {
		var target *panelRow
		for _, row := range rows {
			if scalar.EqualWithinAbs(row.key, panel.Y, tolerance) {
				target = row
				break
			}
		}
		if target == nil {
			target = &panelRow{key: panel.Y}
			rows = append(rows, target)
		}
		target.panels = append(target.panels, panel)
	}
	return rows
}
