package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/errors"
)

// PanelBuilder turns raw placement specs into validated panels. Dimensions
// are uniform across all panels; validation behavior follows the settings.
type PanelBuilder struct {
	Dimensions config.PanelSettings
	Validation config.ValidationSettings
}

// Build validates specs and returns the panels sorted by (Y, X).
//
// Specs are processed in order. A missing coordinate, a negative coordinate
// (beyond the tolerance), or a duplicate position fails immediately; overlap
// checking runs as a second pass once all panels exist. Any of the three
// checks can be disabled via the validation settings.
func (b PanelBuilder) Build(specs []Spec) ([]Panel, error) {
	tolerance := b.Validation.CoordinateTolerance
	panels := make([]Panel, 0, len(specs))
	seen := make(map[quantKey]struct{}, len(specs))

	for _, spec := range specs {
		x, okX := spec["x"]
		y, okY := spec["y"]
		if !okX || !okY {
			return nil, errors.New(errors.ErrCodeMissingCoordinate, "Each panel spec must contain 'x' and 'y'.")
		}
		if !b.Validation.AllowNegativeCoordinates && (x < -tolerance || y < -tolerance) {
			return nil, errors.New(errors.ErrCodeNegativeCoordinate,
				"Negative coordinates are not allowed (received x=%v, y=%v).", x, y)
		}
		if !b.Validation.AllowDuplicates {
			key := quantize(x, y, tolerance)
			if _, dup := seen[key]; dup {
				return nil, errors.New(errors.ErrCodeDuplicatePanel,
					"Duplicate panel detected at (%v, %v).", x, y)
			}
			seen[key] = struct{}{}
		}
		panels = append(panels, Panel{
			X:      x,
			Y:      y,
			Width:  b.Dimensions.Width,
			Height: b.Dimensions.Height,
		})
	}

	if !b.Validation.AllowOverlaps {
		if err := validateNoOverlap(panels, tolerance); err != nil {
			return nil, err
		}
	}

	sort.Slice(panels, func(i, j int) bool {
		if panels[i].Y != panels[j].Y {
			return panels[i].Y < panels[j].Y
		}
		return panels[i].X < panels[j].X
	})
	return panels, nil
}

// quantKey is a panel position quantized by the coordinate tolerance, used
// to detect duplicates that differ only by float noise.
type quantKey struct {
	x, y int64
}

func quantize(x, y, tolerance float64) quantKey {
	// The floor keeps the key finite for very small tolerances.
	scale := math.Max(tolerance, 1e-9)
	return quantKey{
		x: int64(math.Round(x / scale)),
		y: int64(math.Round(y / scale)),
	}
}

// validateNoOverlap checks every pair in input order and reports the
// earlier panel first.
func validateNoOverlap(panels []Panel, tolerance float64) error {
	for i, first := range panels {
		for _, second := range panels[i+1:] {
			if rectanglesOverlap(first, second, tolerance) {
				return errors.New(errors.ErrCodeOverlappingPanels,
					"Panel at (%v, %v) overlaps panel at (%v, %v).",
					first.X, first.Y, second.X, second.Y)
			}
		}
	}
	return nil
}

// rectanglesOverlap reports whether two panels share area. Edges touching
// within the tolerance count as separated, so flush neighbors are fine.
func rectanglesOverlap(first, second Panel, tolerance float64) bool {
	separatedHorizontally := first.RightEdge() <= second.X+tolerance ||
		second.RightEdge() <= first.X+tolerance
	separatedVertically := first.BottomEdge() <= second.Y+tolerance ||
		second.BottomEdge() <= first.Y+tolerance
	return !(separatedHorizontally || separatedVertically)
}
