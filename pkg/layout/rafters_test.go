package layout

import (
	"reflect"
	"testing"

	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/errors"
)

func defaultGridBuilder() GridBuilder {
	return GridBuilder{Settings: config.Default().Rafters}
}

func TestGridBuild(t *testing.T) {
	grid, err := defaultGridBuilder().Build(0, 44.7)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Anchored at min_x + clearance, walked back two spacings, extended two
	// spacings past max_x.
	want := []float64{-30, -14, 2, 18, 34, 50, 66}
	if got := grid.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestGridBuildCoversMargin(t *testing.T) {
	grid, err := defaultGridBuilder().Build(0, 179.85)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	positions := grid.Positions()
	if len(positions) != 16 {
		t.Fatalf("len(Positions()) = %d, want 16", len(positions))
	}
	if positions[0] != -30 {
		t.Errorf("first position = %v, want %v", positions[0], -30.0)
	}
	if last := positions[len(positions)-1]; last != 210 {
		t.Errorf("last position = %v, want %v", last, 210.0)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Fatalf("positions not strictly ascending at %d: %v", i, positions)
		}
	}
}

func TestGridBuildInvalidExtent(t *testing.T) {
	_, err := defaultGridBuilder().Build(10, 5)
	if err == nil {
		t.Fatal("Build() expected error for min_x > max_x")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidExtent {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidExtent)
	}
}

func TestGridBuildZeroWidthExtent(t *testing.T) {
	grid, err := defaultGridBuilder().Build(5, 5)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(grid.Positions()) == 0 {
		t.Error("Positions() empty for zero-width extent")
	}
}

func TestGridBuildRoundsPositions(t *testing.T) {
	b := GridBuilder{Settings: config.RafterSettings{Spacing: 3.33333, EdgeClearance: 0}}

	grid, err := b.Build(0, 3)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []float64{-3.3333, 0, 3.3333, 6.6667}
	if got := grid.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestPositionsInRange(t *testing.T) {
	grid, err := defaultGridBuilder().Build(0, 44.7)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		name       string
		start, end float64
		want       []float64
	}{
		{
			name:  "interior window",
			start: 2, end: 42.7,
			want: []float64{2, 18, 34},
		},
		{
			name:  "bounds are inclusive",
			start: 2, end: 34,
			want: []float64{2, 18, 34},
		},
		{
			name:  "epsilon admits near misses",
			start: 2.0000001, end: 33.9999999,
			want: []float64{2, 18, 34},
		},
		{
			name:  "single position",
			start: 18, end: 18,
			want: []float64{18},
		},
		{
			name:  "no positions between rafters",
			start: 3, end: 15,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grid.PositionsInRange(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PositionsInRange(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestPositionsCopy(t *testing.T) {
	grid, err := defaultGridBuilder().Build(0, 44.7)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	first := grid.Positions()
	first[0] = 999

	if got := grid.Positions()[0]; got == 999 {
		t.Error("Positions() shares internal state; want a copy")
	}
}
