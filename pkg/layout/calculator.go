package layout

import (
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/errors"
)

// Calculator orchestrates a full layout run: panel validation, rafter grid
// generation, mount placement, and joint detection.
//
// A Calculator holds only immutable settings and is safe for concurrent use.
type Calculator struct {
	cfg    config.Config
	panels PanelBuilder
	grid   GridBuilder
	mounts MountCalculator
	joints JointCalculator
}

// NewCalculator wires a calculator from the given settings.
// The settings are validated once here; invalid values fail construction.
func NewCalculator(cfg config.Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		cfg:    cfg,
		panels: PanelBuilder{Dimensions: cfg.Panel, Validation: cfg.Validation},
		grid:   GridBuilder{Settings: cfg.Rafters},
		mounts: MountCalculator{Settings: cfg.Mounts},
		joints: JointCalculator{Settings: cfg.Joints},
	}, nil
}

// Config returns the settings the calculator was built with.
func (c *Calculator) Config() config.Config { return c.cfg }

// Calculate computes mounts and joints for the given panel placements.
func (c *Calculator) Calculate(specs []Spec) (Result, error) {
	ctx, err := c.CalculateDetailed(specs)
	if err != nil {
		return Result{}, err
	}
	return ctx.Result, nil
}

// CalculateDetailed computes the layout and returns the validated panels
// and rafter grid alongside the result, for rendering and inspection.
func (c *Calculator) CalculateDetailed(specs []Spec) (Context, error) {
	panels, err := c.panels.Build(specs)
	if err != nil {
		return Context{}, err
	}
	if len(panels) == 0 {
		return Context{}, errors.New(errors.ErrCodeNoPanels, "At least one panel must be supplied.")
	}

	minX, maxX := extent(panels)
	grid, err := c.grid.Build(minX, maxX)
	if err != nil {
		return Context{}, err
	}

	mounts, err := c.mounts.Place(panels, grid)
	if err != nil {
		return Context{}, err
	}
	joints := c.joints.Detect(panels)

	return Context{
		Result:  Result{Mounts: mounts, Joints: joints},
		Panels:  panels,
		Rafters: grid.Positions(),
	}, nil
}

// extent returns the leftmost panel edge and the rightmost panel edge.
func extent(panels []Panel) (minX, maxX float64) {
	lefts := make([]float64, len(panels))
	rights := make([]float64, len(panels))
	for i, panel := range panels {
		lefts[i] = panel.X
		rights[i] = panel.RightEdge()
	}
	return floats.Min(lefts), floats.Max(rights)
}
