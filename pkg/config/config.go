// Package config defines the layout engine settings and their defaults.
//
// Settings are grouped into sections mirroring the engine's collaborators:
// panel dimensions, rafter grid, mount rules, joint rules, and input
// validation. All values are plain numbers in the installer's working unit
// (typically inches); the engine never converts units.
//
// A zero-value Config is not usable. Obtain one from [Default] and adjust
// fields, or from [Load] to read a YAML or TOML settings file. Loaded files
// override only the keys they mention; everything else keeps its default.
// Unknown keys are rejected so typos fail loudly instead of silently
// falling back.
package config

import (
	"github.com/matzehuels/rackplan/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and engine
// =============================================================================

const (
	// DefaultPanelWidth is the uniform panel width.
	DefaultPanelWidth = 44.7

	// DefaultPanelHeight is the uniform panel height.
	DefaultPanelHeight = 71.1

	// DefaultRafterSpacing is the distance between adjacent rafters.
	DefaultRafterSpacing = 16.0

	// DefaultRafterEdgeClearance offsets the first rafter from the leftmost
	// panel edge so hardware clears the panel frame.
	DefaultRafterEdgeClearance = 2.0

	// DefaultSpanLimit is the maximum allowed distance between adjacent
	// mounts under a panel.
	DefaultSpanLimit = 48.0

	// DefaultCantileverLimit is the maximum unsupported overhang past the
	// outermost mount on either side of a panel.
	DefaultCantileverLimit = 16.0

	// DefaultMountEdgeClearance shrinks the usable mounting window from
	// both panel edges.
	DefaultMountEdgeClearance = 2.0

	// DefaultHorizontalGapThreshold is the widest side-by-side gap that
	// still receives joint hardware. Gaps at or above it are treated as
	// intentional walkways and get no joints.
	DefaultHorizontalGapThreshold = 1.0

	// DefaultVerticalTolerance is the y-distance within which panels count
	// as the same row for joint detection.
	DefaultVerticalTolerance = 0.5

	// DefaultCoordinateTolerance is the quantization step for duplicate and
	// overlap checks on panel coordinates.
	DefaultCoordinateTolerance = 1e-4
)

// PanelSettings holds the uniform panel dimensions.
type PanelSettings struct {
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
}

// RafterSettings controls rafter grid generation.
type RafterSettings struct {
	// Spacing is the distance between adjacent rafters. Must be positive.
	Spacing float64 `yaml:"spacing" toml:"spacing" json:"spacing"`

	// EdgeClearance offsets the grid anchor from the leftmost panel edge.
	EdgeClearance float64 `yaml:"edge_clearance" toml:"edge_clearance" json:"edge_clearance"`
}

// MountSettings controls mount placement and the structural checks.
type MountSettings struct {
	// SpanLimit is the maximum distance between adjacent mounts under a panel.
	SpanLimit float64 `yaml:"span_limit" toml:"span_limit" json:"span_limit"`

	// CantileverLimit is the maximum overhang past the outermost mounts.
	CantileverLimit float64 `yaml:"cantilever_limit" toml:"cantilever_limit" json:"cantilever_limit"`

	// EdgeClearance shrinks the usable window from both panel edges.
	EdgeClearance float64 `yaml:"edge_clearance" toml:"edge_clearance" json:"edge_clearance"`
}

// JointSettings controls seam joint detection between side-by-side panels.
type JointSettings struct {
	// HorizontalGapThreshold is the widest gap that still gets a joint.
	// A gap equal to the threshold is already too wide.
	HorizontalGapThreshold float64 `yaml:"horizontal_gap_threshold" toml:"horizontal_gap_threshold" json:"horizontal_gap_threshold"`

	// VerticalTolerance groups panels into rows by top edge proximity.
	VerticalTolerance float64 `yaml:"vertical_tolerance" toml:"vertical_tolerance" json:"vertical_tolerance"`
}

// ValidationSettings controls how strictly panel input is checked.
type ValidationSettings struct {
	AllowNegativeCoordinates bool `yaml:"allow_negative_coordinates" toml:"allow_negative_coordinates" json:"allow_negative_coordinates"`
	AllowDuplicates          bool `yaml:"allow_duplicates" toml:"allow_duplicates" json:"allow_duplicates"`
	AllowOverlaps            bool `yaml:"allow_overlaps" toml:"allow_overlaps" json:"allow_overlaps"`

	// CoordinateTolerance is the quantization step for duplicate detection
	// and the slack applied to negative and overlap checks. Must be positive.
	CoordinateTolerance float64 `yaml:"coordinate_tolerance" toml:"coordinate_tolerance" json:"coordinate_tolerance"`
}

// Config is the complete settings tree for a layout run.
//
// Treat a Config as read-only once it reaches the engine; calculators copy
// the sections they need at construction time.
type Config struct {
	Panel      PanelSettings      `yaml:"panel" toml:"panel" json:"panel"`
	Rafters    RafterSettings     `yaml:"rafters" toml:"rafters" json:"rafters"`
	Mounts     MountSettings      `yaml:"mounts" toml:"mounts" json:"mounts"`
	Joints     JointSettings      `yaml:"joints" toml:"joints" json:"joints"`
	Validation ValidationSettings `yaml:"validation" toml:"validation" json:"validation"`
}

// Default returns a Config populated with the documented defaults.
func Default() Config {
	return Config{
		Panel: PanelSettings{
			Width:  DefaultPanelWidth,
			Height: DefaultPanelHeight,
		},
		Rafters: RafterSettings{
			Spacing:       DefaultRafterSpacing,
			EdgeClearance: DefaultRafterEdgeClearance,
		},
		Mounts: MountSettings{
			SpanLimit:       DefaultSpanLimit,
			CantileverLimit: DefaultCantileverLimit,
			EdgeClearance:   DefaultMountEdgeClearance,
		},
		Joints: JointSettings{
			HorizontalGapThreshold: DefaultHorizontalGapThreshold,
			VerticalTolerance:      DefaultVerticalTolerance,
		},
		Validation: ValidationSettings{
			CoordinateTolerance: DefaultCoordinateTolerance,
		},
	}
}

// Validate checks the numeric constraints on all sections.
func (c Config) Validate() error {
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"panel dimensions must be positive numbers (got width=%v, height=%v)", c.Panel.Width, c.Panel.Height)
	}
	if c.Rafters.Spacing <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rafters.spacing must be a positive number.")
	}
	if c.Rafters.EdgeClearance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rafters.edge_clearance must not be negative.")
	}
	if c.Mounts.SpanLimit <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "mounts.span_limit must be a positive number.")
	}
	if c.Mounts.CantileverLimit <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "mounts.cantilever_limit must be a positive number.")
	}
	if c.Mounts.EdgeClearance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "mounts.edge_clearance must not be negative.")
	}
	if c.Joints.HorizontalGapThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "joints.horizontal_gap_threshold must not be negative.")
	}
	if c.Joints.VerticalTolerance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "joints.vertical_tolerance must not be negative.")
	}
	if c.Validation.CoordinateTolerance <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "coordinate_tolerance must be a positive number.")
	}
	return nil
}
