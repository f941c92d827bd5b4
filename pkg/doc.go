// Package pkg provides the core libraries for Rackplan layout computation.
//
// # Overview
//
// Rackplan computes mechanical layout artifacts for rectangular panel
// arrays mounted on a rafter grid: where the rafters run, where each
// panel is fastened, and where neighboring panels share seam hardware.
// The pkg directory is organized into four areas:
//
//  1. [layout] - Domain logic (validation, rafter grid, mounts, joints)
//  2. [config] - Settings tree with defaults and file loading
//  3. [render] - Plot and chart output for computed layouts
//  4. [errors] - Structured error codes shared by CLI and HTTP API
//
// # Architecture
//
// The typical data flow through Rackplan:
//
//	Panel placements (JSON / sample)
//	         ↓
//	    [layout] package (validate → grid → mounts → joints)
//	         ↓
//	    [render] package (plots, debug charts)
//	         ↓
//	    JSON/PNG/SVG/PDF output
//
// # Quick Start
//
// Compute a layout and render it:
//
//	import (
//	    "github.com/matzehuels/rackplan/pkg/config"
//	    "github.com/matzehuels/rackplan/pkg/layout"
//	    "github.com/matzehuels/rackplan/pkg/render"
//	)
//
//	// 1. Build a calculator from settings
//	calc, _ := layout.NewCalculator(config.Default())
//
//	// 2. Compute the layout
//	ctx, _ := calc.CalculateDetailed([]layout.Spec{
//	    {"x": 0, "y": 0},
//	    {"x": 45.05, "y": 0},
//	})
//
//	// 3. Render a plot
//	_ = render.WritePlot(ctx, "layout.png")
//
// # Main Packages
//
// [layout] - The pure calculation core. Validates panel placements
// (missing, negative, duplicate, overlapping coordinates), derives the
// rafter grid from the array extent, places top and bottom mount rows
// where panels cross rafters under span and cantilever limits, and
// detects seam joints between side-by-side panels. Deterministic and
// free of I/O; safe for concurrent use.
//
// [config] - Settings for every stage (panel dimensions, rafter
// spacing, structural limits, joint thresholds, validation toggles)
// with defaults as package constants. Loads YAML or TOML files with
// strict unknown-key rejection.
//
// [render] - Static plots (PNG, SVG, PDF via gonum/plot) and
// browser-based scatter charts (go-echarts) of a computed layout.
//
// [errors] - Error type carrying a stable machine-readable code and a
// human-readable message. The CLI and the HTTP API surface the same
// codes.
//
// [buildinfo] - Version, commit, and build date set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/layout
// [config]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/rackplan/pkg/buildinfo
package pkg
