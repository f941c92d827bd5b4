// Package sample provides the built-in demonstration dataset: a ten-panel
// arrangement across three rows with staggered horizontal gaps, used by the
// CLI when no panels file is given and by the debug chart endpoint.
package sample

import "github.com/matzehuels/rackplan/pkg/layout"

// Panels returns the demonstration panel placements. The slice is freshly
// allocated on every call, so callers may modify it freely.
func Panels() []layout.Spec {
	return []layout.Spec{
		{"x": 0, "y": 0},
		{"x": 45.05, "y": 0},
		{"x": 90.1, "y": 0},
		{"x": 0, "y": 71.6},
		{"x": 135.15, "y": 0},
		{"x": 135.15, "y": 71.6},
		{"x": 0, "y": 143.2},
		{"x": 45.05, "y": 143.2},
		{"x": 135.15, "y": 143.2},
		{"x": 90.1, "y": 143.2},
	}
}
