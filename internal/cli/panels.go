package cli

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/matzehuels/rackplan/pkg/errors"
	"github.com/matzehuels/rackplan/pkg/layout"
)

// loadPanelsFile reads panel placements from a JSON file. The file holds
// either a top-level array of objects or an object with a "panels" array.
// Only numeric fields are kept; anything else is left to the engine's
// input validation.
func loadPanelsFile(path string) ([]layout.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read panels file %s", path)
	}

	var raw []map[string]any
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var wrapper struct {
			Panels []map[string]any `json:"panels"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse panels file %s", path)
		}
		if wrapper.Panels == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"panels file %s must hold a JSON array or an object with a 'panels' array", path)
		}
		raw = wrapper.Panels
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse panels file %s", path)
		}
	}

	specs := make([]layout.Spec, len(raw))
	for i, entry := range raw {
		spec := make(layout.Spec, len(entry))
		for key, value := range entry {
			if num, ok := value.(float64); ok {
				spec[key] = num
			}
		}
		specs[i] = spec
	}
	return specs, nil
}
