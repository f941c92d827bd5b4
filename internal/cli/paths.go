package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePlotPath decides where a rendered plot goes, relative to the JSON
// file it belongs to.
//
// An empty override places the plot next to the JSON file with a .png
// extension. An override naming a directory (existing, or without an
// extension) is created and receives layout_<timestamp>.png. Any other
// override is used as-is, with the timestamp inserted before the extension.
func resolvePlotPath(jsonPath, override, timestamp string) (string, error) {
	if override == "" {
		return strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".png", nil
	}

	info, err := os.Stat(override)
	isDir := err == nil && info.IsDir()
	if isDir || filepath.Ext(override) == "" {
		if err := os.MkdirAll(override, 0755); err != nil {
			return "", err
		}
		return filepath.Join(override, "layout_"+timestamp+".png"), nil
	}

	ext := filepath.Ext(override)
	stem := strings.TrimSuffix(filepath.Base(override), ext)
	if stem == "" {
		stem = "layout"
	}
	return filepath.Join(filepath.Dir(override), stem+"_"+timestamp+ext), nil
}
