package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/rackplan/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Panel.Width != 44.7 {
		t.Errorf("Panel.Width = %v, want %v", cfg.Panel.Width, 44.7)
	}
	if cfg.Panel.Height != 71.1 {
		t.Errorf("Panel.Height = %v, want %v", cfg.Panel.Height, 71.1)
	}
	if cfg.Rafters.Spacing != 16.0 {
		t.Errorf("Rafters.Spacing = %v, want %v", cfg.Rafters.Spacing, 16.0)
	}
	if cfg.Rafters.EdgeClearance != 2.0 {
		t.Errorf("Rafters.EdgeClearance = %v, want %v", cfg.Rafters.EdgeClearance, 2.0)
	}
	if cfg.Mounts.SpanLimit != 48.0 {
		t.Errorf("Mounts.SpanLimit = %v, want %v", cfg.Mounts.SpanLimit, 48.0)
	}
	if cfg.Mounts.CantileverLimit != 16.0 {
		t.Errorf("Mounts.CantileverLimit = %v, want %v", cfg.Mounts.CantileverLimit, 16.0)
	}
	if cfg.Joints.HorizontalGapThreshold != 1.0 {
		t.Errorf("Joints.HorizontalGapThreshold = %v, want %v", cfg.Joints.HorizontalGapThreshold, 1.0)
	}
	if cfg.Joints.VerticalTolerance != 0.5 {
		t.Errorf("Joints.VerticalTolerance = %v, want %v", cfg.Joints.VerticalTolerance, 0.5)
	}
	if cfg.Validation.CoordinateTolerance != 1e-4 {
		t.Errorf("Validation.CoordinateTolerance = %v, want %v", cfg.Validation.CoordinateTolerance, 1e-4)
	}
	if cfg.Validation.AllowNegativeCoordinates || cfg.Validation.AllowDuplicates || cfg.Validation.AllowOverlaps {
		t.Error("validation switches should default to false")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero coordinate tolerance",
			mutate:  func(c *Config) { c.Validation.CoordinateTolerance = 0 },
			wantErr: true,
		},
		{
			name:    "negative coordinate tolerance",
			mutate:  func(c *Config) { c.Validation.CoordinateTolerance = -1e-4 },
			wantErr: true,
		},
		{
			name:    "zero rafter spacing",
			mutate:  func(c *Config) { c.Rafters.Spacing = 0 },
			wantErr: true,
		},
		{
			name:    "negative span limit",
			mutate:  func(c *Config) { c.Mounts.SpanLimit = -1 },
			wantErr: true,
		},
		{
			name:    "zero panel width",
			mutate:  func(c *Config) { c.Panel.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative gap threshold",
			mutate:  func(c *Config) { c.Joints.HorizontalGapThreshold = -0.1 },
			wantErr: true,
		},
		{
			name:    "zero gap threshold is allowed",
			mutate:  func(c *Config) { c.Joints.HorizontalGapThreshold = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateToleranceMessage(t *testing.T) {
	cfg := Default()
	cfg.Validation.CoordinateTolerance = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for zero tolerance")
	}
	want := "coordinate_tolerance must be a positive number."
	if errors.UserMessage(err) != want {
		t.Errorf("UserMessage() = %q, want %q", errors.UserMessage(err), want)
	}
}

// writeSettings writes content to a settings file in a temp dir and returns its path.
func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeSettings(t, "settings.yaml", "mounts:\n  span_limit: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Mounts.SpanLimit != 30 {
		t.Errorf("Mounts.SpanLimit = %v, want %v", cfg.Mounts.SpanLimit, 30.0)
	}
	// Untouched sections keep their defaults.
	if cfg.Mounts.CantileverLimit != DefaultCantileverLimit {
		t.Errorf("Mounts.CantileverLimit = %v, want default %v", cfg.Mounts.CantileverLimit, DefaultCantileverLimit)
	}
	if cfg.Rafters.Spacing != DefaultRafterSpacing {
		t.Errorf("Rafters.Spacing = %v, want default %v", cfg.Rafters.Spacing, DefaultRafterSpacing)
	}
}

func TestLoadYAMLEmptyFile(t *testing.T) {
	path := writeSettings(t, "settings.yaml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(empty file) = %+v, want defaults", cfg)
	}
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown section",
			content: "turbines:\n  count: 3\n",
		},
		{
			name:    "unknown key in known section",
			content: "rafters:\n  spacing: 16\n  slope: 12\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, "settings.yaml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error for unknown key")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeSettings(t, "settings.toml", "[joints]\nhorizontal_gap_threshold = 2.5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Joints.HorizontalGapThreshold != 2.5 {
		t.Errorf("Joints.HorizontalGapThreshold = %v, want %v", cfg.Joints.HorizontalGapThreshold, 2.5)
	}
	if cfg.Joints.VerticalTolerance != DefaultVerticalTolerance {
		t.Errorf("Joints.VerticalTolerance = %v, want default %v", cfg.Joints.VerticalTolerance, DefaultVerticalTolerance)
	}
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeSettings(t, "settings.toml", "[rafters]\nslope = 12.0\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unknown key")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	// A file that parses but fails validation.
	path := writeSettings(t, "settings.yaml", "validation:\n  coordinate_tolerance: 0\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected validation error")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeSettings(t, "settings.ini", "[rafters]\nspacing=16\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unsupported extension")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}
