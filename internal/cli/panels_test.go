package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/rackplan/pkg/errors"
)

// writePanelsFile writes content to a temp file and returns its path.
func writePanelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panels.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write panels file: %v", err)
	}
	return path
}

func TestLoadPanelsFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "top-level array",
			content: `[{"x": 0, "y": 0}, {"x": 45.05, "y": 0}]`,
			want:    2,
		},
		{
			name:    "panels wrapper object",
			content: `{"panels": [{"x": 0, "y": 0}, {"x": 45.05, "y": 0}, {"x": 90.1, "y": 0}]}`,
			want:    3,
		},
		{
			name:    "empty array",
			content: `[]`,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := loadPanelsFile(writePanelsFile(t, tt.content))
			if err != nil {
				t.Fatalf("loadPanelsFile() error = %v", err)
			}
			if len(specs) != tt.want {
				t.Errorf("loadPanelsFile() returned %d specs, want %d", len(specs), tt.want)
			}
		})
	}
}

func TestLoadPanelsFileValues(t *testing.T) {
	specs, err := loadPanelsFile(writePanelsFile(t, `[{"x": 45.05, "y": 71.6}]`))
	if err != nil {
		t.Fatalf("loadPanelsFile() error = %v", err)
	}
	if got := specs[0]["x"]; got != 45.05 {
		t.Errorf("spec x = %v, want 45.05", got)
	}
	if got := specs[0]["y"]; got != 71.6 {
		t.Errorf("spec y = %v, want 71.6", got)
	}
}

func TestLoadPanelsFileDropsNonNumeric(t *testing.T) {
	// Non-numeric coordinates are dropped so the engine reports them as
	// missing rather than the loader guessing a value.
	specs, err := loadPanelsFile(writePanelsFile(t, `[{"x": "abc", "y": 0, "label": "roof"}]`))
	if err != nil {
		t.Fatalf("loadPanelsFile() error = %v", err)
	}
	if _, ok := specs[0]["x"]; ok {
		t.Error("non-numeric x survived loading")
	}
	if _, ok := specs[0]["y"]; !ok {
		t.Error("numeric y was dropped")
	}
}

func TestLoadPanelsFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `not json at all`},
		{"object without panels key", `{"other": 1}`},
		{"object with bad panels type", `{"panels": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPanelsFile(writePanelsFile(t, tt.content))
			if err == nil {
				t.Fatal("loadPanelsFile() error = nil, want error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
				t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestLoadPanelsFileMissing(t *testing.T) {
	_, err := loadPanelsFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("loadPanelsFile() error = nil for missing file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidInput)
	}
}
