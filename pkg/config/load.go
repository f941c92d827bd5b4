package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/rackplan/pkg/errors"
)

// Load reads a settings file and overlays it on the defaults.
//
// The format is chosen by extension: .yaml/.yml or .toml. An empty path
// returns [Default] untouched. Sections and keys absent from the file keep
// their default values; unknown keys are an error. The resulting Config is
// validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read settings file %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported settings format %q (use .yaml, .yml, or .toml)", ext)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse settings file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeYAML overlays YAML data onto cfg. KnownFields makes unrecognized
// keys an error at any nesting level.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// decodeTOML overlays TOML data onto cfg, rejecting keys that do not map
// to a settings field.
func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown settings key %q", undecoded[0].String())
	}
	return nil
}
