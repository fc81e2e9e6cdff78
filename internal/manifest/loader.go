package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"modelget/internal/common/fsutil"
	"modelget/pkg/types"
)

// Load reads a manifest file based on its extension and validates it.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (*types.Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("empty manifest path")
	}
	expanded, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(expanded)
	if err != nil {
		return nil, err
	}
	var m types.Manifest
	switch ext := strings.ToLower(filepath.Ext(expanded)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest extension: %s", ext)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Resolve returns the manifest to install: the file at path when given,
// the built-in manifest otherwise. The built-in manifest is validated
// too, so a bad edit fails loudly instead of half-installing.
func Resolve(path string) (*types.Manifest, error) {
	if path != "" {
		return Load(path)
	}
	m := Default()
	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}
