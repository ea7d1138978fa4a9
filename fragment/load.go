package fragment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML fragment payload and validates it.
func DecodeYAML(data []byte) (Fragment, error) {
	var f Fragment
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fragment{}, fmt.Errorf("fragment: decode yaml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// DecodeJSON parses a JSON fragment payload and validates it.
func DecodeJSON(data []byte) (Fragment, error) {
	var f Fragment
	if err := json.Unmarshal(data, &f); err != nil {
		return Fragment{}, fmt.Errorf("fragment: decode json: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fragment{}, err
	}
	return f, nil
}

// LoadFile reads a fragment from disk, choosing the decoder by extension:
// .json uses JSON, everything else (.yaml, .yml, unknown) uses YAML.
func LoadFile(path string) (Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fragment{}, fmt.Errorf("fragment: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}
