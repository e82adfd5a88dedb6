package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/stride/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseRegimeFile reads a regime template written in TOML, or in YAML when
// the file ends in .yaml/.yml. Unknown keys are rejected.
func ParseRegimeFile(path string) (*models.RegimeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseRegimeYAML(data)
	default:
		return ParseRegimeTOML(data)
	}
}

func ParseRegimeTOML(data []byte) (*models.RegimeFile, error) {
	var regime models.RegimeFile
	md, err := toml.Decode(string(data), &regime)
	if err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("Unknown keys in regime file: %v", undecoded)
	}
	return &regime, nil
}

func ParseRegimeYAML(data []byte) (*models.RegimeFile, error) {
	var regime models.RegimeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&regime); err != nil {
		return nil, fmt.Errorf("Invalid YAML format: %w", err)
	}
	return &regime, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
