package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Unknown extensions are YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load builds the configuration for a variant.
// The embedded defaults are decoded first, the variant is applied on top, and
// the first overlay found is decoded last so user files win.
// Overlay search order: customPath -> ~/.spacewar/configs/spacewar.{yaml,toml} -> ./configs/spacewar.{yaml,toml}
func Load(customPath, variant string) (SpacewarConfig, error) {
	cfg, err := Base()
	if err != nil {
		return cfg, err
	}

	if variant == "" {
		variant = cfg.Variant
	}
	if err := ApplyVariant(&cfg, variant); err != nil {
		return cfg, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Decode(data, FormatFor(customPath), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	} else {
		for _, path := range overlayCandidates() {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			next := cfg
			if err := Decode(data, FormatFor(path), &next); err == nil {
				cfg = next
				break
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Base decodes the embedded defaults, falling back to DefaultConfig.
func Base() (SpacewarConfig, error) {
	cfg := DefaultConfig()
	var embedded SpacewarConfig
	if err := yaml.Unmarshal(defaultSpacewarYAML, &embedded); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// Decode overlays data onto cfg. Fields absent from data keep their values.
func Decode(data []byte, format Format, cfg *SpacewarConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg SpacewarConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return data, nil
	}
}

func overlayCandidates() []string {
	var out []string
	for _, name := range []string{"spacewar.yaml", "spacewar.toml"} {
		if p := userConfigPath(name); p != "" {
			out = append(out, p)
		}
	}
	return append(out, filepath.Join("configs", "spacewar.yaml"), filepath.Join("configs", "spacewar.toml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacewar", "configs", filename)
}
