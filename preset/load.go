package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a preset file encoding.
type Format string

// Supported preset file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// File is the top-level layout of a preset file.
type File struct {
	Presets map[string]Preset `yaml:"presets" toml:"presets" json:"presets"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported extension %q", ErrFormat, filepath.Ext(path))
	}
}

// LoadFile reads and validates the presets in path.
func LoadFile(path string) (map[string]Preset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	presets, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// Parse decodes and validates presets from data.
// Each entry starts from Default, so omitted fields keep their defaults.
func Parse(data []byte, format Format) (map[string]Preset, error) {
	var (
		presets map[string]Preset
		err     error
	)
	switch format {
	case FormatYAML:
		presets, err = parseYAML(data)
	case FormatTOML:
		presets, err = parseTOML(data)
	case FormatJSON:
		presets, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrFormat, format)
	}
	if err != nil {
		return nil, err
	}

	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return presets, nil
}

func parseYAML(data []byte) (map[string]Preset, error) {
	var doc struct {
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrFormat, err)
	}

	presets := make(map[string]Preset, len(doc.Presets))
	for name, node := range doc.Presets {
		p := Default()
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: preset %s: %w", ErrFormat, name, err)
		}
		p.Name = name
		presets[name] = p
	}
	return presets, nil
}

func parseTOML(data []byte) (map[string]Preset, error) {
	var doc struct {
		Presets map[string]toml.Primitive `toml:"presets"`
	}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: parse toml: %w", ErrFormat, err)
	}

	presets := make(map[string]Preset, len(doc.Presets))
	for name, prim := range doc.Presets {
		p := Default()
		if err := md.PrimitiveDecode(prim, &p); err != nil {
			return nil, fmt.Errorf("%w: preset %s: %w", ErrFormat, name, err)
		}
		p.Name = name
		presets[name] = p
	}
	return presets, nil
}

func parseJSON(data []byte) (map[string]Preset, error) {
	var doc struct {
		Presets map[string]json.RawMessage `json:"presets"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse json: %w", ErrFormat, err)
	}

	presets := make(map[string]Preset, len(doc.Presets))
	for name, raw := range doc.Presets {
		p := Default()
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: preset %s: %w", ErrFormat, name, err)
		}
		p.Name = name
		presets[name] = p
	}
	return presets, nil
}
