package palette

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Preset is a named palette shipped with glasstheme or found on disk.
type Preset struct {
	Name        string
	Description string
	Source      string // file path or "builtin"
	Document    *Document
}

// Input classifies the preset's document with the given variant.
func (p *Preset) Input(variant Variant) (*Input, error) {
	input, err := p.Document.Input(variant)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	input.Source = p.Source
	return input, nil
}

// Kind reports which converter the preset selects on its own.
func (p *Preset) Kind() Kind {
	input, err := p.Document.Input(VariantAuto)
	if err != nil {
		return ""
	}
	return input.Kind
}

// LoadBuiltinPresets returns the presets bundled with glasstheme.
func LoadBuiltinPresets() ([]*Preset, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin presets: %w", err)
	}

	presets := make([]*Preset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin preset %s: %w", entry.Name(), err)
		}
		preset, err := parsePreset(data, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse builtin preset %s: %w", entry.Name(), err)
		}
		preset.Source = "builtin"
		presets = append(presets, preset)
	}

	sortPresets(presets)
	return presets, nil
}

// LoadPreset reads a single preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	preset, err := parsePreset(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	preset.Source = path
	return preset, nil
}

// LoadPresetsFromDir loads every .yaml, .yml and .json preset in dir.
// A missing directory yields no presets.
func LoadPresetsFromDir(dir string) ([]*Preset, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Preset{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Preset{}, nil
		}
		return nil, fmt.Errorf("read presets dir %s: %w", dir, err)
	}

	presets := make([]*Preset, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		preset, err := LoadPreset(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}

	sortPresets(presets)
	return presets, nil
}

// PresetSearchPaths returns preset directories in precedence order.
func PresetSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".glasstheme", "palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "glasstheme", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "glasstheme", "palettes"))
	return paths
}

// LoadPresetsFromSearchPaths loads presets with first-hit precedence, falling
// back to the builtin set.
func LoadPresetsFromSearchPaths(projectDir string) ([]*Preset, error) {
	seen := make(map[string]*Preset)
	order := make([]string, 0)

	add := func(presets []*Preset) {
		for _, preset := range presets {
			if _, exists := seen[preset.Name]; exists {
				continue
			}
			seen[preset.Name] = preset
			order = append(order, preset.Name)
		}
	}

	for _, path := range PresetSearchPaths(projectDir) {
		presets, err := LoadPresetsFromDir(path)
		if err != nil {
			return nil, err
		}
		add(presets)
	}

	builtins, err := LoadBuiltinPresets()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Preset, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// FindPreset loads a preset by name (case-insensitive).
func FindPreset(projectDir, name string) (*Preset, error) {
	presets, err := LoadPresetsFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, preset := range presets {
		if strings.EqualFold(preset.Name, strings.TrimSpace(name)) {
			return preset, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
}

// parsePreset decodes YAML (a superset of JSON) and falls back to the file
// name when the document is unnamed.
func parsePreset(data []byte, filename string) (*Preset, error) {
	doc, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	if _, err := doc.Input(VariantAuto); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = strings.TrimSuffix(filename, filepath.Ext(filename))
		doc.Name = name
	}
	return &Preset{
		Name:        name,
		Description: strings.TrimSpace(doc.Description),
		Document:    doc,
	}, nil
}

func sortPresets(presets []*Preset) {
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
}
