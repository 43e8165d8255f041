package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/glasstheme/internal/color"
	"gopkg.in/yaml.v3"
)

// Load reads a palette file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func Load(path string, variant Variant) (*Input, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}

	input, err := doc.Input(variant)
	if err != nil {
		return nil, err
	}
	input.Source = path
	return input, nil
}

// Parse decodes a JSON palette.
func Parse(data []byte, variant Variant) (*Input, error) {
	doc, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return doc.Input(variant)
}

func decodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Input validates the document and classifies it. With VariantAuto a
// "primary" color (and no anchor) selects the seed path, an anchor with
// colors selects the discrete path, and a bare anchor selects the ramp.
func (d *Document) Input(variant Variant) (*Input, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = DefaultName
	}

	seed := d.Anchor == nil && strings.TrimSpace(d.Primary) != ""
	if d.Anchor == nil && !seed {
		if d.Colors != nil {
			return nil, &FormatError{Field: "anchor", Message: `must include "anchor" alongside "colors"`}
		}
		return nil, &FormatError{Field: "anchor", Message: `must include "anchor" with oklch values, or "colors"/"primary"`}
	}

	switch {
	case seed && variant == VariantRamp:
		return nil, &FormatError{Field: "anchor", Message: `ramp variant requires "anchor" with oklch values`}
	case seed:
		return d.seedInput(name)
	case variant == VariantRamp:
		return d.anchorInput(name)
	case variant == VariantDiscrete:
		return d.discreteInput(name)
	case len(d.Colors) > 0:
		return d.discreteInput(name)
	default:
		return d.anchorInput(name)
	}
}

func (d *Document) anchorInput(name string) (*Input, error) {
	if d.Anchor.OKLCH == nil {
		return nil, &FormatError{Field: "anchor.oklch", Message: `"anchor" must include oklch values`}
	}
	return &Input{
		Kind:      KindAnchorOnly,
		Name:      name,
		Anchor:    *d.Anchor.OKLCH,
		AnchorHex: strings.TrimSpace(d.Anchor.Hex),
	}, nil
}

func (d *Document) discreteInput(name string) (*Input, error) {
	if d.Colors == nil {
		return nil, &FormatError{Field: "colors", Message: `discrete palettes must include "colors"`}
	}
	if len(d.Colors) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyPalette)
	}
	hex := strings.TrimSpace(d.Anchor.Hex)
	if !color.ValidHex(hex) {
		return nil, &FormatError{Field: "anchor.hex", Message: `"anchor" must include a #rrggbb hex color`}
	}

	input := &Input{
		Kind:      KindDiscrete,
		Name:      name,
		AnchorHex: hex,
		Entries:   append([]Entry(nil), d.Colors...),
	}
	if d.Anchor.OKLCH != nil {
		input.Anchor = *d.Anchor.OKLCH
	} else {
		input.Anchor = color.Approximate(color.ParseHex(hex))
	}
	return input, nil
}

func (d *Document) seedInput(name string) (*Input, error) {
	primary := strings.TrimSpace(d.Primary)
	if !color.ValidHex(primary) {
		return nil, &FormatError{Field: "primary", Message: `"primary" must be a #rrggbb hex color`}
	}
	secondary := strings.TrimSpace(d.Secondary)
	if secondary != "" && !color.ValidHex(secondary) {
		return nil, &FormatError{Field: "secondary", Message: `"secondary" must be a #rrggbb hex color`}
	}
	return &Input{
		Kind:      KindSimpleSeed,
		Name:      name,
		Primary:   primary,
		Secondary: secondary,
	}, nil
}
