// Package palette parses palette descriptions into conversion inputs.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/glasstheme/internal/color"
)

// DefaultName is used when a palette does not name itself.
const DefaultName = "custom"

var (
	// ErrInvalidFormat matches every *FormatError.
	ErrInvalidFormat = errors.New("invalid palette format")
	// ErrEmptyPalette is returned when a discrete palette has no entries.
	ErrEmptyPalette = errors.New("palette has no colors")
	// ErrPresetNotFound is returned when a named preset does not exist.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrUnknownVariant is returned for an unrecognized variant name.
	ErrUnknownVariant = errors.New("unknown variant")
)

// FormatError describes input that does not match a recognized palette shape.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid palette format: %s", e.Message)
}

// Is lets errors.Is match ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Kind identifies which input shape a palette was built from.
type Kind string

const (
	// KindAnchorOnly derives everything from a single OKLCH anchor.
	KindAnchorOnly Kind = "anchor"
	// KindDiscrete selects representative colors from an explicit list.
	KindDiscrete Kind = "discrete"
	// KindSimpleSeed synthesizes a discrete palette from one hex color.
	KindSimpleSeed Kind = "seed"
)

// Variant forces a converter regardless of what the input shape suggests.
type Variant string

const (
	VariantAuto     Variant = "auto"
	VariantRamp     Variant = "ramp"
	VariantDiscrete Variant = "discrete"
)

// ParseVariant validates a variant name. An empty name means auto.
func ParseVariant(value string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case "", VariantAuto:
		return VariantAuto, nil
	case VariantRamp:
		return VariantRamp, nil
	case VariantDiscrete:
		return VariantDiscrete, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, ramp or discrete)", ErrUnknownVariant, value)
	}
}

// Anchor is the seed color of a palette. Hex is display-only for the ramp
// converter and is the accent color for the discrete converter.
type Anchor struct {
	Hex   string       `json:"hex,omitempty" yaml:"hex,omitempty"`
	OKLCH *color.OKLCH `json:"oklch,omitempty" yaml:"oklch,omitempty"`
}

// Entry is one color of a discrete palette. Hex is the literal used for
// blending; OKLCH only drives selection.
type Entry struct {
	Index int         `json:"index" yaml:"index"`
	Hex   string      `json:"hex" yaml:"hex"`
	OKLCH color.OKLCH `json:"oklch" yaml:"oklch"`
	RGBA  any         `json:"rgba,omitempty" yaml:"rgba,omitempty"`
}

// Color decodes the entry's hex literal.
func (e Entry) Color() color.RGBA {
	return color.ParseHex(e.Hex)
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Settings are the generator settings that travel with exported palettes.
// They are carried through but do not affect conversion.
type Settings struct {
	ColorCount     int    `json:"colorCount" yaml:"colorCount"`
	LightnessRange Range  `json:"lightnessRange" yaml:"lightnessRange"`
	ChromaRange    *Range `json:"chromaRange,omitempty" yaml:"chromaRange,omitempty"`
	CurveType      string `json:"curveType,omitempty" yaml:"curveType,omitempty"`
	Direction      string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Document is a palette exactly as decoded from JSON or YAML.
type Document struct {
	Name        string    `json:"name,omitempty" yaml:"name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Anchor      *Anchor   `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Colors      []Entry   `json:"colors,omitempty" yaml:"colors,omitempty"`
	Settings    *Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
	Primary     string    `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary   string    `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Input is a validated palette ready for conversion. Exactly the fields
// relevant to Kind are populated.
type Input struct {
	Kind   Kind
	Name   string
	Source string

	// AnchorOnly and Discrete.
	Anchor    color.OKLCH
	AnchorHex string

	// Discrete.
	Entries []Entry

	// SimpleSeed.
	Primary   string
	Secondary string
}
