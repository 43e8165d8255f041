// Package convert turns a palette input into a theme token set.
package convert

import (
	"fmt"

	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/opencode-ai/glasstheme/internal/discrete"
	"github.com/opencode-ai/glasstheme/internal/palette"
	"github.com/opencode-ai/glasstheme/internal/ramp"
	"github.com/opencode-ai/glasstheme/internal/tokens"
	"github.com/rs/zerolog"
)

// Theme is the result of a conversion. Ramp themes carry a single token set
// in Tokens; discrete and seed themes carry Dark and Light.
type Theme struct {
	Name      string
	Kind      palette.Kind
	Tokens    *tokens.Set
	Dark      *tokens.Set
	Light     *tokens.Set
	Selection *discrete.Selection
}

// Ramp reports whether the theme came from the single anchor converter.
func (t *Theme) Ramp() bool {
	return t.Kind == palette.KindAnchorOnly
}

// Converter converts palettes. It holds no state between calls.
type Converter struct {
	logger  zerolog.Logger
	resolve bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithResolve stores concrete values instead of references in ramp themes.
func WithResolve(resolve bool) Option {
	return func(c *Converter) {
		c.resolve = resolve
	}
}

// New creates a Converter.
func New(logger zerolog.Logger, opts ...Option) *Converter {
	c := &Converter{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts with a silent logger and default options.
func Convert(input *palette.Input) (*Theme, error) {
	return New(zerolog.Nop()).Convert(input)
}

// Convert dispatches on the input kind.
func (c *Converter) Convert(input *palette.Input) (*Theme, error) {
	if input == nil {
		return nil, fmt.Errorf("palette input is required")
	}

	c.logger.Debug().
		Str("palette", input.Name).
		Str("kind", string(input.Kind)).
		Msg("converting palette")

	switch input.Kind {
	case palette.KindAnchorOnly:
		return c.convertRamp(input)
	case palette.KindDiscrete:
		return c.convertDiscrete(input, input.Entries, color.ParseHex(input.AnchorHex))
	case palette.KindSimpleSeed:
		seed := color.ParseHex(input.Primary)
		return c.convertDiscrete(input, discrete.SeedEntries(seed), seed)
	default:
		return nil, fmt.Errorf("unsupported palette kind %q", input.Kind)
	}
}

func (c *Converter) convertRamp(input *palette.Input) (*Theme, error) {
	set := ramp.Build(input.Name, input.Anchor)
	if c.resolve {
		resolved, err := set.Resolved()
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", input.Name, err)
		}
		set = resolved
	}

	c.logger.Debug().
		Str("palette", input.Name).
		Float64("anchor_l", input.Anchor.L).
		Float64("anchor_c", input.Anchor.C).
		Float64("anchor_h", input.Anchor.H).
		Int("tokens", set.Len()).
		Msg("built ramp theme")

	return &Theme{
		Name:   input.Name,
		Kind:   input.Kind,
		Tokens: set,
	}, nil
}

func (c *Converter) convertDiscrete(input *palette.Input, entries []palette.Entry, anchor color.RGBA) (*Theme, error) {
	name := input.Name
	sel, err := discrete.Select(entries)
	if err != nil {
		return nil, fmt.Errorf("select colors for %s: %w", name, err)
	}
	if sel.PrimaryFallback {
		c.logger.Warn().
			Str("palette", name).
			Str("primary", sel.Primary.Hex).
			Msg("no palette color between lightness 0.4 and 0.7; using the most saturated color")
	}
	if input.Secondary != "" {
		rgba := color.ParseHex(input.Secondary)
		sel.Secondary = palette.Entry{Index: -1, Hex: rgba.Hex(), OKLCH: color.Approximate(rgba)}
	}

	c.logger.Debug().
		Str("palette", name).
		Str("darkest", sel.Darkest.Hex).
		Str("lightest", sel.Lightest.Hex).
		Str("mid", sel.Mid.Hex).
		Str("primary", sel.Primary.Hex).
		Str("secondary", sel.Secondary.Hex).
		Msg("selected representative colors")

	themes := discrete.Build(name, anchor, sel)
	return &Theme{
		Name:      name,
		Kind:      input.Kind,
		Dark:      themes.Dark,
		Light:     themes.Light,
		Selection: &themes.Selection,
	}, nil
}
