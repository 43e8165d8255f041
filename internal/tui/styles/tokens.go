// Package styles turns converted token sets into terminal swatches.
package styles

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/opencode-ai/glasstheme/internal/tokens"
)

// Swatch is one token rendered as an opaque terminal colour.
type Swatch struct {
	Key   string
	Value string
	// Fill is the token composited over the backdrop, empty for non-colours.
	Fill string
	// Ink is black or white, whichever reads on Fill.
	Ink   string
	Alpha float64
}

// IsColor reports whether the swatch has a fill.
func (s Swatch) IsColor() bool {
	return s.Fill != ""
}

// Swatches resolves every token in set and flattens translucent colours over
// the backdrop. Values are reported as written in the stylesheet.
func Swatches(set *tokens.Set, backdrop Backdrop) ([]Swatch, error) {
	bg, err := colorful.Hex(backdrop.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid backdrop %q: %w", backdrop.Color, err)
	}

	swatches := make([]Swatch, 0, set.Len())
	for _, entry := range set.Entries() {
		swatch := Swatch{Key: entry.Key, Value: entry.Value.String(), Alpha: 1}

		resolved, err := set.Resolve(entry.Key)
		if err != nil {
			return nil, err
		}
		fg, ok := colorOf(resolved)
		if ok {
			if resolved.HasAlpha {
				swatch.Alpha = resolved.Alpha
			}
			fill := bg.BlendRgb(fg, swatch.Alpha).Clamped()
			swatch.Fill = fill.Hex()
			swatch.Ink = inkFor(fill)
		}
		swatches = append(swatches, swatch)
	}
	return swatches, nil
}

func colorOf(v tokens.Value) (colorful.Color, bool) {
	switch v.Kind {
	case tokens.KindOKLCH:
		return v.OKLCH.Colorful(), true
	case tokens.KindLegacy:
		return v.RGBA.Colorful(), true
	default:
		return colorful.Color{}, false
	}
}

func inkFor(fill colorful.Color) string {
	l, _, _ := fill.OkLab()
	if l > 0.65 {
		return "#000000"
	}
	return "#ffffff"
}
