// Package tokens models named design tokens and the references between them.
package tokens

import "github.com/opencode-ai/glasstheme/internal/color"

// Kind identifies how a token value is stored.
type Kind int

const (
	// KindRaw is a literal that is not a colour, e.g. a blur radius.
	KindRaw Kind = iota
	// KindOKLCH is a resolved perceptual colour.
	KindOKLCH
	// KindLegacy is a resolved sRGB colour written as hex or rgba().
	KindLegacy
	// KindRef points at another token by name.
	KindRef
)

// Value is a single token value. Reference values are resolved lazily,
// optionally overriding the alpha of the colour they point at.
type Value struct {
	Kind     Kind
	Raw      string
	OKLCH    color.OKLCH
	RGBA     color.RGBA
	Ref      string
	Alpha    float64
	HasAlpha bool
}

// Raw returns a literal, non-colour value.
func Raw(text string) Value {
	return Value{Kind: KindRaw, Raw: text}
}

// OKLCH returns an opaque perceptual colour value.
func OKLCH(c color.OKLCH) Value {
	return Value{Kind: KindOKLCH, OKLCH: c}
}

// OKLCHAlpha returns a perceptual colour value with an explicit alpha.
func OKLCHAlpha(c color.OKLCH, alpha float64) Value {
	return Value{Kind: KindOKLCH, OKLCH: c, Alpha: alpha, HasAlpha: true}
}

// Hex returns an sRGB colour written verbatim as "#rrggbb".
func Hex(c color.RGBA) Value {
	return Value{Kind: KindLegacy, RGBA: c}
}

// Blend returns an sRGB colour written as rgba() with the given opacity.
func Blend(c color.RGBA, opacity float64) Value {
	return Value{Kind: KindLegacy, RGBA: c, Alpha: opacity, HasAlpha: true}
}

// Ref returns a reference to another token.
func Ref(name string) Value {
	return Value{Kind: KindRef, Ref: name}
}

// RefAlpha returns a reference that keeps the referenced colour and
// replaces its alpha.
func RefAlpha(name string, alpha float64) Value {
	return Value{Kind: KindRef, Ref: name, Alpha: alpha, HasAlpha: true}
}

// IsColor reports whether the value holds a resolved colour.
func (v Value) IsColor() bool {
	return v.Kind == KindOKLCH || v.Kind == KindLegacy
}

// String renders the value as it appears in a stylesheet.
func (v Value) String() string {
	switch v.Kind {
	case KindOKLCH:
		if v.HasAlpha {
			return color.FormatAlpha(v.OKLCH, v.Alpha)
		}
		return color.Format(v.OKLCH)
	case KindLegacy:
		if v.HasAlpha {
			return color.FormatRGBA(v.RGBA, v.Alpha)
		}
		return v.RGBA.Hex()
	case KindRef:
		if v.HasAlpha {
			return "oklch(from var(" + v.Ref + ") l c h / " + color.FormatNumber(v.Alpha) + ")"
		}
		return "var(" + v.Ref + ")"
	default:
		return v.Raw
	}
}

// withAlpha returns v with its alpha replaced.
func (v Value) withAlpha(alpha float64) Value {
	v.Alpha = alpha
	v.HasAlpha = true
	return v
}
