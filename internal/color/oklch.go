// Package color provides the colour math used to derive theme tokens.
package color

import (
	"math"
	"math/big"
	"strconv"
)

// OKLCH is a perceptual colour triple.
// L is lightness [0, 1], C is chroma [0, ~0.4], H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// String renders the colour as an oklch() literal.
func (c OKLCH) String() string {
	return Format(c)
}

// Format renders c as `oklch(L C H)` with lightness to 2 places, chroma to 3
// places and hue rounded to a whole degree.
func Format(c OKLCH) string {
	return "oklch(" + components(c) + ")"
}

// FormatAlpha renders c as `oklch(L C H / A)`. The alpha is written as given.
func FormatAlpha(c OKLCH, alpha float64) string {
	return "oklch(" + components(c) + " / " + FormatNumber(alpha) + ")"
}

// FormatNumber writes v in its shortest round-trip decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func components(c OKLCH) string {
	return toFixed(c.L, 2) + " " + toFixed(c.C, 3) + " " + toFixed(c.H, 0)
}

// toFixed formats v with a fixed number of decimals. strconv rounds exact
// halves to even; stylesheets produced by other tooling round them away from
// zero, so exact halves are bumped to keep output byte-compatible.
func toFixed(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}

	const prec = 200
	scaled := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, new(big.Float).SetPrec(prec).SetFloat64(math.Pow10(digits)))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(prec).Sub(scaled, new(big.Float).SetPrec(prec).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return s
	}

	whole.Add(whole, big.NewInt(1))
	out := whole.String()
	if digits > 0 {
		for len(out) <= digits {
			out = "0" + out
		}
		out = out[:len(out)-digits] + "." + out[len(out)-digits:]
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}
