package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is an sRGB colour with 8-bit channels and an opacity in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Black is returned for hex input that cannot be decoded.
var Black = RGBA{A: 1}

// ParseHex decodes a "#rrggbb" (or "rrggbb") colour with an alpha of 1.
// Malformed input decodes to Black; callers that care validate upstream.
func ParseHex(s string) RGBA {
	rgba, ok := parseHex(s)
	if !ok {
		return Black
	}
	return rgba
}

// ValidHex reports whether s is a 6-digit hex colour.
func ValidHex(s string) bool {
	_, ok := parseHex(s)
	return ok
}

func parseHex(s string) (RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGBA{}, false
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 1,
	}, true
}

// Hex renders the colour channels as "#rrggbb".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FormatRGBA renders the channels of c with the given opacity as
// `rgba(r, g, b, a)`. The colour's own alpha is ignored.
func FormatRGBA(c RGBA, opacity float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(opacity))
}
