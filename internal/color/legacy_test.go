package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
	}{
		{"with hash", "#7c3aed", RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 1}},
		{"without hash", "ffffff", RGBA{R: 255, G: 255, B: 255, A: 1}},
		{"gray", "#808080", RGBA{R: 128, G: 128, B: 128, A: 1}},
		{"upper case", "#FFAA00", RGBA{R: 255, G: 170, B: 0, A: 1}},
		{"short form", "#fff", Black},
		{"non hex", "#zzzzzz", Black},
		{"empty", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHex(tt.input))
		})
	}
}

func TestFormatRGBA(t *testing.T) {
	c := ParseHex("#0a0b0c")
	assert.Equal(t, "rgba(10, 11, 12, 0.3)", FormatRGBA(c, 0.3))
	assert.Equal(t, "rgba(10, 11, 12, 0.03)", FormatRGBA(c, 0.03))
	assert.Equal(t, "#0a0b0c", c.Hex())
}

func TestApproximate(t *testing.T) {
	red := Approximate(ParseHex("#ff0000"))
	assert.InDelta(t, 0.5, red.L, 1e-9)
	assert.InDelta(t, 1.0, red.C, 1e-9)
	assert.InDelta(t, 0.0, red.H, 1e-9)

	green := Approximate(ParseHex("#00ff00"))
	assert.InDelta(t, 120.0, green.H, 1e-9)

	blue := Approximate(ParseHex("#0000ff"))
	assert.InDelta(t, 240.0, blue.H, 1e-9)

	gray := Approximate(ParseHex("#808080"))
	assert.InDelta(t, 0.0, gray.C, 1e-9)
	assert.InDelta(t, 0.0, gray.H, 1e-9)
}

func TestOKLCHColorful(t *testing.T) {
	white := FromColorful(OKLCH{L: 1, C: 0, H: 0}.Colorful())
	assert.Equal(t, "#ffffff", white.Hex())

	black := FromColorful(OKLCH{L: 0, C: 0, H: 0}.Colorful())
	assert.Equal(t, "#000000", black.Hex())
}
