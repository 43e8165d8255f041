package render

import (
	"strings"
	"testing"

	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/opencode-ai/glasstheme/internal/convert"
	"github.com/opencode-ai/glasstheme/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rampTheme(t *testing.T) *convert.Theme {
	t.Helper()
	theme, err := convert.Convert(&palette.Input{
		Kind:   palette.KindAnchorOnly,
		Name:   "brand",
		Anchor: color.OKLCH{L: 0.6, C: 0.15, H: 280},
	})
	require.NoError(t, err)
	return theme
}

func discreteTheme(t *testing.T) *convert.Theme {
	t.Helper()
	theme, err := convert.Convert(&palette.Input{
		Kind:      palette.KindDiscrete,
		Name:      "gray",
		AnchorHex: "#808080",
		Entries: []palette.Entry{
			{Index: 0, Hex: "#000000", OKLCH: color.OKLCH{L: 0.1}},
			{Index: 1, Hex: "#808080", OKLCH: color.OKLCH{L: 0.5}},
			{Index: 2, Hex: "#ffffff", OKLCH: color.OKLCH{L: 0.9}},
		},
	})
	require.NoError(t, err)
	return theme
}

func TestRampCSSLayout(t *testing.T) {
	css := CSS(rampTheme(t))
	lines := strings.Split(css, "\n")

	assert.Equal(t, "/* Ein UI Theme: brand */", lines[0])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, ":root {", lines[3])
	assert.Equal(t, "  /* Master Palette (OKLCH) */", lines[4])
	assert.Equal(t, "  --color-1: oklch(0.95 0.058 280);", lines[5])
	assert.Equal(t, "}", lines[len(lines)-1])

	var headers []string
	for _, line := range lines[3:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "/*") {
			headers = append(headers, trimmed)
		}
	}
	assert.Equal(t, []string{
		"/* Master Palette (OKLCH) */",
		"/* Semantic Mappings */",
		"/* Status Colors */",
		"/* Glass Effects */",
		"/* Glow Effects */",
		"/* Text Colors */",
	}, headers)

	assert.Contains(t, css, "  --glass-bg: oklch(from var(--color-7) l c h / 0.4);\n")
	assert.Contains(t, css, "  --glass-blur: 16px;\n")
}

func TestRampCSSRoundTrip(t *testing.T) {
	theme := rampTheme(t)
	blocks, err := ParseBlocks(CSS(theme))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, ":root", blocks[0].Selector)

	entries := theme.Tokens.Entries()
	require.Len(t, blocks[0].Declarations, len(entries))
	for i, entry := range entries {
		assert.Equal(t, entry.Key, blocks[0].Declarations[i].Key)
		assert.Equal(t, entry.Value.String(), blocks[0].Declarations[i].Value)
	}
}

func TestDiscreteCSSBlocks(t *testing.T) {
	theme := discreteTheme(t)
	blocks, err := ParseBlocks(CSS(theme))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, ":root", blocks[0].Selector)
	assert.Equal(t, ".dark", blocks[1].Selector)
	assert.Equal(t, ".light", blocks[2].Selector)
	assert.Equal(t, blocks[0].Declarations, blocks[1].Declarations)

	for i, entry := range theme.Light.Entries() {
		assert.Equal(t, entry.Key, blocks[2].Declarations[i].Key)
		assert.Equal(t, entry.Value.String(), blocks[2].Declarations[i].Value)
	}

	dark, _ := blocks[1].Lookup("--glass-bg")
	light, _ := blocks[2].Lookup("--glass-bg")
	assert.Equal(t, "rgba(0, 0, 0, 0.3)", dark)
	assert.Equal(t, "rgba(0, 0, 0, 0.03)", light)
}

func TestDocumentIsDeterministic(t *testing.T) {
	first, err := Document(rampTheme(t), Options{Tailwind: true})
	require.NoError(t, err)
	second, err := Document(rampTheme(t), Options{Tailwind: true})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	first, err = Document(discreteTheme(t), Options{})
	require.NoError(t, err)
	second, err = Document(discreteTheme(t), Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDocumentTailwind(t *testing.T) {
	theme := rampTheme(t)

	plain, err := Document(theme, Options{})
	require.NoError(t, err)
	assert.Equal(t, CSS(theme)+"\n", plain)

	withTailwind, err := Document(theme, Options{Tailwind: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(withTailwind, plain+"\n/* Tailwind CSS v4 theme extension for brand */"))
	assert.Contains(t, withTailwind, "@theme {\n  --color-glass-bg: var(--glass-bg);\n")
	assert.Contains(t, withTailwind, "  --blur-glass: var(--glass-blur);\n}\n")

	blocks, err := ParseBlocks(withTailwind)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "@theme", blocks[1].Selector)
	assert.Len(t, blocks[1].Declarations, len(TailwindAliases))
}

func TestHeaderEscapesCommentDelimiters(t *testing.T) {
	theme := rampTheme(t)
	theme.Name = "x */ body{color:red} /*\nnext"

	doc, err := Document(theme, Options{Tailwind: true})
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	assert.Equal(t, "/* Ein UI Theme: x * / body{color:red} / * next */", lines[0])
	assert.NotContains(t, doc, "body{color:red} /*")

	blocks, err := ParseBlocks(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, ":root", blocks[0].Selector)
	assert.Equal(t, "@theme", blocks[1].Selector)
}

func TestParseBlocksErrors(t *testing.T) {
	tests := []string{
		"--orphan: 1px;",
		":root {\n  --a: 1px;\n",
		":root {\n  --a 1px;\n}",
		"}",
		":root {\n.dark {\n}\n}",
	}
	for _, input := range tests {
		if _, err := ParseBlocks(input); err == nil {
			t.Errorf("ParseBlocks(%q) expected error", input)
		}
	}
}
