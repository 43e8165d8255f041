// Package render serializes theme token sets as stylesheets.
package render

import (
	"strings"

	"github.com/opencode-ai/glasstheme/internal/convert"
	"github.com/opencode-ai/glasstheme/internal/tokens"
)

// Category groups ramp tokens under a comment header in the output.
type Category struct {
	Prefix string
	Label  string
}

// RampCategories are checked in order; the first prefix a key starts with
// decides its category.
var RampCategories = []Category{
	{Prefix: "--color-", Label: "Master Palette (OKLCH)"},
	{Prefix: "--background", Label: "Semantic Mappings"},
	{Prefix: "--destructive", Label: "Status Colors"},
	{Prefix: "--glass-", Label: "Glass Effects"},
	{Prefix: "--glow-", Label: "Glow Effects"},
	{Prefix: "--text-", Label: "Text Colors"},
}

const indent = "  "

// CSS renders a theme. Ramp themes produce a single grouped :root block;
// discrete themes produce :root and .dark with the dark values followed by
// .light with the light values.
func CSS(theme *convert.Theme) string {
	if theme.Ramp() {
		return RampCSS(theme.Name, theme.Tokens)
	}
	return DiscreteCSS(theme.Name, theme.Dark, theme.Light)
}

// RampCSS renders a single token set grouped by RampCategories.
func RampCSS(name string, set *tokens.Set) string {
	var b strings.Builder
	writeHeader(&b, name, "Generated from OKLCH palette, all values in oklch() format")
	writeBlock(&b, ":root", set, RampCategories)
	return strings.TrimSuffix(b.String(), "\n")
}

// DiscreteCSS renders the dark/light pair. The palette defaults to dark.
func DiscreteCSS(name string, dark, light *tokens.Set) string {
	var b strings.Builder
	writeHeader(&b, name, "Generated from a discrete palette, dark by default")
	writeBlock(&b, ":root", dark, nil)
	b.WriteString("\n")
	writeBlock(&b, ".dark", dark, nil)
	b.WriteString("\n")
	writeBlock(&b, ".light", light, nil)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeHeader(b *strings.Builder, name, note string) {
	b.WriteString("/* Ein UI Theme: " + commentText(name) + " */\n")
	b.WriteString("/* " + note + " */\n")
	b.WriteString("\n")
}

func writeBlock(b *strings.Builder, selector string, set *tokens.Set, categories []Category) {
	b.WriteString(selector + " {\n")

	current := ""
	for _, entry := range set.Entries() {
		for _, cat := range categories {
			if !strings.HasPrefix(entry.Key, cat.Prefix) {
				continue
			}
			if cat.Label != current {
				current = cat.Label
				b.WriteString(indent + "/* " + cat.Label + " */\n")
			}
			break
		}
		b.WriteString(indent + entry.Key + ": " + entry.Value.String() + ";\n")
	}

	b.WriteString("}\n")
}

var commentReplacer = strings.NewReplacer("*/", "* /", "/*", "/ *", "\r\n", " ", "\n", " ", "\r", " ")

// commentText makes s safe to place inside a /* */ comment on one line.
func commentText(s string) string {
	return commentReplacer.Replace(s)
}
