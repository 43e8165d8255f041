package ramp

import (
	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/opencode-ai/glasstheme/internal/tokens"
)

// Status colors do not follow the anchor.
var (
	Destructive = color.OKLCH{L: 0.55, C: 0.22, H: 27}
	Success     = color.OKLCH{L: 0.60, C: 0.17, H: 145}
	Warning     = color.OKLCH{L: 0.75, C: 0.15, H: 85}
)

type mapping struct {
	key  string
	tone int
}

var semanticMappings = []mapping{
	{"--background", 7},
	{"--foreground", 1},
	{"--primary", 4},
	{"--primary-foreground", 1},
	{"--secondary", 6},
	{"--secondary-foreground", 2},
	{"--accent", 5},
	{"--accent-foreground", 1},
	{"--muted", 6},
	{"--muted-foreground", 3},
	{"--border", 6},
	{"--ring", 4},
	{"--card", 7},
	{"--card-foreground", 1},
}

type effect struct {
	key   string
	tone  int
	alpha float64
}

var glassColors = []effect{
	{"--glass-bg", 7, 0.4},
	{"--glass-bg-light", 7, 0.2},
	{"--glass-bg-solid", 7, 0.6},
	{"--glass-border", 3, 0.15},
	{"--glass-border-hover", 3, 0.25},
}

var glassBlur = []tokens.Entry{
	{Key: "--glass-blur", Value: tokens.Raw("16px")},
	{Key: "--glass-blur-light", Value: tokens.Raw("12px")},
	{Key: "--glass-blur-heavy", Value: tokens.Raw("20px")},
}

var glows = []effect{
	{"--glow-primary", 4, 0.3},
	{"--glow-secondary", 5, 0.3},
}

var textMappings = []mapping{
	{"--text-primary", 1},
	{"--text-secondary", 2},
	{"--text-muted", 3},
}

// Build converts an anchor into the full token set. Master tones are stored
// as oklch literals; everything derived from them is stored as a reference so
// the set stays consistent if a tone is replaced.
func Build(name string, anchor color.OKLCH) *tokens.Set {
	set := tokens.NewSet(name)

	for _, tone := range Tones(anchor) {
		set.Put(ToneKey(tone.Index), tokens.OKLCH(tone.Color))
	}

	for _, m := range semanticMappings {
		set.Put(m.key, tokens.Ref(ToneKey(m.tone)))
	}

	set.Put("--destructive", tokens.OKLCH(Destructive))
	set.Put("--success", tokens.OKLCH(Success))
	set.Put("--warning", tokens.OKLCH(Warning))

	for _, e := range glassColors {
		set.Put(e.key, tokens.RefAlpha(ToneKey(e.tone), e.alpha))
	}
	for _, entry := range glassBlur {
		set.Put(entry.Key, entry.Value)
	}

	for _, e := range glows {
		set.Put(e.key, tokens.RefAlpha(ToneKey(e.tone), e.alpha))
	}

	for _, m := range textMappings {
		set.Put(m.key, tokens.Ref(ToneKey(m.tone)))
	}
	set.Put("--text-disabled", tokens.RefAlpha(ToneKey(3), 0.5))

	return set
}
