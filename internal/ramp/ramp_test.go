package ramp

import (
	"math"
	"testing"

	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTonesScenario(t *testing.T) {
	anchor := color.OKLCH{L: 0.60, C: 0.15, H: 280}
	tones := Tones(anchor)

	anchorTone := tones[AnchorStop-1]
	assert.Equal(t, AnchorStop, anchorTone.Index)
	assert.Equal(t, 0.15, anchorTone.Color.C, "anchor stop keeps the anchor chroma verbatim")

	lightest := tones[0]
	assert.Equal(t, 1, lightest.Index)
	assert.InDelta(t, 0.15*0.3875, lightest.Color.C, 1e-9)
	assert.Equal(t, "oklch(0.95 0.058 280)", color.Format(lightest.Color))

	for _, tone := range tones {
		assert.Equal(t, 280.0, tone.Color.H)
		assert.Equal(t, tone.Lightness, tone.Color.L)
	}
}

func TestTonesOffAnchorUseTaper(t *testing.T) {
	anchor := color.OKLCH{L: 0.62, C: 0.2, H: 40}
	tones := Tones(anchor)

	for _, tone := range tones {
		want := color.ChromaAtLightness(tone.Lightness, anchor.L, anchor.C)
		assert.Equal(t, want, tone.Color.C, "stop %d", tone.Index)
	}
}

func TestTonesChromaFloorAndMonotone(t *testing.T) {
	anchors := []color.OKLCH{
		{L: 0.2, C: 0.1, H: 10},
		{L: 0.45, C: 0.3, H: 120},
		{L: 0.6, C: 0.15, H: 280},
		{L: 0.77, C: 0.05, H: 200},
		{L: 0.95, C: 0.2, H: 330},
	}

	for _, anchor := range anchors {
		tones := Tones(anchor)
		for _, a := range tones {
			require.GreaterOrEqual(t, a.Color.C, 0.3*anchor.C-1e-12)
			for _, b := range tones {
				da := math.Abs(a.Lightness - anchor.L)
				db := math.Abs(b.Lightness - anchor.L)
				if da < db {
					require.GreaterOrEqual(t, a.Color.C, b.Color.C-1e-12,
						"anchor %+v: stop %d should not be less saturated than stop %d", anchor, a.Index, b.Index)
				}
			}
		}
	}
}

func TestBuildOrderAndValues(t *testing.T) {
	set := Build("brand", color.OKLCH{L: 0.60, C: 0.15, H: 280})
	assert.Equal(t, "brand", set.Name())

	keys := set.Keys()
	require.Len(t, keys, 7+14+3+8+2+4)
	for i := 0; i < 7; i++ {
		assert.Equal(t, ToneKey(i+1), keys[i])
	}
	assert.Equal(t, "--background", keys[7])
	assert.Equal(t, "--text-disabled", keys[len(keys)-1])

	expect := map[string]string{
		"--color-4":            "oklch(0.60 0.150 280)",
		"--background":         "var(--color-7)",
		"--foreground":         "var(--color-1)",
		"--primary":            "var(--color-4)",
		"--muted-foreground":   "var(--color-3)",
		"--destructive":        "oklch(0.55 0.220 27)",
		"--success":            "oklch(0.60 0.170 145)",
		"--warning":            "oklch(0.75 0.150 85)",
		"--glass-bg":           "oklch(from var(--color-7) l c h / 0.4)",
		"--glass-bg-light":     "oklch(from var(--color-7) l c h / 0.2)",
		"--glass-bg-solid":     "oklch(from var(--color-7) l c h / 0.6)",
		"--glass-border":       "oklch(from var(--color-3) l c h / 0.15)",
		"--glass-border-hover": "oklch(from var(--color-3) l c h / 0.25)",
		"--glass-blur":         "16px",
		"--glass-blur-light":   "12px",
		"--glass-blur-heavy":   "20px",
		"--glow-primary":       "oklch(from var(--color-4) l c h / 0.3)",
		"--glow-secondary":     "oklch(from var(--color-5) l c h / 0.3)",
		"--text-primary":       "var(--color-1)",
		"--text-disabled":      "oklch(from var(--color-3) l c h / 0.5)",
	}
	for key, want := range expect {
		value, ok := set.Get(key)
		require.True(t, ok, "missing %s", key)
		assert.Equal(t, want, value.String(), key)
	}
}

func TestBuildResolves(t *testing.T) {
	set := Build("brand", color.OKLCH{L: 0.60, C: 0.15, H: 280})

	resolved, err := set.Resolved()
	require.NoError(t, err)
	assert.Equal(t, set.Keys(), resolved.Keys())

	glass, _ := resolved.Get("--glass-bg")
	tone7, _ := resolved.Get("--color-7")
	assert.Equal(t, color.FormatAlpha(tone7.OKLCH, 0.4), glass.String())

	background, _ := resolved.Get("--background")
	assert.Equal(t, tone7.String(), background.String())
}
