package discrete

import (
	"math"

	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/opencode-ai/glasstheme/internal/palette"
)

const (
	seedSteps        = 12
	seedMinLightness = 0.05
	seedMaxLightness = 1.0
	seedTaper        = 0.5
)

// SeedEntries synthesizes a palette from a single color. Entries span
// lightness 0.05 to 1.0 in equal steps with chroma tapering by up to half
// away from the middle entry, which is the seed itself. The triples come from
// color.Approximate and are only good enough to drive selection.
func SeedEntries(seed color.RGBA) []palette.Entry {
	base := color.Approximate(seed)
	mid := seedSteps / 2
	step := (seedMaxLightness - seedMinLightness) / float64(seedSteps-1)

	entries := make([]palette.Entry, 0, seedSteps)
	for i := 0; i < seedSteps; i++ {
		if i == mid {
			entries = append(entries, palette.Entry{Index: i, Hex: seed.Hex(), OKLCH: base})
			continue
		}

		l := seedMinLightness + float64(i)*step
		taper := 1 - math.Abs(float64(i-mid))/float64(mid)*seedTaper
		entries = append(entries, palette.Entry{
			Index: i,
			Hex:   color.WithLightness(seed, l).Hex(),
			OKLCH: color.OKLCH{L: l, C: base.C * taper, H: base.H},
		})
	}
	return entries
}
