package color

import "math"

// Lightness bounds used by the chroma taper.
const (
	DefaultMinLightness = 0.20
	DefaultMaxLightness = 0.95
)

const (
	taperStrength = 0.7
	chromaFloor   = 0.3
)

// ChromaAtLightness returns the chroma for a ramp stop at targetL, tapering
// away from the anchor lightness between the default bounds.
func ChromaAtLightness(targetL, anchorL, anchorC float64) float64 {
	return ChromaAtLightnessIn(targetL, anchorL, anchorC, DefaultMinLightness, DefaultMaxLightness)
}

// ChromaAtLightnessIn is ChromaAtLightness with explicit lightness bounds.
//
// Chroma peaks at the anchor and falls linearly with distance, never below
// 30% of the anchor chroma. When both bounds coincide with the anchor there is
// no distance to taper over and the anchor chroma is returned.
func ChromaAtLightnessIn(targetL, anchorL, anchorC, minL, maxL float64) float64 {
	distance := math.Abs(targetL - anchorL)
	maxDistance := math.Max(math.Abs(minL-anchorL), math.Abs(maxL-anchorL))
	if maxDistance == 0 {
		return anchorC
	}
	factor := 1 - (distance/maxDistance)*taperStrength
	return anchorC * math.Max(factor, chromaFloor)
}
