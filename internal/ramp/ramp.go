// Package ramp derives a seven stop tonal ramp and the Ein UI token set from
// a single OKLCH anchor.
package ramp

import (
	"fmt"

	"github.com/opencode-ai/glasstheme/internal/color"
)

// Stop is one of the fixed lightness positions of the ramp.
type Stop struct {
	Index     int
	Lightness float64
	Label     string
}

// AnchorStop is the index of the stop that stands in for the anchor.
const AnchorStop = 4

// Stops are the seven master lightness stops, lightest first.
var Stops = [7]Stop{
	{Index: 1, Lightness: 0.95, Label: "Lightest"},
	{Index: 2, Lightness: 0.85, Label: "Light"},
	{Index: 3, Lightness: 0.73, Label: "Medium light"},
	{Index: 4, Lightness: 0.60, Label: "Anchor / Primary"},
	{Index: 5, Lightness: 0.48, Label: "Medium dark"},
	{Index: 6, Lightness: 0.35, Label: "Dark"},
	{Index: 7, Lightness: 0.20, Label: "Darkest"},
}

// Tone is a master color at one stop.
type Tone struct {
	Stop
	Color color.OKLCH
}

// Tones computes the master colors for an anchor. Hue is constant across the
// ramp; chroma tapers away from the anchor lightness. A stop that sits exactly
// on the anchor lightness keeps the anchor chroma untouched.
func Tones(anchor color.OKLCH) [7]Tone {
	var tones [7]Tone
	for i, stop := range Stops {
		chroma := anchor.C
		if stop.Lightness != anchor.L {
			chroma = color.ChromaAtLightness(stop.Lightness, anchor.L, anchor.C)
		}
		tones[i] = Tone{
			Stop:  stop,
			Color: color.OKLCH{L: stop.Lightness, C: chroma, H: anchor.H},
		}
	}
	return tones
}

// ToneKey returns the token name of a master tone.
func ToneKey(index int) string {
	return fmt.Sprintf("--color-%d", index)
}
