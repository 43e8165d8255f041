// Package discrete builds dark and light token sets by picking representative
// colors out of an explicit palette.
package discrete

import (
	"math"

	"github.com/opencode-ai/glasstheme/internal/palette"
)

// Lightness targets and the mid-tone band used for selection.
const (
	MidLightness       = 0.5
	SecondaryLightness = 0.65
	PrimaryBandMin     = 0.4
	PrimaryBandMax     = 0.7
)

// Selection holds the representative entries of a palette.
type Selection struct {
	Darkest   palette.Entry
	Lightest  palette.Entry
	Mid       palette.Entry
	Primary   palette.Entry
	Secondary palette.Entry

	// PrimaryFallback is set when no entry lies inside the mid-tone band and
	// Primary was taken from the whole palette instead.
	PrimaryFallback bool
}

// Select picks the representative entries. Picks scan entries in their given
// order and only replace the current candidate on a strict improvement, so
// ties go to the first entry encountered. Lightest is the exception: it
// matches the last entry of an ascending stable sort, so ties go to the last.
func Select(entries []palette.Entry) (Selection, error) {
	if len(entries) == 0 {
		return Selection{}, palette.ErrEmptyPalette
	}

	sel := Selection{
		Darkest:   extreme(entries, func(a, b palette.Entry) bool { return a.OKLCH.L < b.OKLCH.L }),
		Lightest:  extreme(entries, func(a, b palette.Entry) bool { return a.OKLCH.L >= b.OKLCH.L }),
		Mid:       closest(entries, MidLightness),
		Secondary: closest(entries, SecondaryLightness),
	}

	band := make([]palette.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.OKLCH.L > PrimaryBandMin && entry.OKLCH.L < PrimaryBandMax {
			band = append(band, entry)
		}
	}
	if len(band) == 0 {
		band = entries
		sel.PrimaryFallback = true
	}
	sel.Primary = extreme(band, func(a, b palette.Entry) bool { return a.OKLCH.C > b.OKLCH.C })

	return sel, nil
}

// extreme returns the first entry that no later entry beats.
func extreme(entries []palette.Entry, better func(a, b palette.Entry) bool) palette.Entry {
	best := entries[0]
	for _, entry := range entries[1:] {
		if better(entry, best) {
			best = entry
		}
	}
	return best
}

func closest(entries []palette.Entry, target float64) palette.Entry {
	return extreme(entries, func(a, b palette.Entry) bool {
		return math.Abs(a.OKLCH.L-target) < math.Abs(b.OKLCH.L-target)
	})
}
