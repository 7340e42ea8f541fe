package gesture

import (
	"math"
)

// axisPlan decomposes a signed scroll distance on one axis into whole
// swipes plus a bounded partial swipe.
type axisPlan struct {
	// Total is the fractional number of full-extent swipes the
	// distance requires.
	Total float64
	// Full is floor(distance/extent): whole swipes beyond the one
	// already implied by direction selection. Executed only when
	// Total > 1.
	Full int
	// Partial is the remaining sub-swipe travel in pixels, always
	// non-negative.
	Partial int
}

// planAxis converts "the target is distance pixels past the boundary"
// into a gesture plan. Flooring rounds toward under-shooting rather
// than over-shooting, so a seek never skips past the element; residual
// distance is corrected by subsequent probe iterations.
func planAxis(distance, extent int) axisPlan {
	total := float64(distance) / float64(extent)
	full := int(math.Floor(total))
	partial := int(float64(extent) * (total - float64(full)))
	return axisPlan{Total: total, Full: full, Partial: partial}
}
