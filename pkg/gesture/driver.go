package gesture

import (
	"time"
)

// Driver is the narrow surface the gesture engine needs from an
// automation backend. Implementations: Appium (pkg/driver/appium),
// mocks for testing.
//
// The driver is a single shared, non-reentrant resource: calls block
// until the server confirms completion and gestures are never
// pipelined, because the UI must settle between scroll operations for
// accurate re-probing.
type Driver interface {
	// ViewportSize returns the window dimensions in pixels.
	ViewportSize() (Viewport, error)

	// FindElement resolves a locator to an element ID, waiting up to
	// timeout for it to appear.
	FindElement(strategy, selector string, timeout time.Duration) (string, error)

	// ElementRect returns the element's current bounds. Not cached by
	// callers, since UI state is dynamic.
	ElementRect(elementID string) (Rect, error)

	// PerformPointer submits one pointer sequence and blocks until the
	// server reports completion.
	PerformPointer(seq Sequence) error

	// ExecuteMobile invokes a named native gesture (a "mobile:" script).
	ExecuteMobile(command string, args map[string]interface{}) (interface{}, error)

	// DisplayDensity returns the device DPI, used to scale native
	// gesture velocities on Android.
	DisplayDensity() (int, error)
}

// Options are the tuning values for swipe planning and element seek.
// The defaults are empirically tuned against real devices; override
// them deliberately, not casually.
type Options struct {
	// CropFactors bound the scrollable window. Zero value means
	// DefaultCropFactors.
	CropFactors CropFactors

	// ProbeAttempts is the seek loop budget.
	ProbeAttempts int

	// ProbeTimeout bounds each element presence probe.
	ProbeTimeout time.Duration

	// SwipePause is the hold between the pointer move and release;
	// without it the OS gives the gesture inertia and interprets it as
	// a flick.
	SwipePause time.Duration

	// SwipeThreshold is the minimum partial-swipe travel in pixels.
	// Below it the OS may read the pointer travel as a tap or
	// double-tap instead of a drag.
	SwipeThreshold int

	// VerticalProbeFraction and HorizontalProbeFraction size the blind
	// probe swipes as fractions of the scrollable extent. Horizontal
	// probes move more conservatively to avoid overshooting peer items
	// in carousels.
	VerticalProbeFraction   float64
	HorizontalProbeFraction float64
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		CropFactors:             DefaultCropFactors(),
		ProbeAttempts:           5,
		ProbeTimeout:            250 * time.Millisecond,
		SwipePause:              500 * time.Millisecond,
		SwipeThreshold:          50,
		VerticalProbeFraction:   0.4,
		HorizontalProbeFraction: 0.2,
	}
}

// withDefaults fills unset fields so a zero Options behaves like
// DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CropFactors == (CropFactors{}) {
		o.CropFactors = d.CropFactors
	}
	if o.ProbeAttempts == 0 {
		o.ProbeAttempts = d.ProbeAttempts
	}
	if o.ProbeTimeout == 0 {
		o.ProbeTimeout = d.ProbeTimeout
	}
	if o.SwipePause == 0 {
		o.SwipePause = d.SwipePause
	}
	if o.SwipeThreshold == 0 {
		o.SwipeThreshold = d.SwipeThreshold
	}
	if o.VerticalProbeFraction == 0 {
		o.VerticalProbeFraction = d.VerticalProbeFraction
	}
	if o.HorizontalProbeFraction == 0 {
		o.HorizontalProbeFraction = d.HorizontalProbeFraction
	}
	return o
}
