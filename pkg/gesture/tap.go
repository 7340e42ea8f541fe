package gesture

import (
	"time"
)

// Default hold durations. Android and iOS share the long-press value.
const (
	DefaultTapHold   = 100 * time.Millisecond
	DefaultLongPress = 500 * time.Millisecond
)

// Tap performs tap gestures at element centers.
type Tap struct {
	driver      Driver
	findTimeout time.Duration
}

// NewTap creates a Tap helper.
func NewTap(d Driver) *Tap {
	return &Tap{driver: d, findTimeout: DefaultOptions().ProbeTimeout}
}

// Double performs a double tap on the element.
func (t *Tap) Double(strategy, selector string) error {
	return t.tap(strategy, selector, DefaultTapHold, 2)
}

// Triple performs a triple tap on the element.
func (t *Tap) Triple(strategy, selector string) error {
	return t.tap(strategy, selector, DefaultTapHold, 3)
}

// LongPress holds a tap on the element. A zero duration means
// DefaultLongPress.
func (t *Tap) LongPress(strategy, selector string, duration time.Duration) error {
	if duration <= 0 {
		duration = DefaultLongPress
	}
	return t.tap(strategy, selector, duration, 1)
}

func (t *Tap) tap(strategy, selector string, hold time.Duration, taps int) error {
	id, err := t.driver.FindElement(strategy, selector, t.findTimeout)
	if err != nil {
		return transportError("find element", err)
	}
	rect, err := t.driver.ElementRect(id)
	if err != nil {
		return transportError("element rect", err)
	}
	pts, err := Points(rect, false)
	if err != nil {
		return err
	}
	if err := t.driver.PerformPointer(TapSequence(pts.Mid, hold, taps)); err != nil {
		return transportError("tap", err)
	}
	return nil
}
