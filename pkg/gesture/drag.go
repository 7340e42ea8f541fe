package gesture

import (
	"time"
)

// Native drag velocity scaling, carried from device tuning: Android
// scales by display density, iOS uses points per second directly.
const (
	androidVelocityScale = 2500
	iosVelocityScale     = 400
	iosPressDuration     = 0.5
	iosHoldDuration      = 0.1
)

// DragAndDrop performs element-to-element drags. Both elements must be
// within the viewport.
type DragAndDrop struct {
	driver      Driver
	platform    Platform
	findTimeout time.Duration
}

// NewDragAndDrop creates a drag helper for the session platform.
func NewDragAndDrop(d Driver, platform Platform) *DragAndDrop {
	return &DragAndDrop{driver: d, platform: platform, findTimeout: DefaultOptions().ProbeTimeout}
}

// Elements drags the source element's center onto the target element's
// center using the platform's native drag gesture. Speed is a
// multiplier on the platform's base velocity.
func (g *DragAndDrop) Elements(srcStrategy, srcSelector, dstStrategy, dstSelector string, speed float64) error {
	if speed <= 0 {
		speed = 1.0
	}

	src, err := g.midpoint(srcStrategy, srcSelector)
	if err != nil {
		return err
	}
	dst, err := g.midpoint(dstStrategy, dstSelector)
	if err != nil {
		return err
	}

	switch g.platform {
	case PlatformIOS:
		_, err = g.driver.ExecuteMobile("dragFromToWithVelocity", map[string]interface{}{
			"pressDuration": iosPressDuration,
			"holdDuration":  iosHoldDuration,
			"fromX":         src.X,
			"fromY":         src.Y,
			"toX":           dst.X,
			"toY":           dst.Y,
			"velocity":      iosVelocityScale * speed,
		})
	default:
		dpi, derr := g.driver.DisplayDensity()
		if derr != nil {
			return transportError("display density", derr)
		}
		_, err = g.driver.ExecuteMobile("dragGesture", map[string]interface{}{
			"startX": src.X,
			"startY": src.Y,
			"endX":   dst.X,
			"endY":   dst.Y,
			"speed":  float64(androidVelocityScale*dpi) * speed,
		})
	}
	if err != nil {
		return transportError("drag and drop", err)
	}
	return nil
}

// Pointer drags between the two element centers as a raw pointer
// sequence instead of a native gesture, for backends without mobile:
// drag support. Hold defaults to one second.
func (g *DragAndDrop) Pointer(srcStrategy, srcSelector, dstStrategy, dstSelector string, hold time.Duration) error {
	if hold <= 0 {
		hold = time.Second
	}

	src, err := g.midpoint(srcStrategy, srcSelector)
	if err != nil {
		return err
	}
	dst, err := g.midpoint(dstStrategy, dstSelector)
	if err != nil {
		return err
	}

	if err := g.driver.PerformPointer(DragSequence(src, dst, hold)); err != nil {
		return transportError("pointer drag", err)
	}
	return nil
}

func (g *DragAndDrop) midpoint(strategy, selector string) (Point, error) {
	id, err := g.driver.FindElement(strategy, selector, g.findTimeout)
	if err != nil {
		return Point{}, transportError("find element", err)
	}
	rect, err := g.driver.ElementRect(id)
	if err != nil {
		return Point{}, transportError("element rect", err)
	}
	pts, err := Points(rect, false)
	if err != nil {
		return Point{}, err
	}
	return pts.Mid, nil
}
