package gesture

import (
	"fmt"
	"time"
)

// Pinch performs pinch open (zoom in) and pinch close (zoom out)
// gestures via the platform's named native gesture.
type Pinch struct {
	driver      Driver
	platform    Platform
	findTimeout time.Duration
}

// NewPinch creates a pinch helper for the session platform.
func NewPinch(d Driver, platform Platform) *Pinch {
	return &Pinch{driver: d, platform: platform, findTimeout: DefaultOptions().ProbeTimeout}
}

// Open spreads two fingers apart on the element. Percent is the pinch
// scale in [0,1], speed a multiplier on the platform base velocity.
func (p *Pinch) Open(strategy, selector string, percent, speed float64) error {
	return p.pinch(strategy, selector, percent, speed, true)
}

// Close brings two fingers together on the element.
func (p *Pinch) Close(strategy, selector string, percent, speed float64) error {
	return p.pinch(strategy, selector, percent, speed, false)
}

func (p *Pinch) pinch(strategy, selector string, percent, speed float64, open bool) error {
	if percent < 0 || percent > 1 {
		return ErrInvalidGesture.WithMessage(
			fmt.Sprintf("pinch percent must be between 0.0 and 1.0, got %v", percent))
	}
	if speed <= 0 {
		speed = 1.0
	}

	id, err := p.driver.FindElement(strategy, selector, p.findTimeout)
	if err != nil {
		return transportError("find element", err)
	}

	switch p.platform {
	case PlatformIOS:
		scale := percent
		if !open {
			// iOS has a single pinch script; scale above 1 inverts it
			// into a close.
			scale = percent * 2
		}
		_, err = p.driver.ExecuteMobile("pinch", map[string]interface{}{
			"elementId": id,
			"scale":     scale,
			"velocity":  speed,
		})
	default:
		dpi, derr := p.driver.DisplayDensity()
		if derr != nil {
			return transportError("display density", derr)
		}
		script := "pinchCloseGesture"
		if open {
			script = "pinchOpenGesture"
		}
		_, err = p.driver.ExecuteMobile(script, map[string]interface{}{
			"elementId": id,
			"percent":   percent,
			"speed":     float64(androidVelocityScale*dpi) * speed,
		})
	}
	if err != nil {
		return transportError("pinch", err)
	}
	return nil
}
