package appium

import (
	"fmt"
	"time"

	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
)

// pollInterval paces element-find retries while waiting for a timeout.
const pollInterval = 200 * time.Millisecond

// Driver adapts the Appium client to gesture.Driver.
type Driver struct {
	client *Client
}

// NewDriver connects to the Appium server and creates a session.
func NewDriver(serverURL string, capabilities map[string]interface{}) (*Driver, error) {
	client := NewClient(serverURL)
	if err := client.Connect(capabilities); err != nil {
		return nil, err
	}
	return &Driver{client: client}, nil
}

// NewDriverWithClient wraps an already-connected client.
func NewDriverWithClient(client *Client) *Driver {
	return &Driver{client: client}
}

// Close ends the session.
func (d *Driver) Close() error {
	return d.client.Disconnect()
}

// Platform returns the session platform as a gesture tag.
func (d *Driver) Platform() gesture.Platform {
	if d.client.Platform() == "ios" {
		return gesture.PlatformIOS
	}
	return gesture.PlatformAndroid
}

// ViewportSize implements gesture.Driver.
func (d *Driver) ViewportSize() (gesture.Viewport, error) {
	w, h, err := d.client.GetWindowRect()
	if err != nil {
		return gesture.Viewport{}, err
	}
	return gesture.Viewport{Width: w, Height: h}, nil
}

// FindElement implements gesture.Driver. It polls the server until the
// element resolves or the timeout elapses; the server round trip is the
// natural rate limit for short timeouts.
func (d *Driver) FindElement(strategy, selector string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)

	for {
		id, err := d.client.FindElement(strategy, selector)
		if err == nil && id != "" {
			return id, nil
		}

		if time.Now().After(deadline) {
			if err != nil {
				return "", err
			}
			return "", fmt.Errorf("element not found: %s=%s", strategy, selector)
		}
		time.Sleep(pollInterval)
	}
}

// ElementRect implements gesture.Driver.
func (d *Driver) ElementRect(elementID string) (gesture.Rect, error) {
	x, y, w, h, err := d.client.GetElementRect(elementID)
	if err != nil {
		return gesture.Rect{}, err
	}
	return gesture.Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// PerformPointer implements gesture.Driver, translating the sequence
// into W3C pointer actions.
func (d *Driver) PerformPointer(seq gesture.Sequence) error {
	actions := make([]map[string]interface{}, 0, len(seq))
	for _, a := range seq {
		switch a.Op {
		case gesture.OpMove:
			actions = append(actions, map[string]interface{}{
				"type":     "pointerMove",
				"duration": a.Duration.Milliseconds(),
				"x":        a.X,
				"y":        a.Y,
				"origin":   "viewport",
			})
		case gesture.OpDown:
			actions = append(actions, map[string]interface{}{
				"type": "pointerDown", "button": 0,
			})
		case gesture.OpPause:
			actions = append(actions, map[string]interface{}{
				"type": "pause", "duration": a.Duration.Milliseconds(),
			})
		case gesture.OpUp:
			actions = append(actions, map[string]interface{}{
				"type": "pointerUp", "button": 0,
			})
		default:
			return fmt.Errorf("unsupported pointer op: %s", a.Op)
		}
	}
	return d.client.PerformActions(actions)
}

// ExecuteMobile implements gesture.Driver.
func (d *Driver) ExecuteMobile(command string, args map[string]interface{}) (interface{}, error) {
	return d.client.ExecuteMobile(command, args)
}

// DisplayDensity implements gesture.Driver.
func (d *Driver) DisplayDensity() (int, error) {
	return d.client.GetDisplayDensity()
}
