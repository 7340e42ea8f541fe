// Package gesture computes screen-space geometry for synthetic touch
// gestures and brings off-screen elements into view with a bounded
// swipe-and-probe search. It talks to the automation server through the
// narrow Driver interface, so it can run against Appium or any other
// WebDriver-compatible backend.
package gesture

// Direction of a swipe action.
type Direction string

// Swipe directions. In and out are pinch-only.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
)

// SeekDirection is the direction in which to search for an element.
type SeekDirection string

// Seek directions.
const (
	SeekUp    SeekDirection = "up"
	SeekDown  SeekDirection = "down"
	SeekLeft  SeekDirection = "left"
	SeekRight SeekDirection = "right"
)

// Platform selects the native-gesture dialect. Chosen once at
// construction; drag and pinch dispatch on it instead of comparing
// strings at every call site.
type Platform string

// Supported platforms.
const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// Viewport is the device window size in pixels. Read once per session;
// rotation requires constructing a new Swipe.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CropFactors express the scrollable window as fractions of the
// viewport: upper/lower of height, left/right of width. They keep
// gestures away from system chrome like status and navigation bars.
type CropFactors struct {
	Upper float64 `yaml:"upper"`
	Lower float64 `yaml:"lower"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// DefaultCropFactors returns the tuned defaults: 20% off the top, 10%
// off the bottom, 10% off each side.
func DefaultCropFactors() CropFactors {
	return CropFactors{Upper: 0.20, Lower: 0.90, Left: 0.10, Right: 0.90}
}

// Boundaries are the crop factors projected onto a viewport, floored to
// whole pixels.
type Boundaries struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// ScrollableArea is the pixel extent between opposing boundaries; the
// maximum distance a single full swipe can cover on each axis.
type ScrollableArea struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point is a screen coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an element's position and size as reported by the driver.
// Matches the WebDriver /element/:id/rect shape.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ElementPoints are the nine reference points of an element: four
// corners, four edge midpoints and the center.
type ElementPoints struct {
	TopLeft     Point
	TopMid      Point
	TopRight    Point
	LeftMid     Point
	Mid         Point
	RightMid    Point
	BottomLeft  Point
	BottomMid   Point
	BottomRight Point
}
