package gesture

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/appium-gestures/pkg/logger"
)

// Swipe performs viewport-relative swipes and brings elements into
// view. Boundaries are computed once at construction and never mutate;
// construct a new Swipe after an orientation change.
type Swipe struct {
	driver   Driver
	platform Platform
	opts     Options

	viewport Viewport
	xMid     int
	yMid     int
	bounds   Boundaries
	area     ScrollableArea
}

// NewSwipe reads the viewport once and derives the scroll boundaries.
// Returns ErrViewport when the driver cannot report a usable window
// size and ErrInvalidConfig when the crop factors leave no scrollable
// area.
func NewSwipe(d Driver, platform Platform, opts Options) (*Swipe, error) {
	opts = opts.withDefaults()

	vp, err := d.ViewportSize()
	if err != nil {
		return nil, ErrViewport.WithCause(err)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, ErrViewport.WithMessage(
			fmt.Sprintf("degenerate viewport %dx%d", vp.Width, vp.Height))
	}

	bounds, area, err := ComputeBoundaries(vp, opts.CropFactors)
	if err != nil {
		return nil, err
	}

	return &Swipe{
		driver:   d,
		platform: platform,
		opts:     opts,
		viewport: vp,
		xMid:     vp.Width / 2,
		yMid:     vp.Height / 2,
		bounds:   bounds,
		area:     area,
	}, nil
}

// Viewport returns the session viewport.
func (s *Swipe) Viewport() Viewport { return s.viewport }

// Boundaries returns the derived scroll boundaries.
func (s *Swipe) Boundaries() Boundaries { return s.bounds }

// ScrollableArea returns the derived scrollable extents.
func (s *Swipe) ScrollableArea() ScrollableArea { return s.area }

// Up performs a full upward swipe of the scrollable area.
func (s *Swipe) Up() error {
	return s.fullY(s.bounds.Lower, s.bounds.Upper, 1)
}

// Down performs a full downward swipe of the scrollable area.
func (s *Swipe) Down() error {
	return s.fullY(s.bounds.Upper, s.bounds.Lower, 1)
}

// Left performs a full leftward swipe of the scrollable area.
func (s *Swipe) Left() error {
	return s.fullX(s.bounds.Right, s.bounds.Left, 1)
}

// Right performs a full rightward swipe of the scrollable area.
func (s *Swipe) Right() error {
	return s.fullX(s.bounds.Left, s.bounds.Right, 1)
}

// Previous swipes from the left edge across the whole viewport,
// simulating a previous-page swipe.
func (s *Swipe) Previous() error {
	return s.fullX(0, s.viewport.Width, 1)
}

// Next swipes from the right edge across the whole viewport,
// simulating a next-page swipe.
func (s *Swipe) Next() error {
	return s.fullX(s.viewport.Width, 0, 1)
}

// OnElement swipes across an element in the given direction, between
// opposing edge midpoints. Points are inset so the gesture starts off
// the element border, which otherwise can trigger edge affordances in
// scrollable containers.
func (s *Swipe) OnElement(strategy, selector string, dir Direction) error {
	rect, err := s.elementRect(strategy, selector)
	if err != nil {
		return err
	}
	pts, err := Points(rect, true)
	if err != nil {
		return err
	}

	var from, to Point
	switch dir {
	case DirectionUp:
		from, to = pts.BottomMid, pts.TopMid
	case DirectionDown:
		from, to = pts.TopMid, pts.BottomMid
	case DirectionLeft:
		from, to = pts.RightMid, pts.LeftMid
	case DirectionRight:
		from, to = pts.LeftMid, pts.RightMid
	default:
		return ErrInvalidGesture.WithMessage(fmt.Sprintf("cannot swipe %q on element", dir))
	}

	return s.perform("swipe on element", from, to)
}

// ElementIntoView brings an element into the scrollable window,
// searching in the given direction.
//
// When the element already resolves, its distance from the relevant
// boundary is decomposed into full swipes plus one partial swipe and
// executed once. When it does not resolve (not rendered yet, or a
// native context without a full element tree), the loop issues
// fixed-magnitude probe swipes and re-probes after each, up to the
// attempt budget, then fails with ErrElementNotInView.
func (s *Swipe) ElementIntoView(strategy, selector string, dir SeekDirection) error {
	if s.scrollIntoViewNative(strategy, selector) {
		return nil
	}

	if id, ok := s.probe(strategy, selector); ok {
		return s.directSwipe(id, dir)
	}

	for attempt := 1; attempt <= s.opts.ProbeAttempts; attempt++ {
		if err := s.probeSwipe(dir); err != nil {
			return err
		}
		if _, ok := s.probe(strategy, selector); ok {
			logger.Debug("element %q visible after %d probe swipes", selector, attempt)
			return nil
		}
	}

	logger.Warn("element %q not found after %d attempts seeking %s", selector, s.opts.ProbeAttempts, dir)
	return ErrElementNotInView.WithMessage(
		fmt.Sprintf("element not found after %d attempts", s.opts.ProbeAttempts))
}

// scrollIntoViewNative tries the platform's own scroll-into-view before
// falling back to the generic loop. Best effort: any failure means the
// caller proceeds with the probe loop.
func (s *Swipe) scrollIntoViewNative(strategy, selector string) bool {
	switch s.platform {
	case PlatformAndroid:
		if strategy != "-android uiautomator" || !strings.HasPrefix(selector, "new UiSelector()") {
			return false
		}
		query := fmt.Sprintf("new UiScrollable(new UiSelector().scrollable(true)).scrollIntoView(%s)", selector)
		_, err := s.driver.FindElement(strategy, query, s.opts.ProbeTimeout)
		return err == nil
	case PlatformIOS:
		id, err := s.driver.FindElement(strategy, selector, s.opts.ProbeTimeout)
		if err != nil {
			return false
		}
		_, err = s.driver.ExecuteMobile("scrollToElement", map[string]interface{}{
			"elementId": id,
		})
		return err == nil
	default:
		return false
	}
}

// directSwipe scrolls toward an element whose position is known. No
// iteration needed: the target location is exact, and flooring in the
// planner guarantees the element is not skipped.
func (s *Swipe) directSwipe(elementID string, dir SeekDirection) error {
	rect, err := s.driver.ElementRect(elementID)
	if err != nil {
		return transportError("element rect", err)
	}
	pts, err := Points(rect, false)
	if err != nil {
		return err
	}

	switch dir {
	case SeekUp, SeekDown:
		plan := planAxis(pts.Mid.Y-s.bounds.Lower, s.area.Y)
		from, to := s.bounds.Lower, s.bounds.Upper
		if dir == SeekUp {
			from, to = s.bounds.Upper, s.bounds.Lower
		}
		if plan.Total > 1 {
			if err := s.fullY(from, to, plan.Full); err != nil {
				return err
			}
		}
		if plan.Partial > s.opts.SwipeThreshold {
			return s.partialY(from, to, plan.Partial)
		}
		return nil
	case SeekLeft, SeekRight:
		plan := planAxis(pts.Mid.X-s.bounds.Left, s.area.X)
		from, to := s.bounds.Left, s.bounds.Right
		if dir == SeekLeft {
			from, to = s.bounds.Right, s.bounds.Left
		}
		if plan.Total > 1 {
			if err := s.fullX(from, to, plan.Full); err != nil {
				return err
			}
		}
		if plan.Partial > s.opts.SwipeThreshold {
			return s.partialX(from, to, plan.Partial)
		}
		return nil
	default:
		return ErrInvalidGesture.WithMessage(fmt.Sprintf("unknown seek direction %q", dir))
	}
}

// probeSwipe issues one fixed-magnitude directional swipe from the
// per-direction table. Vertical probes cover 40% of the scrollable
// extent, horizontal ones 20%: horizontal content (carousels) retains
// less overlap between peers, so probes move more conservatively to
// avoid overshooting.
func (s *Swipe) probeSwipe(dir SeekDirection) error {
	switch dir {
	case SeekUp:
		return s.partialY(s.bounds.Upper, s.bounds.Lower, int(float64(s.area.Y)*-s.opts.VerticalProbeFraction))
	case SeekDown:
		return s.partialY(s.bounds.Lower, s.bounds.Upper, int(float64(s.area.Y)*s.opts.VerticalProbeFraction))
	case SeekLeft:
		return s.partialX(s.bounds.Left, s.bounds.Right, int(float64(s.area.X)*-s.opts.HorizontalProbeFraction))
	case SeekRight:
		return s.partialX(s.bounds.Right, s.bounds.Left, int(float64(s.area.X)*s.opts.HorizontalProbeFraction))
	default:
		return ErrInvalidGesture.WithMessage(fmt.Sprintf("unknown seek direction %q", dir))
	}
}

// probe checks element presence with the short probe timeout.
func (s *Swipe) probe(strategy, selector string) (string, bool) {
	id, err := s.driver.FindElement(strategy, selector, s.opts.ProbeTimeout)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (s *Swipe) elementRect(strategy, selector string) (Rect, error) {
	id, err := s.driver.FindElement(strategy, selector, s.opts.ProbeTimeout)
	if err != nil {
		return Rect{}, transportError("find element", err)
	}
	rect, err := s.driver.ElementRect(id)
	if err != nil {
		return Rect{}, transportError("element rect", err)
	}
	return rect, nil
}

// fullY performs full vertical swipes along the viewport x midline.
func (s *Swipe) fullY(from, to, iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := s.perform("full vertical swipe", Point{s.xMid, from}, Point{s.xMid, to}); err != nil {
			return err
		}
	}
	return nil
}

// partialY performs one vertical swipe of offset pixels past the far
// boundary, along the viewport x midline.
func (s *Swipe) partialY(from, to, offset int) error {
	return s.perform("partial vertical swipe", Point{s.xMid, from}, Point{s.xMid, to + offset})
}

// fullX performs full horizontal swipes along the viewport y midline.
func (s *Swipe) fullX(from, to, iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := s.perform("full horizontal swipe", Point{from, s.yMid}, Point{to, s.yMid}); err != nil {
			return err
		}
	}
	return nil
}

// partialX performs one horizontal swipe of offset pixels past the far
// boundary, along the viewport y midline.
func (s *Swipe) partialX(from, to, offset int) error {
	return s.perform("partial horizontal swipe", Point{from, s.yMid}, Point{to + offset, s.yMid})
}

func (s *Swipe) perform(op string, from, to Point) error {
	if err := s.driver.PerformPointer(SwipeSequence(from, to, s.opts.SwipePause)); err != nil {
		return transportError(op, err)
	}
	return nil
}
