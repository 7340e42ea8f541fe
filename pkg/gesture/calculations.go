package gesture

// safeInsetFactor is how far edge and corner points are pulled inward
// when inset mode is on, per axis.
const safeInsetFactor = 0.1

// ComputeBoundaries projects crop factors onto a viewport and derives
// the scrollable area. Returns ErrInvalidConfig when the factors cross
// or the viewport is degenerate, leaving a non-positive extent on
// either axis.
func ComputeBoundaries(vp Viewport, cf CropFactors) (Boundaries, ScrollableArea, error) {
	b := Boundaries{
		Upper: int(float64(vp.Height) * cf.Upper),
		Lower: int(float64(vp.Height) * cf.Lower),
		Left:  int(float64(vp.Width) * cf.Left),
		Right: int(float64(vp.Width) * cf.Right),
	}
	area := ScrollableArea{
		X: b.Right - b.Left,
		Y: b.Lower - b.Upper,
	}
	if area.X <= 0 || area.Y <= 0 {
		return Boundaries{}, ScrollableArea{}, ErrInvalidConfig.WithMessage(
			"crop factors leave no scrollable area")
	}
	return b, area, nil
}

// Points computes the nine reference points of a rect. Midpoints use
// floor division; callers must not assume sub-pixel precision. With
// safeInset, edge and corner points are pulled inward by 10% of each
// dimension, keeping gestures off clipped or non-interactive borders.
// The center is invariant under inset since the shifts are symmetric.
func Points(r Rect, safeInset bool) (ElementPoints, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return ElementPoints{}, ErrInvalidElement
	}

	midX := r.X + r.Width/2
	midY := r.Y + r.Height/2
	rightX := r.X + r.Width
	bottomY := r.Y + r.Height

	if safeInset {
		insetX := int(float64(r.Width) * safeInsetFactor)
		insetY := int(float64(r.Height) * safeInsetFactor)

		return ElementPoints{
			TopLeft:     Point{r.X + insetX, r.Y + insetY},
			TopMid:      Point{midX, r.Y + insetY},
			TopRight:    Point{rightX - insetX, r.Y + insetY},
			LeftMid:     Point{r.X + insetX, midY},
			Mid:         Point{midX, midY},
			RightMid:    Point{rightX - insetX, midY},
			BottomLeft:  Point{r.X + insetX, bottomY - insetY},
			BottomMid:   Point{midX, bottomY - insetY},
			BottomRight: Point{rightX - insetX, bottomY - insetY},
		}, nil
	}

	return ElementPoints{
		TopLeft:     Point{r.X, r.Y},
		TopMid:      Point{midX, r.Y},
		TopRight:    Point{rightX, r.Y},
		LeftMid:     Point{r.X, midY},
		Mid:         Point{midX, midY},
		RightMid:    Point{rightX, midY},
		BottomLeft:  Point{r.X, bottomY},
		BottomMid:   Point{midX, bottomY},
		BottomRight: Point{rightX, bottomY},
	}, nil
}
