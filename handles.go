package easel

// Handle identifies one of the eight resize handles on the selected layer's
// bounding box: four corners and four edge midpoints.
type Handle uint8

const (
	HandleTopLeft Handle = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	handleCount
)

// IsCorner reports whether h is a corner handle. Corner drags are
// aspect-locked; edge drags affect a single axis.
func (h Handle) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft:
		return true
	}
	return false
}

// Horizontal reports whether h scales the U axis.
func (h Handle) Horizontal() bool {
	return h.IsCorner() || h == HandleLeft || h == HandleRight
}

// Vertical reports whether h scales the V axis.
func (h Handle) Vertical() bool {
	return h.IsCorner() || h == HandleTop || h == HandleBottom
}

// Cursor returns the advisory cursor hint for hovering over h.
func (h Handle) Cursor() CursorHint {
	switch h {
	case HandleTopLeft, HandleBottomRight:
		return CursorResizeNWSE
	case HandleTopRight, HandleBottomLeft:
		return CursorResizeNESW
	case HandleLeft, HandleRight:
		return CursorResizeEW
	default:
		return CursorResizeNS
	}
}

// handlePoints returns the display-space centers of all eight handles for a
// layer bounding box, indexed by Handle.
func handlePoints(r Rect) [handleCount]Vec2 {
	left, right := r.X, r.X+r.Width
	top, bottom := r.Y, r.Y+r.Height
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	return [handleCount]Vec2{
		HandleTopLeft:     {left, top},
		HandleTop:         {cx, top},
		HandleTopRight:    {right, top},
		HandleRight:       {right, cy},
		HandleBottomRight: {right, bottom},
		HandleBottom:      {cx, bottom},
		HandleBottomLeft:  {left, bottom},
		HandleLeft:        {left, cy},
	}
}

// scalingOrigin returns the display-space point that must stay fixed while h
// is dragged: the opposite corner for corner handles, the opposite edge's
// midpoint for edge handles.
func scalingOrigin(r Rect, h Handle) Vec2 {
	points := handlePoints(r)
	switch h {
	case HandleTopLeft:
		return points[HandleBottomRight]
	case HandleTop:
		return points[HandleBottom]
	case HandleTopRight:
		return points[HandleBottomLeft]
	case HandleRight:
		return points[HandleLeft]
	case HandleBottomRight:
		return points[HandleTopLeft]
	case HandleBottom:
		return points[HandleTop]
	case HandleBottomLeft:
		return points[HandleTopRight]
	default:
		return points[HandleRight]
	}
}

// hitHandle returns the handle whose pick circle contains (x, y). Handles
// are checked before layer bodies, so a handle overlapping another layer
// still wins.
func hitHandle(r Rect, x, y float64) (Handle, bool) {
	for h, p := range handlePoints(r) {
		dx := x - p.X
		dy := y - p.Y
		if dx*dx+dy*dy <= handleHitRadius*handleHitRadius {
			return Handle(h), true
		}
	}
	return 0, false
}
