package easel

import (
	"math"
	"time"
)

// Controller state machine. Pointer-down either grabs a handle (resizing),
// a layer body (dragging), or empty canvas (idle + deselect); pointer-up or
// pointer-leave always returns to idle with no partial layer state.
type controllerState uint8

const (
	stateIdle controllerState = iota
	stateDragging
	stateResizing
)

const (
	doubleClickWindow   = 350 * time.Millisecond
	doubleClickDistance = 6.0 // display pixels
)

// Controller turns normalized pointer events (display-space pixels) into
// layer mutations. Mouse and touch input must be normalized to the
// down/move/up/leave model before reaching it; see the ebiten adapter in
// input.go and the synthetic injector in inject.go.
type Controller struct {
	store       *Store
	displaySize float64
	state       controllerState

	// Drag state, captured at pointer-down on a layer body.
	dragStartX, dragStartY float64
	dragStartU, dragStartV float64

	// Resize state, captured at pointer-down on a handle. The origin is the
	// point that must not move on screen for the duration of the resize.
	handle       Handle
	origin       Vec2
	grab         Vec2 // grabbed handle's center at pointer-down
	startScaleU  float64
	startScaleV  float64
	startCenterX float64
	startCenterY float64

	// Double-click tracking.
	now         func() time.Time
	lastPressAt time.Time
	lastPressID uint32
	lastPressX  float64
	lastPressY  float64
}

// NewController creates a controller over the given store, interpreting
// pointer coordinates in a display space of the given size.
func NewController(store *Store, displaySize float64) *Controller {
	return &Controller{
		store:       store,
		displaySize: displaySize,
		now:         time.Now,
	}
}

// Idle reports whether no drag or resize is in progress.
func (c *Controller) Idle() bool { return c.state == stateIdle }

// Dragging reports whether a layer body drag is in progress.
func (c *Controller) Dragging() bool { return c.state == stateDragging }

// Resizing reports whether a handle resize is in progress.
func (c *Controller) Resizing() bool { return c.state == stateResizing }

// PointerDown handles a press at (x, y) in display pixels. The selected
// layer's handles are tested before any layer body, so a handle overlapping
// another layer still wins. A press on empty canvas clears the selection.
func (c *Controller) PointerDown(x, y float64) {
	if sel := c.store.Selected(); sel != nil && sel.Visible {
		bounds := sel.BoundsIn(c.displaySize)
		if h, ok := hitHandle(bounds, x, y); ok {
			c.beginResize(sel, bounds, h)
			return
		}
	}

	l := c.store.HitTest(x, y, c.displaySize)
	if l == nil {
		c.store.ClearSelection()
		c.state = stateIdle
		c.lastPressID = 0
		return
	}

	if c.isDoublePress(l, x, y) {
		l.ResetTransform()
		c.store.Changed()
	}
	c.lastPressAt = c.now()
	c.lastPressID = l.ID
	c.lastPressX, c.lastPressY = x, y

	c.store.Select(l)
	c.dragStartX, c.dragStartY = x, y
	c.dragStartU, c.dragStartV = l.U, l.V
	c.state = stateDragging
}

// PointerMove handles motion to (x, y) in display pixels while a drag or
// resize is active. Every step writes a fully valid position and scale.
func (c *Controller) PointerMove(x, y float64) {
	sel := c.store.Selected()
	if sel == nil {
		c.state = stateIdle
		return
	}
	switch c.state {
	case stateDragging:
		du, dv := Unproject(x-c.dragStartX, y-c.dragStartY, c.displaySize)
		sel.SetPosition(c.dragStartU+du, c.dragStartV+dv)
		c.store.Changed()
	case stateResizing:
		c.applyResize(sel, x, y)
		c.store.Changed()
	}
}

// PointerUp ends any drag or resize.
func (c *Controller) PointerUp(x, y float64) {
	c.state = stateIdle
}

// PointerLeave abandons any drag or resize cleanly.
func (c *Controller) PointerLeave() {
	c.state = stateIdle
}

// CursorHint returns advisory cursor feedback for the pointer at (x, y).
// It performs no mutation and triggers no render.
func (c *Controller) CursorHint(x, y float64) CursorHint {
	switch c.state {
	case stateDragging:
		return CursorMove
	case stateResizing:
		return c.handle.Cursor()
	}
	if sel := c.store.Selected(); sel != nil && sel.Visible {
		if h, ok := hitHandle(sel.BoundsIn(c.displaySize), x, y); ok {
			return h.Cursor()
		}
	}
	if c.store.HitTest(x, y, c.displaySize) != nil {
		return CursorMove
	}
	return CursorDefault
}

// ResetSelected restores the selected layer's construction-time rotation
// and/or scale. No-op without a selection. Backs the keyboard shortcuts.
func (c *Controller) ResetSelected(rotation, scale bool) {
	sel := c.store.Selected()
	if sel == nil {
		return
	}
	if rotation {
		sel.ResetRotation()
	}
	if scale {
		sel.ResetScale()
	}
	if rotation || scale {
		c.store.Changed()
	}
}

func (c *Controller) beginResize(l *Layer, bounds Rect, h Handle) {
	c.handle = h
	c.origin = scalingOrigin(bounds, h)
	c.grab = handlePoints(bounds)[h]
	c.startScaleU = l.ScaleU
	c.startScaleV = l.ScaleV
	c.startCenterX, c.startCenterY = Project(l.U, l.V, c.displaySize)
	c.state = stateResizing
}

// applyResize recomputes the layer's scale and center from the pointer
// position so that the scaling origin stays fixed on screen.
//
// Corner handles apply the larger of the two per-axis distance ratios to
// both axes (aspect lock). Edge handles apply their axis's ratio to that
// axis only. The floor clamp is applied to the ratio itself, so a clamped
// corner resize still moves both axes by the same factor.
func (c *Controller) applyResize(l *Layer, x, y float64) {
	rx := distanceRatio(x-c.origin.X, c.grab.X-c.origin.X)
	ry := distanceRatio(y-c.origin.Y, c.grab.Y-c.origin.Y)

	// Effective per-axis ratios after handle rules and floor clamping.
	effX, effY := 1.0, 1.0
	switch {
	case c.handle.IsCorner():
		r := math.Max(rx, ry)
		r = math.Max(r, MinScale/c.startScaleU)
		r = math.Max(r, MinScale/c.startScaleV)
		effX, effY = r, r
	case c.handle.Horizontal():
		effX = math.Max(rx, MinScale/c.startScaleU)
	default:
		effY = math.Max(ry, MinScale/c.startScaleV)
	}

	l.ScaleU = c.startScaleU * effX
	l.ScaleV = c.startScaleV * effY

	// Shift the center so the origin keeps its screen position: the center's
	// offset from the origin grows by the same factor as the footprint.
	cx := c.origin.X + (c.startCenterX-c.origin.X)*effX
	cy := c.origin.Y + (c.startCenterY-c.origin.Y)*effY
	l.U, l.V = Unproject(cx, cy, c.displaySize)
}

// distanceRatio returns |current| / |original| along one axis, or 1 when the
// original span is degenerate (grabbing an edge midpoint's flat axis).
func distanceRatio(current, original float64) float64 {
	if original == 0 {
		return 1
	}
	return math.Abs(current) / math.Abs(original)
}

// isDoublePress reports whether this press completes a double-click on the
// same layer within the time window and pixel tolerance.
func (c *Controller) isDoublePress(l *Layer, x, y float64) bool {
	if c.lastPressID != l.ID {
		return false
	}
	if c.now().Sub(c.lastPressAt) > doubleClickWindow {
		return false
	}
	dx := x - c.lastPressX
	dy := y - c.lastPressY
	return dx*dx+dy*dy <= doubleClickDistance*doubleClickDistance
}
