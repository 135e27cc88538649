package easel

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestController builds a store with one 100x100 layer on a 512 display.
// At scale 1 the layer is a 50x50 box centered at (256, 256): bounds
// [231, 281] on both axes.
func newTestController(t *testing.T) (*Controller, *Store, *Layer) {
	t.Helper()
	s := NewStore()
	l := s.AddImage(ebiten.NewImage(100, 100), "")
	c := NewController(s, 512)
	return c, s, l
}

// selectByPress selects the layer through a full click on its body.
func selectByPress(t *testing.T, c *Controller, x, y float64) {
	t.Helper()
	c.PointerDown(x, y)
	c.PointerUp(x, y)
	if !c.Idle() {
		t.Fatal("controller should be idle after release")
	}
}

// --- Selection and drag ---

func TestPressOnBodySelectsAndDrags(t *testing.T) {
	c, s, l := newTestController(t)

	c.PointerDown(256, 256)
	if s.Selected() != l {
		t.Fatal("press on body should select the layer")
	}
	if !c.Dragging() {
		t.Fatal("press on body should enter dragging")
	}
	c.PointerUp(256, 256)
	if !c.Idle() {
		t.Error("release should return to idle")
	}
}

func TestPressOnEmptyCanvasDeselects(t *testing.T) {
	c, s, _ := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(10, 10)
	if s.Selected() != nil {
		t.Error("press outside every layer should clear the selection")
	}
	if !c.Idle() {
		t.Error("empty press should stay idle")
	}
}

// The worked drag scenario: 100x100 bitmap at (0.5, 0.5), drag from
// (256, 256) to (300, 300) on a 512 display. Delta 44px / 512 ≈ 0.086.
func TestDragMovesLayer(t *testing.T) {
	c, _, l := newTestController(t)

	c.PointerDown(256, 256)
	c.PointerMove(300, 300)

	assertNear(t, "U", l.U, 0.5+44.0/512)
	assertNear(t, "V", l.V, 0.5+44.0/512)

	c.PointerUp(300, 300)
	if !c.Idle() {
		t.Error("release should return to idle")
	}
}

func TestDragClampsToCanvas(t *testing.T) {
	c, _, l := newTestController(t)

	c.PointerDown(256, 256)
	c.PointerMove(-2000, 3000)

	assertNear(t, "U", l.U, 0)
	assertNear(t, "V", l.V, 1)
}

func TestDragIsRelativeToStart(t *testing.T) {
	c, _, l := newTestController(t)

	// Grab off-center: the layer must not snap its center to the pointer.
	c.PointerDown(240, 250)
	c.PointerMove(250, 250)
	assertNear(t, "U", l.U, 0.5+10.0/512)
	assertNear(t, "V", l.V, 0.5)
}

func TestPointerLeaveAbandonsDrag(t *testing.T) {
	c, _, l := newTestController(t)

	c.PointerDown(256, 256)
	c.PointerMove(300, 256)
	u := l.U
	c.PointerLeave()
	if !c.Idle() {
		t.Fatal("leave should return to idle")
	}
	// No further mutation after leave.
	c.PointerMove(400, 256)
	assertNear(t, "U unchanged", l.U, u)
}

// --- Resize: handle priority and corner rules ---

func TestHandleTakesPriorityOverBody(t *testing.T) {
	c, s, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	// Add a layer on top covering the handle area; the selected layer's
	// handle must still win.
	top := s.AddImage(ebiten.NewImage(400, 400), "")
	top.SetPosition(0.55, 0.55)

	c.PointerDown(281, 281) // selected layer's bottom-right handle
	if !c.Resizing() {
		t.Fatal("handle press should enter resizing")
	}
	if s.Selected() != l {
		t.Error("selection must not change on handle grab")
	}
	c.PointerUp(281, 281)
}

func TestCornerResizeAspectLocked(t *testing.T) {
	c, _, l := newTestController(t)
	l.SetScale(1, 2) // non-uniform start to make the ratio check meaningful
	selectByPress(t, c, 256, 256)

	// Bounds now 50x100: x [231,281], y [206,306]. BR handle (281,306),
	// origin TL (231,206).
	c.PointerDown(281, 306)
	if !c.Resizing() {
		t.Fatal("should be resizing")
	}
	c.PointerMove(331, 306+50)
	// rx = 100/50 = 2.0, ry = 150/100 = 1.5 → both axes scale by 2.
	assertNear(t, "ScaleU", l.ScaleU, 2)
	assertNear(t, "ScaleV", l.ScaleV, 4)
	assertNear(t, "U ratio == V ratio", l.ScaleU/1, l.ScaleV/2)
	c.PointerUp(331, 356)
}

func TestCornerResizeFixedOrigin(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	before := l.BoundsIn(512)
	originX, originY := before.X, before.Y // top-left, opposite of BR handle

	c.PointerDown(281, 281) // bottom-right handle
	c.PointerMove(341, 321) // horizontal component dominates

	after := l.BoundsIn(512)
	assertNear(t, "origin x fixed", after.X, originX)
	assertNear(t, "origin y fixed", after.Y, originY)

	// Larger horizontal vector wins: both axes grew by rx = 110/50.
	assertNear(t, "ScaleU", l.ScaleU, 110.0/50)
	assertNear(t, "ScaleV", l.ScaleV, 110.0/50)
}

func TestCornerResizeFromTopLeft(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	before := l.BoundsIn(512)
	brX := before.X + before.Width
	brY := before.Y + before.Height

	c.PointerDown(231, 231) // top-left handle; origin is bottom-right
	c.PointerMove(181, 231)
	// rx = 100/50 = 2, ry = 50/50 = 1 → r = 2.
	assertNear(t, "ScaleU", l.ScaleU, 2)
	assertNear(t, "ScaleV", l.ScaleV, 2)

	after := l.BoundsIn(512)
	assertNear(t, "origin x fixed", after.X+after.Width, brX)
	assertNear(t, "origin y fixed", after.Y+after.Height, brY)
}

// --- Resize: edge rules ---

func TestRightEdgeResizeSingleAxis(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(281, 256) // right edge midpoint; origin left midpoint (231,256)
	c.PointerMove(331, 999) // vertical motion must be ignored

	assertNear(t, "ScaleU", l.ScaleU, 2) // 100/50
	assertNear(t, "ScaleV untouched", l.ScaleV, 1)
	assertNear(t, "V untouched", l.V, 0.5)

	after := l.BoundsIn(512)
	assertNear(t, "left edge fixed", after.X, 231)
}

func TestBottomEdgeResizeSingleAxis(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(256, 281) // bottom edge midpoint; origin top midpoint (256,231)
	c.PointerMove(999, 306)

	assertNear(t, "ScaleV", l.ScaleV, 1.5) // 75/50
	assertNear(t, "ScaleU untouched", l.ScaleU, 1)
	assertNear(t, "U untouched", l.U, 0.5)

	after := l.BoundsIn(512)
	assertNear(t, "top edge fixed", after.Y, 231)
}

func TestTopEdgeResizeFixedBottom(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(256, 231) // top edge midpoint; origin bottom midpoint (256,281)
	c.PointerMove(256, 181)

	assertNear(t, "ScaleV", l.ScaleV, 2) // 100/50
	after := l.BoundsIn(512)
	assertNear(t, "bottom edge fixed", after.Y+after.Height, 281)
}

// --- Resize: floor ---

func TestResizeScaleFloor(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(281, 281)
	c.PointerMove(232, 232) // collapse toward the origin

	if l.ScaleU < MinScale-epsilon || l.ScaleV < MinScale-epsilon {
		t.Errorf("scale fell through the floor: %v, %v", l.ScaleU, l.ScaleV)
	}
	assertNear(t, "ScaleU at floor", l.ScaleU, MinScale)
	assertNear(t, "ScaleV at floor", l.ScaleV, MinScale)
}

func TestFloorPreservesAspectRatio(t *testing.T) {
	c, _, l := newTestController(t)
	l.SetScale(1, 0.2)
	selectByPress(t, c, 256, 256)

	// Bounds 50x10: BR handle (281, 261).
	c.PointerDown(281, 261)
	c.PointerMove(234, 252) // would drive ScaleV below the floor

	// The shared ratio is clamped so ScaleV lands exactly on the floor and
	// both axes still moved by the same factor.
	assertNear(t, "ScaleV at floor", l.ScaleV, MinScale)
	assertNear(t, "equal ratios", l.ScaleU/1, l.ScaleV/0.2)
}

func TestRepeatedResizeNeverBreaksFloor(t *testing.T) {
	c, _, l := newTestController(t)
	selectByPress(t, c, 256, 256)

	c.PointerDown(281, 281)
	for i := 0; i < 20; i++ {
		c.PointerMove(231.5+float64(i)*0.01, 231.5)
		if l.ScaleU < MinScale-epsilon || l.ScaleV < MinScale-epsilon {
			t.Fatalf("step %d broke the floor: %v, %v", i, l.ScaleU, l.ScaleV)
		}
	}
}

// --- Cursor feedback ---

func TestCursorHints(t *testing.T) {
	c, s, l := newTestController(t)

	if c.CursorHint(10, 10) != CursorDefault {
		t.Error("empty canvas should hint default")
	}
	if c.CursorHint(256, 256) != CursorMove {
		t.Error("layer body should hint move")
	}

	s.Select(l)
	if c.CursorHint(281, 281) != CursorResizeNWSE {
		t.Error("BR corner should hint NWSE")
	}
	if c.CursorHint(281, 256) != CursorResizeEW {
		t.Error("right edge should hint EW")
	}
	if c.CursorHint(256, 231) != CursorResizeNS {
		t.Error("top edge should hint NS")
	}
	if c.CursorHint(281, 231) != CursorResizeNESW {
		t.Error("TR corner should hint NESW")
	}
}

func TestCursorHintMutatesNothing(t *testing.T) {
	c, s, l := newTestController(t)
	s.Select(l)
	count := 0
	s.SetOnChange(func() { count++ })

	c.CursorHint(256, 256)
	c.CursorHint(281, 281)
	c.CursorHint(10, 10)

	if count != 0 {
		t.Errorf("cursor hints triggered %d changes, want 0", count)
	}
	if !c.Idle() {
		t.Error("cursor hints must not change state")
	}
}

// --- Resets and double click ---

func TestResetSelected(t *testing.T) {
	c, s, l := newTestController(t)
	s.Select(l)
	l.SetScale(3, 3)
	l.SetRotation(math.Pi / 2)

	c.ResetSelected(true, false)
	assertNear(t, "Rotation", l.Rotation, 0)
	assertNear(t, "ScaleU kept", l.ScaleU, 3)

	c.ResetSelected(false, true)
	assertNear(t, "ScaleU", l.ScaleU, 1)
	assertNear(t, "ScaleV", l.ScaleV, 1)
}

func TestResetSelectedNoSelection(t *testing.T) {
	c, s, _ := newTestController(t)
	count := 0
	s.SetOnChange(func() { count++ })
	c.ResetSelected(true, true)
	if count != 0 {
		t.Error("reset without selection should do nothing")
	}
}

func TestDoubleClickResetsTransform(t *testing.T) {
	c, _, l := newTestController(t)
	l.SetScale(2, 3)
	l.SetRotation(1)

	clock := time.Unix(0, 0)
	c.now = func() time.Time { return clock }

	c.PointerDown(256, 256)
	c.PointerUp(256, 256)
	clock = clock.Add(100 * time.Millisecond)
	c.PointerDown(256, 256)
	c.PointerUp(256, 256)

	assertNear(t, "ScaleU", l.ScaleU, 1)
	assertNear(t, "ScaleV", l.ScaleV, 1)
	assertNear(t, "Rotation", l.Rotation, 0)
}

func TestSlowSecondClickDoesNotReset(t *testing.T) {
	c, _, l := newTestController(t)
	l.SetScale(2, 3)

	clock := time.Unix(0, 0)
	c.now = func() time.Time { return clock }

	c.PointerDown(256, 256)
	c.PointerUp(256, 256)
	clock = clock.Add(doubleClickWindow + time.Millisecond)
	c.PointerDown(256, 256)
	c.PointerUp(256, 256)

	assertNear(t, "ScaleU kept", l.ScaleU, 2)
	assertNear(t, "ScaleV kept", l.ScaleV, 3)
}

// --- Invisible layers ---

func TestInvisibleLayerNotInteractable(t *testing.T) {
	c, s, l := newTestController(t)
	l.Visible = false

	c.PointerDown(256, 256)
	if s.Selected() != nil {
		t.Error("invisible layer should not be selectable by pointer")
	}

	s.Select(l)
	c.PointerUp(256, 256)
	c.PointerDown(281, 281)
	if c.Resizing() {
		t.Error("invisible layer's handles should not be grabbable")
	}
}
