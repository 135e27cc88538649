package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reset shortcuts, active while a layer is selected.
const (
	keyResetRotation  = ebiten.KeyR
	keyResetScale     = ebiten.KeyS
	keyResetTransform = ebiten.KeyT
)

// readPointerInput normalizes mouse and touch input into the controller's
// single pointer model. Touch takes priority while a touch is active; mouse
// is the pointer the rest of the time.
func (e *Editor) readPointerInput() {
	if e.readTouchInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	e.feedPointer(float64(mx), float64(my), pressed)
}

// readTouchInput tracks the first active touch as the pointer. Additional
// simultaneous touches are ignored: the editor has a one-pointer event
// model. Reports whether touch is driving the pointer this tick.
func (e *Editor) readTouchInput() bool {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])

	if e.touchActive {
		for _, id := range e.touchIDs {
			if id == e.activeTouch {
				tx, ty := ebiten.TouchPosition(id)
				e.feedPointer(float64(tx), float64(ty), true)
				return true
			}
		}
		// The tracked touch lifted; release at the last known position.
		e.touchActive = false
		e.feedPointer(e.lastX, e.lastY, false)
		return true
	}

	if len(e.touchIDs) > 0 {
		e.activeTouch = e.touchIDs[0]
		e.touchActive = true
		tx, ty := ebiten.TouchPosition(e.activeTouch)
		e.feedPointer(float64(tx), float64(ty), true)
		return true
	}
	return false
}

// readKeyboardInput applies the reset shortcuts to the selected layer.
// These are plain field restores, not state machine transitions.
func (e *Editor) readKeyboardInput() {
	if e.Store.Selected() == nil {
		return
	}
	if inpututil.IsKeyJustPressed(keyResetTransform) {
		e.Controller.ResetSelected(true, true)
		return
	}
	if inpututil.IsKeyJustPressed(keyResetRotation) {
		e.Controller.ResetSelected(true, false)
	}
	if inpututil.IsKeyJustPressed(keyResetScale) {
		e.Controller.ResetSelected(false, true)
	}
}
