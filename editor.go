package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config configures a new Editor. Zero values select the package defaults.
type Config struct {
	// DisplaySize is the edge length in pixels of the on-screen editing
	// square. Defaults to DefaultDisplaySize.
	DisplaySize float64

	// TextureSize is the initial edge length in pixels of the texture-space
	// surface. Defaults to DefaultTextureSize.
	TextureSize int

	// Background fills both surfaces behind the layers.
	Background Color

	// Sink is the external renderer's re-upload signal. May be nil.
	Sink TextureSink
}

// Editor owns the store, compositor, controller, and texture bridge, and
// wires them together: every store or controller mutation requests a texture
// update, and Update flushes at most one texture render per tick.
type Editor struct {
	Store      *Store
	Compositor *Compositor
	Controller *Controller
	Bridge     *TextureBridge

	coords Coords

	// Pointer edge detection shared by real and injected input.
	pointerDown  bool
	lastX, lastY float64

	injectQueue []syntheticPointerEvent

	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	touchActive bool

	lastHint CursorHint
}

// NewEditor builds a fully wired editor.
func NewEditor(cfg Config) (*Editor, error) {
	if cfg.DisplaySize == 0 {
		cfg.DisplaySize = DefaultDisplaySize
	}
	if cfg.DisplaySize < 0 {
		return nil, fmt.Errorf("easel: invalid display size %v", cfg.DisplaySize)
	}
	if cfg.TextureSize == 0 {
		cfg.TextureSize = DefaultTextureSize
	}

	store := NewStore()
	comp := &Compositor{Background: cfg.Background}
	bridge, err := NewTextureBridge(store, comp, cfg.TextureSize, cfg.Sink)
	if err != nil {
		return nil, err
	}
	store.SetOnChange(bridge.Request)

	return &Editor{
		Store:      store,
		Compositor: comp,
		Controller: NewController(store, cfg.DisplaySize),
		Bridge:     bridge,
		coords: Coords{
			DisplaySize: cfg.DisplaySize,
			TextureSize: float64(cfg.TextureSize),
		},
	}, nil
}

// Coords returns the current space sizes.
func (e *Editor) Coords() Coords {
	c := e.coords
	c.TextureSize = float64(e.Bridge.Size())
	return c
}

// DisplaySize returns the editing square's edge length in pixels.
func (e *Editor) DisplaySize() float64 {
	return e.coords.DisplaySize
}

// Update processes one tick of input and performs at most one texture
// re-render regardless of how many mutations the tick produced.
func (e *Editor) Update() error {
	if !e.processInjectedInput() {
		e.readPointerInput()
	}
	e.readKeyboardInput()
	e.Bridge.Flush()
	return nil
}

// Draw renders the decorated preview into screen. The preview is cheap to
// redraw every frame; only the texture surface is throttled.
func (e *Editor) Draw(screen *ebiten.Image) {
	e.Compositor.Render(screen, e.Store, e.coords.DisplaySize, true)
}

// feedPointer runs edge detection over a normalized pointer sample and
// dispatches down/move/up to the controller. Hover samples only update the
// advisory cursor.
func (e *Editor) feedPointer(x, y float64, pressed bool) {
	switch {
	case pressed && !e.pointerDown:
		e.Controller.PointerDown(x, y)
	case pressed && e.pointerDown:
		if x != e.lastX || y != e.lastY {
			e.Controller.PointerMove(x, y)
		}
	case !pressed && e.pointerDown:
		if x != e.lastX || y != e.lastY {
			e.Controller.PointerMove(x, y)
		}
		e.Controller.PointerUp(x, y)
	default:
		e.updateCursor(x, y)
	}
	e.pointerDown = pressed
	e.lastX, e.lastY = x, y
}

// updateCursor sets the host cursor shape from the controller's advisory
// hint. Pure feedback: no render, no state change.
func (e *Editor) updateCursor(x, y float64) {
	hint := e.Controller.CursorHint(x, y)
	if hint != e.lastHint {
		ebiten.SetCursorShape(hint.EbitenCursorShape())
		e.lastHint = hint
	}
}

// RunConfig configures the convenience game loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts an Editor to the ebiten.Game interface.
type game struct {
	editor *Editor
}

func (g *game) Update() error {
	return g.editor.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.editor.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the editor until the window closes. Hosts
// that embed the editor in a larger game implement ebiten.Game themselves
// and call Update and Draw directly.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = int(e.coords.DisplaySize)
	}
	if cfg.Height == 0 {
		cfg.Height = int(e.coords.DisplaySize)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{editor: e})
}
