package easel

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// whitePixel is a 1x1 white image used to draw solid-color strokes and
// handle squares without an asset.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

const (
	// RefSize anchors layer scale to pixels: a layer at scale 1 renders at
	// its source pixel size on a RefSize-square surface, and proportionally
	// larger or smaller on other surface sizes.
	RefSize = 1024.0

	// MinScale is the floor for ScaleU and ScaleV. Resizes that would drop
	// either axis below it are clamped, never rejected.
	MinScale = 0.1

	// DefaultDisplaySize is the edge length in pixels of the on-screen
	// editing square.
	DefaultDisplaySize = 512.0

	// DefaultTextureSize is the initial edge length in pixels of the
	// texture-space surface.
	DefaultTextureSize = 1024

	// handleHitRadius is the pick tolerance in display pixels around each
	// resize handle center.
	handleHitRadius = 10.0

	// handleDrawSize is the edge length in display pixels of a drawn handle square.
	handleDrawSize = 8.0
)

// CursorHint is advisory pointer feedback for the host UI. Setting a cursor
// never triggers a render or a state change.
type CursorHint uint8

const (
	CursorDefault    CursorHint = iota // nothing under the pointer
	CursorMove                         // over a layer body
	CursorResizeEW                     // over a left/right edge handle
	CursorResizeNS                     // over a top/bottom edge handle
	CursorResizeNWSE                   // over the top-left or bottom-right corner
	CursorResizeNESW                   // over the top-right or bottom-left corner
)

// EbitenCursorShape returns the ebiten cursor shape corresponding to this hint.
func (c CursorHint) EbitenCursorShape() ebiten.CursorShapeType {
	switch c {
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorResizeEW:
		return ebiten.CursorShapeEWResize
	case CursorResizeNS:
		return ebiten.CursorShapeNSResize
	case CursorResizeNWSE:
		return ebiten.CursorShapeNWSEResize
	case CursorResizeNESW:
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeDefault
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA-compatible value.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image fills.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
