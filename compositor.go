package easel

import "github.com/hajimehoshi/ebiten/v2"

// Selection chrome metrics (display pixels).
const (
	dashLength  = 6.0
	strokeWidth = 1.0
)

// selectionColor is the outline and handle fill color.
var selectionColor = Color{0.25, 0.6, 1, 1}

// Compositor renders a Store into any square surface. The same compositor
// serves both the on-screen preview and the texture surface; only the
// decorate flag differs between them.
type Compositor struct {
	// Background fills the surface before layers are drawn.
	Background Color
}

// Render clears dst and draws every visible layer bottom to top at the given
// space size. Each layer gets fresh draw options, so no transform or color
// state leaks between layers.
//
// When decorate is true the selected layer's outline and resize handles are
// drawn on top. The texture surface is always rendered with decorate false:
// editor chrome baked into the texture would show up on the external model.
func (c *Compositor) Render(dst *ebiten.Image, store *Store, size float64, decorate bool) {
	dst.Fill(c.Background.toRGBA())

	for _, l := range store.Layers() {
		if !l.Visible {
			continue
		}
		drawLayer(dst, l, size)
	}

	if decorate {
		if sel := store.Selected(); sel != nil && sel.Visible {
			drawSelection(dst, sel.BoundsIn(size))
		}
	}
}

// drawLayer draws one layer centered at its normalized position, scaled to
// its footprint in the target space and rotated about its own center.
func drawLayer(dst *ebiten.Image, l *Layer, size float64) {
	w, h := l.FootprintIn(size)
	if w <= 0 || h <= 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-l.imgW/2, -l.imgH/2)
	op.GeoM.Scale(w/l.imgW, h/l.imgH)
	if l.Rotation != 0 {
		op.GeoM.Rotate(l.Rotation)
	}
	cx, cy := Project(l.U, l.V, size)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(clamp01(l.Opacity)))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(l.image, &op)
}

// drawSelection draws the dashed bounding box and the eight resize handles
// for the selected layer.
func drawSelection(dst *ebiten.Image, r Rect) {
	dashedHLine(dst, r.X, r.Y, r.Width)
	dashedHLine(dst, r.X, r.Y+r.Height, r.Width)
	dashedVLine(dst, r.X, r.Y, r.Height)
	dashedVLine(dst, r.X+r.Width, r.Y, r.Height)

	for _, p := range handlePoints(r) {
		fillSquare(dst, p.X, p.Y, handleDrawSize)
	}
}

func dashedHLine(dst *ebiten.Image, x, y, length float64) {
	for off := 0.0; off < length; off += dashLength * 2 {
		seg := dashLength
		if off+seg > length {
			seg = length - off
		}
		fillRect(dst, x+off, y-strokeWidth/2, seg, strokeWidth)
	}
}

func dashedVLine(dst *ebiten.Image, x, y, length float64) {
	for off := 0.0; off < length; off += dashLength * 2 {
		seg := dashLength
		if off+seg > length {
			seg = length - off
		}
		fillRect(dst, x-strokeWidth/2, y+off, strokeWidth, seg)
	}
}

func fillSquare(dst *ebiten.Image, cx, cy, size float64) {
	fillRect(dst, cx-size/2, cy-size/2, size, size)
}

// fillRect draws a solid rectangle by stretching the shared white pixel,
// tinted with the selection color.
func fillRect(dst *ebiten.Image, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(selectionColor.R),
		float32(selectionColor.G),
		float32(selectionColor.B),
		float32(selectionColor.A),
	)
	dst.DrawImage(whitePixel, &op)
}
