package easel

import "github.com/hajimehoshi/ebiten/v2"

// layerIDCounter is a plain counter (no atomic — easel is single-threaded).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is one placed image: a bitmap plus its normalized transform. All
// geometry is stored in normalized space so that the display and texture
// surfaces can render it at any resolution without touching layer state.
type Layer struct {
	// Identity
	ID uint32

	// ImageRef is an opaque identifier for the bitmap, carried for external
	// persistence. The core never interprets it.
	ImageRef string

	// U and V are the normalized center position in [0,1]. (0.5, 0.5) is
	// the canvas center.
	U, V float64

	// ScaleU and ScaleV are normalized scale factors, independent per axis
	// to support single-axis edge resizing. Never below MinScale.
	ScaleU, ScaleV float64

	// Rotation is the angle in radians about the layer's own center.
	Rotation float64

	// Opacity is the layer alpha in [0,1].
	Opacity float64

	// Visible layers are composited and hit-testable; invisible ones are
	// skipped entirely.
	Visible bool

	image    *ebiten.Image
	imgW     float64
	imgH     float64
	selected bool

	// Construction-time transform, for reset operations.
	initialScaleU   float64
	initialScaleV   float64
	initialRotation float64
}

// NewLayer creates a layer over an already-decoded bitmap, centered on the
// canvas at scale 1. Panics if img is nil: bitmap readiness is the provider's
// contract, not a runtime condition.
func NewLayer(img *ebiten.Image, ref string) *Layer {
	if img == nil {
		panic("easel: nil layer bitmap")
	}
	b := img.Bounds()
	return &Layer{
		ID:              nextLayerID(),
		ImageRef:        ref,
		U:               0.5,
		V:               0.5,
		ScaleU:          1,
		ScaleV:          1,
		Opacity:         1,
		Visible:         true,
		image:           img,
		imgW:            float64(b.Dx()),
		imgH:            float64(b.Dy()),
		initialScaleU:   1,
		initialScaleV:   1,
		initialRotation: 0,
	}
}

// Image returns the layer's bitmap.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// ImageSize returns the bitmap's intrinsic size in source pixels.
func (l *Layer) ImageSize() (w, h float64) {
	return l.imgW, l.imgH
}

// Selected reports whether this layer is the store's current selection.
func (l *Layer) Selected() bool {
	return l.selected
}

// SetPosition sets the normalized center, clamping each axis to [0,1].
func (l *Layer) SetPosition(u, v float64) {
	l.U = clamp01(u)
	l.V = clamp01(v)
}

// SetScale sets both scale factors, clamping each to MinScale.
func (l *Layer) SetScale(su, sv float64) {
	l.ScaleU = max(su, MinScale)
	l.ScaleV = max(sv, MinScale)
}

// SetRotation sets the rotation in radians. Rotation is fully settable even
// though no drag gesture edits it.
func (l *Layer) SetRotation(r float64) {
	l.Rotation = r
}

// SetOpacity sets the layer alpha, clamped to [0,1].
func (l *Layer) SetOpacity(a float64) {
	l.Opacity = clamp01(a)
}

// ResetRotation restores the rotation captured at construction.
func (l *Layer) ResetRotation() {
	l.Rotation = l.initialRotation
}

// ResetScale restores both scale factors captured at construction.
func (l *Layer) ResetScale() {
	l.ScaleU = l.initialScaleU
	l.ScaleV = l.initialScaleV
}

// ResetTransform restores rotation and scale together. Bound to double-click
// and the combined keyboard shortcut.
func (l *Layer) ResetTransform() {
	l.ResetRotation()
	l.ResetScale()
}

// FootprintIn returns the layer's rendered pixel size in a square space of
// the given edge length. The footprint is proportional to the space size, so
// a layer occupies the same normalized extent at every resolution.
func (l *Layer) FootprintIn(size float64) (w, h float64) {
	return l.imgW * l.ScaleU * size / RefSize,
		l.imgH * l.ScaleV * size / RefSize
}

// BoundsIn returns the layer's axis-aligned bounding box in a square space
// of the given edge length. Rotation is deliberately ignored: hit testing
// and handle layout use the unrotated footprint.
func (l *Layer) BoundsIn(size float64) Rect {
	w, h := l.FootprintIn(size)
	cx, cy := Project(l.U, l.V, size)
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
