package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSink is the external renderer's side of the texture contract: a
// settable "needs re-upload" signal. Marking it dirty must cause the next
// render pass of the external engine to re-read the surface's pixels. The
// bridge holds a back-reference only; destroying the bridge never destroys
// the sink's texture object.
type TextureSink interface {
	MarkDirty()
}

// TextureBridge owns the texture-space surface and decides when to signal
// the external renderer. Mutations only request an update; the actual
// re-render and dirty-mark happen in Flush, which the host loop calls once
// per display tick, so arbitrarily many edits in one frame coalesce into a
// single re-upload.
type TextureBridge struct {
	store      *Store
	compositor *Compositor
	sink       TextureSink

	surface *ebiten.Image
	size    int
	pending bool
}

// NewTextureBridge allocates a size×size texture surface. The sink may be
// nil (useful in tests); it can be attached later with SetSink.
func NewTextureBridge(store *Store, compositor *Compositor, size int, sink TextureSink) (*TextureBridge, error) {
	if size <= 0 {
		return nil, fmt.Errorf("easel: invalid texture size %d", size)
	}
	return &TextureBridge{
		store:      store,
		compositor: compositor,
		sink:       sink,
		surface:    ebiten.NewImage(size, size),
		size:       size,
	}, nil
}

// SetSink attaches or replaces the external dirty signal.
func (b *TextureBridge) SetSink(sink TextureSink) {
	b.sink = sink
}

// Surface returns the texture-space surface the external renderer samples.
func (b *TextureBridge) Surface() *ebiten.Image {
	return b.surface
}

// Size returns the surface edge length in pixels.
func (b *TextureBridge) Size() int {
	return b.size
}

// Request notes that the texture contents are stale. Cheap: call it on every
// mutation, however fast they arrive.
func (b *TextureBridge) Request() {
	b.pending = true
}

// Flush re-renders the store into the texture surface and marks the sink
// dirty, if any update was requested since the last flush. Call once per
// display tick. Reports whether a render happened.
func (b *TextureBridge) Flush() bool {
	if !b.pending {
		return false
	}
	b.pending = false
	b.compositor.Render(b.surface, b.store, float64(b.size), false)
	b.markDirty()
	return true
}

// Resize reallocates the surface at the new edge length, re-renders every
// layer into it, and marks the sink dirty. Layer state is never touched:
// all layer geometry is normalized, so only the render size changes. Safe
// to call at any time, including mid-drag.
//
// An invalid size is rejected with an error and the previous surface and
// texture remain valid and untouched.
func (b *TextureBridge) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("easel: invalid texture size %d", size)
	}
	old := b.surface
	b.surface = ebiten.NewImage(size, size)
	b.size = size
	if old != nil {
		old.Deallocate()
	}
	b.pending = false
	b.compositor.Render(b.surface, b.store, float64(b.size), false)
	b.markDirty()
	return nil
}

// Clear fills the surface with the given color and marks the sink dirty.
// Used for initialization before any layer exists.
func (b *TextureBridge) Clear(c Color) {
	b.surface.Fill(c.toRGBA())
	b.pending = false
	b.markDirty()
}

// Dispose releases the surface. The external texture object is not owned by
// the bridge and is left alone; it simply stops being fed.
func (b *TextureBridge) Dispose() {
	if b.surface != nil {
		b.surface.Deallocate()
		b.surface = nil
	}
}

func (b *TextureBridge) markDirty() {
	if b.sink != nil {
		b.sink.MarkDirty()
	}
}
