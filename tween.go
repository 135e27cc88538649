package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Layer simultaneously.
// Create one via the convenience constructors (TweenMove, TweenScaleTo,
// TweenReset) and call Update(dt) each frame. The group writes the values
// and reports the mutation through the store's change hook so the texture
// bridge coalesces the animation like any other edit.
//
// There is no global animation manager — hosts call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	store  *Store
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and reports the change.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.store != nil {
		g.store.Changed()
	}
}

// TweenMove animates the layer's normalized center to (u, v) over the given
// duration using the easing function.
func TweenMove(store *Store, l *Layer, u, v float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, store: store}
	g.tweens[0] = gween.New(float32(l.U), float32(u), duration, fn)
	g.tweens[1] = gween.New(float32(l.V), float32(v), duration, fn)
	g.fields[0] = &l.U
	g.fields[1] = &l.V
	return g
}

// TweenScaleTo animates the layer's scale factors to the given targets over
// the specified duration using the easing function. Targets below MinScale
// are raised to the floor before the tween starts.
func TweenScaleTo(store *Store, l *Layer, su, sv float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if su < MinScale {
		su = MinScale
	}
	if sv < MinScale {
		sv = MinScale
	}
	g := &TweenGroup{count: 2, store: store}
	g.tweens[0] = gween.New(float32(l.ScaleU), float32(su), duration, fn)
	g.tweens[1] = gween.New(float32(l.ScaleV), float32(sv), duration, fn)
	g.fields[0] = &l.ScaleU
	g.fields[1] = &l.ScaleV
	return g
}

// TweenReset animates the layer's scale and rotation back to their
// construction-time values: the animated version of the combined reset.
func TweenReset(store *Store, l *Layer, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, store: store}
	g.tweens[0] = gween.New(float32(l.ScaleU), float32(l.initialScaleU), duration, fn)
	g.tweens[1] = gween.New(float32(l.ScaleV), float32(l.initialScaleV), duration, fn)
	g.tweens[2] = gween.New(float32(l.Rotation), float32(l.initialRotation), duration, fn)
	g.fields[0] = &l.ScaleU
	g.fields[1] = &l.ScaleV
	g.fields[2] = &l.Rotation
	return g
}
