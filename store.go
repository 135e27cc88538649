package easel

import "github.com/hajimehoshi/ebiten/v2"

// Store owns the ordered layer list and the single selection. Index 0 is
// painted first (bottommost). At most one layer is selected at a time; the
// store is the only writer of the selected flag.
type Store struct {
	layers   []*Layer
	selected *Layer
	onChange func()
}

// NewStore creates an empty layer store.
func NewStore() *Store {
	return &Store{}
}

// SetOnChange registers a hook fired after every structural or selection
// mutation. The editor uses it to request texture updates.
func (s *Store) SetOnChange(fn func()) {
	s.onChange = fn
}

// Changed fires the change hook. Exposed so callers that mutate layer fields
// directly can report it the same way store mutations are reported.
func (s *Store) Changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Layers returns the layer list in paint order. The returned slice MUST NOT
// be mutated by the caller.
func (s *Store) Layers() []*Layer {
	return s.layers
}

// Len returns the number of layers.
func (s *Store) Len() int {
	return len(s.layers)
}

// AddImage creates a layer over the given bitmap, appends it on top of the
// paint order, and returns it. The ref identifies the bitmap for external
// persistence and may be empty.
func (s *Store) AddImage(img *ebiten.Image, ref string) *Layer {
	l := NewLayer(img, ref)
	s.layers = append(s.layers, l)
	s.Changed()
	return l
}

// LayerByID returns the layer with the given ID, or nil.
func (s *Store) LayerByID(id uint32) *Layer {
	for _, l := range s.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Remove detaches and releases the layer with the given ID. Removing the
// selected layer clears the selection. Reports whether a layer was removed.
func (s *Store) Remove(id uint32) bool {
	for i, l := range s.layers {
		if l.ID == id {
			copy(s.layers[i:], s.layers[i+1:])
			s.layers[len(s.layers)-1] = nil
			s.layers = s.layers[:len(s.layers)-1]
			if s.selected == l {
				l.selected = false
				s.selected = nil
			}
			s.Changed()
			return true
		}
	}
	return false
}

// Clear removes every layer and the selection.
func (s *Store) Clear() {
	for i, l := range s.layers {
		l.selected = false
		s.layers[i] = nil
	}
	s.layers = s.layers[:0]
	s.selected = nil
	s.Changed()
}

// Select makes l the only selected layer. Passing nil clears the selection.
// Panics if l is not in this store.
func (s *Store) Select(l *Layer) {
	if l == s.selected {
		return
	}
	if l != nil && s.LayerByID(l.ID) != l {
		panic("easel: selecting a layer that is not in the store")
	}
	if s.selected != nil {
		s.selected.selected = false
	}
	s.selected = l
	if l != nil {
		l.selected = true
	}
	s.Changed()
}

// SelectID selects the layer with the given ID. Reports whether it was found.
func (s *Store) SelectID(id uint32) bool {
	l := s.LayerByID(id)
	if l == nil {
		return false
	}
	s.Select(l)
	return true
}

// ClearSelection deselects any selected layer.
func (s *Store) ClearSelection() {
	s.Select(nil)
}

// Selected returns the selected layer, or nil.
func (s *Store) Selected() *Layer {
	return s.selected
}

// MoveToIndex moves the layer with the given ID to a new paint-order index.
// Reports whether the layer was found; out-of-range indexes are clamped.
func (s *Store) MoveToIndex(id uint32, index int) bool {
	oldIndex := -1
	for i, l := range s.layers {
		if l.ID == id {
			oldIndex = i
			break
		}
	}
	if oldIndex == -1 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.layers) {
		index = len(s.layers) - 1
	}
	if oldIndex == index {
		return true
	}
	l := s.layers[oldIndex]
	if oldIndex < index {
		copy(s.layers[oldIndex:], s.layers[oldIndex+1:index+1])
	} else {
		copy(s.layers[index+1:], s.layers[index:oldIndex])
	}
	s.layers[index] = l
	s.Changed()
	return true
}

// HitTest returns the topmost visible layer whose bounding box in a display
// space of the given size contains (x, y), or nil. Rotation is ignored: the
// box is the unrotated footprint, so a visibly rotated layer can mis-hit.
func (s *Store) HitTest(x, y, displaySize float64) *Layer {
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if !l.Visible {
			continue
		}
		if l.BoundsIn(displaySize).Contains(x, y) {
			return l
		}
	}
	return nil
}
