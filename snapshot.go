package easel

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// LayerState is the serializable record of one layer's normalized fields.
// Bitmaps travel by reference only; resolving a ref back to pixels is the
// bitmap provider's job.
type LayerState struct {
	ImageRef string  `json:"imageRef"`
	U        float64 `json:"u"`
	V        float64 `json:"v"`
	ScaleU   float64 `json:"scaleU"`
	ScaleV   float64 `json:"scaleV"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	Visible  bool    `json:"visible"`
}

// BitmapProvider supplies decoded, ready bitmaps for image refs. The core
// never performs decoding or file I/O itself.
type BitmapProvider interface {
	Bitmap(ref string) (*ebiten.Image, error)
}

// Snapshot returns the normalized state of every layer in paint order.
func (s *Store) Snapshot() []LayerState {
	states := make([]LayerState, len(s.layers))
	for i, l := range s.layers {
		states[i] = LayerState{
			ImageRef: l.ImageRef,
			U:        l.U,
			V:        l.V,
			ScaleU:   l.ScaleU,
			ScaleV:   l.ScaleV,
			Rotation: l.Rotation,
			Opacity:  l.Opacity,
			Visible:  l.Visible,
		}
	}
	return states
}

// Restore replaces the store's contents with layers rebuilt from the given
// states, resolving each bitmap through the provider. On a provider error
// the store is left cleared rather than half-populated.
func (s *Store) Restore(states []LayerState, bitmaps BitmapProvider) error {
	s.Clear()
	for _, st := range states {
		img, err := bitmaps.Bitmap(st.ImageRef)
		if err != nil {
			s.Clear()
			return fmt.Errorf("easel: restore layer %q: %w", st.ImageRef, err)
		}
		l := s.AddImage(img, st.ImageRef)
		l.SetPosition(st.U, st.V)
		l.SetScale(st.ScaleU, st.ScaleV)
		l.Rotation = st.Rotation
		l.SetOpacity(st.Opacity)
		l.Visible = st.Visible
	}
	return nil
}

// MarshalSnapshot encodes layer states as JSON.
func MarshalSnapshot(states []LayerState) ([]byte, error) {
	data, err := json.Marshal(states)
	if err != nil {
		return nil, fmt.Errorf("easel: encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes layer states from JSON.
func UnmarshalSnapshot(data []byte) ([]LayerState, error) {
	var states []LayerState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("easel: decode snapshot: %w", err)
	}
	return states, nil
}
