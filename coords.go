package easel

// The editor keeps three coordinate spaces consistent:
//
//   - normalized space: [0,1] on both axes, resolution independent, the
//     source of truth for all persisted layer geometry;
//   - display space: the fixed-size square pixel grid used for on-screen
//     interaction and preview;
//   - texture space: the variable-size square pixel grid rendered into the
//     surface an external renderer uploads to the GPU.
//
// All conversions take the space size as an explicit parameter. Changing the
// texture resolution at runtime changes only the size passed here; it never
// rewrites a layer.

// Project converts a normalized point to pixels in a square space of the
// given edge length.
func Project(u, v, size float64) (x, y float64) {
	return u * size, v * size
}

// Unproject converts a pixel point in a square space of the given edge
// length back to normalized coordinates.
func Unproject(x, y, size float64) (u, v float64) {
	return x / size, y / size
}

// Coords bundles the two concrete space sizes currently in use. It is plain
// data passed where needed, never reached through a global.
type Coords struct {
	DisplaySize float64
	TextureSize float64
}

// ToDisplay converts a normalized point to display pixels.
func (c Coords) ToDisplay(u, v float64) (x, y float64) {
	return Project(u, v, c.DisplaySize)
}

// ToTexture converts a normalized point to texture pixels.
func (c Coords) ToTexture(u, v float64) (x, y float64) {
	return Project(u, v, c.TextureSize)
}

// FromDisplay converts display pixels to a normalized point.
func (c Coords) FromDisplay(x, y float64) (u, v float64) {
	return Unproject(x, y, c.DisplaySize)
}
