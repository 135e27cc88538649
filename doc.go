// Package easel is an interactive 2D image-compositing canvas for
// [Ebitengine] whose output stays synchronized with a texture consumed by an
// external real-time renderer.
//
// Users place raster images as layers on a square canvas and move, scale,
// and rotate them through on-canvas handles. All layer geometry is stored in
// normalized [0,1] coordinates, so the on-screen preview and the GPU-bound
// texture can render at different (and runtime-changeable) resolutions from
// the same state.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	ed, _ := easel.NewEditor(easel.Config{})
//	ed.Store.AddImage(img, "sticker.png")
//	easel.Run(ed, easel.RunConfig{Title: "Easel"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Editor.Update] and [Editor.Draw] directly; the texture surface is
// available from [Editor.Bridge] for the consuming renderer.
//
// # Coordinate model
//
// Three spaces are kept consistent: normalized UV space (the source of
// truth), display space (fixed-size interaction square), and texture space
// (variable-size GPU surface). Conversions take the space size explicitly;
// see [Project], [Unproject], and [Coords].
//
// # Texture synchronization
//
// Every mutation requests a texture update; [TextureBridge.Flush] coalesces
// all requests raised within one display tick into a single re-render and a
// single dirty-mark on the external [TextureSink], so a fast drag costs at
// most one GPU upload per frame.
//
// [Ebitengine]: https://ebitengine.org
package easel
