// Package glyphboard is an interactive sticker-board editor for [Ebitengine]:
// a document made of one background image and any number of placed glyphs
// (emoji-like symbols) that can be panned, pinched, selected, dragged and
// deleted with mouse or multi-touch gestures.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with a
// glyph palette below the canvas:
//
//	glyphboard.Run(glyphboard.RunConfig{
//		Title: "Glyphboard", Width: 800, Height: 600,
//		Editor: glyphboard.Config{
//			Palette: glyphboard.PaletteGlyphs(glyphboard.DefaultPalette),
//		},
//	})
//
// For full control, create an [Editor] yourself, call [Editor.SetViewport]
// from your layout pass, [Editor.Update] once per tick and draw with a
// [Renderer] or your own code consuming [Editor.Compose].
//
// # Coordinates
//
// Items live in document space: integer offsets from the canvas center,
// independent of pan and zoom. [ToView] and [ToDoc] convert between document
// space and view pixels given an offset, a scale and the viewport center.
//
// # Gestures
//
// The view keeps two layers of transform state. The committed layer is the
// background [Camera] (steady-state pan and zoom) plus a per-item overlay
// (offset and scale). The live layer holds the delta of gestures in flight
// and is folded into the committed layer exactly once, when the gesture
// ends.
//
// How a gesture reaches items depends on the selection:
//
//   - Empty selection: pan and pinch move and scale the background and every
//     item together.
//   - Non-empty selection: a pan of the canvas moves the background and the
//     unselected items; a drag starting on a selected item moves only the
//     selected items, each by the finger translation divided by its own
//     scale; a pinch scales only the selected items.
//
// A tap on an item toggles its selection, a tap on empty canvas clears the
// selection, a double tap on empty canvas zooms the background to fit the
// viewport, and a long press on an item deletes it.
//
// # Input injection
//
// [Editor.InjectTap], [Editor.InjectDrag], [Editor.InjectPinch] and
// [Editor.InjectHold] queue synthetic pointer frames that are consumed by
// subsequent Update calls, which makes the gesture pipeline testable without
// a window. [LoadGestureScript] replays whole sessions from JSON.
//
// # Background images
//
// A [BackgroundLoader] resolves the document background. URL backgrounds
// are fetched on a separate goroutine by a [Fetcher] (an [HTTPFetcher] by
// default) and applied on the next Update; while fetching, items are hidden
// and the renderer shows a progress label. Failures leave a blank
// background.
//
// # ECS integration
//
// Committed changes are forwarded to an optional [EventSink]. The ecs
// sub-package bridges them into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package glyphboard
