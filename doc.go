// Package glass provides draggable frosted-glass panels.
//
// # Overview
//
// A Panel composes two independent parts:
//
//   - a drag controller (package drag) that turns pointer events into a
//     persistent translation of the panel's surface
//   - a filter graph (package filter) built from a small parameter set that
//     renders the glass look: stripe refraction, blurred and noise-warped
//     background, and a color tint
//
// Parameter edits rebuild the graph; drags only move the surface. The two
// share no state.
//
// # Quick Start
//
//	d := pointer.NewDispatcher()
//	frame := glass.NewFrame(image.Rect(40, 80, 240, 200))
//
//	p := glass.NewPanel(glass.WithID("hero"))
//	p.Mount(d, frame)
//	defer p.Unmount()
//
//	// Feed host pointer events into d; render the panel over a background:
//	p.Draw(dst, background)
//
// # Surfaces
//
// A Surface is any element that accepts a translation, a filter binding by
// reference and a border color. Frame is an offscreen Surface used by the
// software renderer and the bundled commands. Panel.WriteSVG emits the same
// binding as an SVG document.
//
// # Logging
//
// glass is silent by default. SetLogger enables structured logging through
// log/slog for the package and all its sub-packages.
package glass
