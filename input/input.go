// Package input defines the plain data the display adapter translates
// host events into and the engine's driver loop consumes. It has no
// dependency on ebiten or any other windowing library, matching
// spec.md §6's external-interface boundary: the core only ever sees
// these values, never a key code or a windowing callback.
package input

// Kind identifies the category of a translated host event.
type Kind int

const (
	// Zoom requests a cursor-anchored zoom at (CursorX, CursorY).
	// Only Delta's sign matters: Delta < 0 zooms out by
	// config.ZoomOutFactor, any other value zooms in by
	// config.ZoomInFactor.
	Zoom Kind = iota
	// IterBump requests the iteration ceiling be doubled (Delta > 0)
	// or halved (Delta < 0).
	IterBump
	// ToggleInfo requests the HUD/diagnostic overlay be toggled,
	// matching SDLK_LALT in original_source/src/main.c.
	ToggleInfo
	// Redraw forces a fresh render of the current view without
	// changing it, matching the right-mouse-button handler.
	Redraw
	// Quit requests the application exit.
	Quit
)

// Event is one translated host input, emitted by the display adapter
// and consumed by engine.Step.
type Event struct {
	Kind    Kind
	Delta   float64
	CursorX int
	CursorY int
}
